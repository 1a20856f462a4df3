package topics

import "testing"

func TestCatalogComplete(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("catalog size = %d, want 10", len(all))
	}

	seen := make(map[Topic]bool)
	for _, info := range all {
		if info.Name == "" || info.Icon == "" || info.Description == "" {
			t.Errorf("topic %q has incomplete metadata", info.Topic)
		}
		if seen[info.Topic] {
			t.Errorf("duplicate topic %q", info.Topic)
		}
		seen[info.Topic] = true
	}
}

func TestGet(t *testing.T) {
	info, err := Get(Signals)
	if err != nil {
		t.Fatalf("Get(Signals): %v", err)
	}
	if info.Name != "Signals" {
		t.Errorf("Name = %q, want Signals", info.Name)
	}

	if _, err := Get(Topic("parking")); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Topic
		wantErr bool
	}{
		{"general", General, false},
		{"road-safety", RoadSafety, false},
		{"Road Safety", RoadSafety, false},
		{"Eco-Driving", EcoDriving, false},
		{"cooking", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	for _, info := range All() {
		if !Valid(info.Topic) {
			t.Errorf("Valid(%q) = false", info.Topic)
		}
	}
	if Valid(Topic("")) {
		t.Error("Valid(\"\") = true")
	}
}
