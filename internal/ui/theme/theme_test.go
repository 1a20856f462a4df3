package theme

import "testing"

func TestGetKnownSkins(t *testing.T) {
	for _, name := range Names() {
		s, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if s.Name != name {
			t.Errorf("Get(%q).Name = %q", name, s.Name)
		}
		if s.Primary == nil || s.Text == nil || s.Border == nil {
			t.Errorf("skin %q has empty colors: %+v", name, s)
		}
	}
}

func TestGetUnknownSkin(t *testing.T) {
	if _, err := Get("chrome"); err == nil {
		t.Fatal("expected error for unknown skin")
	}
}

func TestDefaultIsCadet(t *testing.T) {
	if Default().Name != "cadet" {
		t.Errorf("Default().Name = %q, want cadet", Default().Name)
	}
}
