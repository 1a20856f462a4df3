package topics

import "fmt"

// Topic identifies one fixed subject area of the driving-theory exam.
type Topic string

const (
	General    Topic = "general"
	Signals    Topic = "signals"
	Speed      Topic = "speed"
	Priority   Topic = "priority"
	RoadSafety Topic = "road-safety"
	Alcohol    Topic = "alcohol-drugs"
	Documents  Topic = "documentation"
	FirstAid   Topic = "first-aid"
	Mechanics  Topic = "mechanics"
	EcoDriving Topic = "eco-driving"
)

// Info holds the presentational metadata for a topic.
type Info struct {
	Topic       Topic
	Name        string
	Icon        string
	Color       string // hex accent color for topic cards
	Description string
}

// catalog is the fixed topic list in display order.
var catalog = []Info{
	{General, "General", "🚗", "#6366F1", "Mixed questions across the full exam syllabus"},
	{Signals, "Signals", "🚦", "#F59E0B", "Traffic signs, signals and road markings"},
	{Speed, "Speed", "⏱️", "#EF4444", "Speed limits and safe following distances"},
	{Priority, "Priority", "🔀", "#8B5CF6", "Right of way at junctions, roundabouts and crossings"},
	{RoadSafety, "Road Safety", "🛡️", "#22C55E", "Defensive driving, visibility and vulnerable road users"},
	{Alcohol, "Alcohol & Drugs", "🚫", "#F43F5E", "Legal limits, effects and penalties"},
	{Documents, "Documentation", "📄", "#0EA5E9", "Licences, insurance and vehicle paperwork"},
	{FirstAid, "First Aid", "⛑️", "#14B8A6", "Accident response and basic first aid"},
	{Mechanics, "Mechanics", "🔧", "#F97316", "Vehicle maintenance and warning indicators"},
	{EcoDriving, "Eco-Driving", "🍃", "#84CC16", "Efficient driving and emissions"},
}

var byID = func() map[Topic]Info {
	m := make(map[Topic]Info, len(catalog))
	for _, info := range catalog {
		m[info.Topic] = info
	}
	return m
}()

// All returns every topic's metadata in display order.
func All() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the metadata for a topic.
func Get(t Topic) (Info, error) {
	info, ok := byID[t]
	if !ok {
		return Info{}, fmt.Errorf("unknown topic: %q", t)
	}
	return info, nil
}

// Valid reports whether t is a member of the catalog.
func Valid(t Topic) bool {
	_, ok := byID[t]
	return ok
}

// Parse resolves a topic from its ID or display name, case-sensitive on
// IDs only. Used by CLI flags.
func Parse(s string) (Topic, error) {
	if Valid(Topic(s)) {
		return Topic(s), nil
	}
	for _, info := range catalog {
		if info.Name == s {
			return info.Topic, nil
		}
	}
	return "", fmt.Errorf("unknown topic: %q", s)
}

// Count returns the number of topics in the catalog.
func Count() int {
	return len(catalog)
}
