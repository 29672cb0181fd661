package models

// Interval is a half-open time-of-day range [Start, End) in minutes from
// midnight (e.g. 540 for 9:00 AM).
type Interval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Overlaps reports whether two half-open intervals intersect.
// This is the single overlap predicate used everywhere; call sites must not
// inline their own comparisons.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Duration returns the interval length in minutes.
func (a Interval) Duration() int {
	return a.End - a.Start
}

// ClockInterval is the wire form of an Interval: "HH:mm" strings as they
// appear in schedule JSON and API payloads.
type ClockInterval struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}
