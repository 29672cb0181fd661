package models

// DaySchedule describes one weekday of a staff member's working pattern.
// Times are "HH:mm" strings; parsing into minute intervals is isolated in
// the scheduling package's accessor so no other call site re-derives the
// shape.
type DaySchedule struct {
	IsWorking bool            `bson:"isWorking" json:"isWorking"`
	Intervals []ClockInterval `bson:"intervals" json:"intervals"`
	Break     *ClockInterval  `bson:"break,omitempty" json:"break,omitempty"` // lunch or other mid-day break, excised before slot generation
}

// StaffAvailability is the weekly working-hours record, one per staff
// member. Schedule is keyed by lowercase English weekday name ("monday").
type StaffAvailability struct {
	StaffID  string                 `bson:"staffId" json:"staffId"`
	Schedule map[string]DaySchedule `bson:"schedule" json:"schedule"`
}
