package models

// SlotStatus annotates one candidate start time with its bookability.
type SlotStatus struct {
	Time      string `json:"time"` // "HH:mm"
	Available bool   `json:"available"`
}

// DayAvailability is the full availability answer for one staff member,
// service and calendar date. Slots carries every candidate with its status;
// Available is the reduced list of bookable "HH:mm" starts. Both shapes are
// consumed by callers.
type DayAvailability struct {
	Date      string       `json:"date"` // "2006-01-02"
	StaffID   string       `json:"staffId"`
	ServiceID string       `json:"serviceId"`
	Duration  int          `json:"duration"` // minutes
	Slots     []SlotStatus `json:"slots"`
	Available []string     `json:"available"`
}

// WeekAvailability groups seven consecutive days for the dashboard calendar.
type WeekAvailability struct {
	WeekStart string            `json:"weekStart"` // "2006-01-02" of day zero
	Days      []DayAvailability `json:"days"`
}
