// Package types provides type definitions for structured data used throughout the forum-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// SlotStatus is the server-reported availability state of an interview slot
type SlotStatus string

// Known slot statuses. The backend may introduce further states; only
// SlotAvailable is ever offered for selection.
const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotCancelled SlotStatus = "cancelled"
)

// Recruiter references the recruiter holding an interview slot
type Recruiter struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
}

// Slot represents a bookable interview time interval within a forum's agenda.
// Date is the canonical grouping key; StartTime/EndTime are either bare
// "HH:MM:SS" strings or full ISO datetimes depending on the endpoint.
type Slot struct {
	ID        int        `json:"id" validate:"required"`
	Date      string     `json:"date" validate:"required"`
	StartTime string     `json:"start_time" validate:"required"`
	EndTime   string     `json:"end_time"`
	Status    SlotStatus `json:"status" validate:"required"`
	SlotType  string     `json:"slot_type,omitempty"`
	Recruiter *Recruiter `json:"recruiter,omitempty"`
}

// StartsAt computes the slot's start instant in the given location by
// combining Date with StartTime. Returns the zero time if either part is
// unparseable.
func (s Slot) StartsAt(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation("2006-01-02", s.Date, loc)
	if err != nil {
		return time.Time{}
	}
	clock := s.StartTime
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.ParseInLocation(layout, clock, loc); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
		}
	}
	// Full datetime start_time: keep its own date, not the Date field.
	if t, err := time.ParseInLocation(time.RFC3339, clock, loc); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", clock, loc); err == nil {
		return t
	}
	return time.Time{}
}

// Programme represents a scheduled talk or session in a forum's programme
type Programme struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Speaker  string    `json:"speaker,omitempty"`
	Location string    `json:"location,omitempty"`
	StartsAt time.Time `json:"start_date"`
	EndsAt   time.Time `json:"end_date"`
}

// Agenda is the full slot and programme listing for one forum
type Agenda struct {
	ForumID    int         `json:"forum"`
	Slots      []Slot      `json:"slots" validate:"dive"`
	Programmes []Programme `json:"programmes,omitempty"`
}
