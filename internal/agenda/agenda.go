// Package agenda provides pure transforms over a forum's interview slot and
// programme listings: availability filtering, day grouping, and ordered
// iteration for the list and calendar renderings.
package agenda

import (
	"sort"
	"time"

	"github.com/jonathan/forum-agent/internal/types"
)

// DayGroup holds one calendar day's slots, sorted by start time
type DayGroup struct {
	Date  string
	Slots []types.Slot
}

// FilterFutureAvailable keeps a slot iff its status is available and its
// computed start instant is strictly after now. The filter runs once when
// slots are loaded; a slot going stale mid-session is caught by the server
// at booking time, not by re-filtering.
func FilterFutureAvailable(slots []types.Slot, now time.Time) []types.Slot {
	loc := now.Location()
	out := make([]types.Slot, 0, len(slots))
	for _, s := range slots {
		if s.Status != types.SlotAvailable {
			continue
		}
		start := s.StartsAt(loc)
		if start.IsZero() || !start.After(now) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// GroupByDate partitions slots by their Date field, the canonical grouping
// key. Within each group slots are sorted ascending by start_time; plain
// string comparison is chronological for same-day "HH:MM:SS" values.
func GroupByDate(slots []types.Slot) map[string][]types.Slot {
	groups := make(map[string][]types.Slot)
	for _, s := range slots {
		groups[s.Date] = append(groups[s.Date], s)
	}
	for date := range groups {
		group := groups[date]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartTime < group[j].StartTime
		})
		groups[date] = group
	}
	return groups
}

// Days flattens a grouped agenda into date-ascending DayGroups. Both the
// list and calendar views render from this one structure.
func Days(groups map[string][]types.Slot) []DayGroup {
	days := make([]DayGroup, 0, len(groups))
	for date, slots := range groups {
		days = append(days, DayGroup{Date: date, Slots: slots})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}

// ProgrammeDay holds one day's programme entries, sorted by start instant
type ProgrammeDay struct {
	Date       string
	Programmes []types.Programme
}

// GroupProgrammesByDay partitions programmes by the date component of
// StartsAt in its own zone. Programmes carry full timestamps only, so unlike
// slots there is no separate date field to reconcile against.
func GroupProgrammesByDay(programmes []types.Programme) []ProgrammeDay {
	groups := make(map[string][]types.Programme)
	for _, p := range programmes {
		key := p.StartsAt.Format("2006-01-02")
		groups[key] = append(groups[key], p)
	}

	days := make([]ProgrammeDay, 0, len(groups))
	for date, items := range groups {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].StartsAt.Before(items[j].StartsAt)
		})
		days = append(days, ProgrammeDay{Date: date, Programmes: items})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}

// FirstAvailable returns the earliest slot of the earliest day, or nil when
// no slots remain. Used by the slot-step skip path to auto-select.
func FirstAvailable(slots []types.Slot) *types.Slot {
	days := Days(GroupByDate(slots))
	if len(days) == 0 || len(days[0].Slots) == 0 {
		return nil
	}
	first := days[0].Slots[0]
	return &first
}
