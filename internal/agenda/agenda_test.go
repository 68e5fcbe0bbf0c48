package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/forum-agent/internal/types"
)

func slot(id int, date, start string, status types.SlotStatus) types.Slot {
	return types.Slot{ID: id, Date: date, StartTime: start, Status: status}
}

func TestFilterFutureAvailable(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		slots    []types.Slot
		expected []int
	}{
		{
			name: "keeps only future available",
			slots: []types.Slot{
				slot(1, "2026-09-14", "11:00:00", types.SlotAvailable), // past
				slot(2, "2026-09-14", "13:00:00", types.SlotAvailable),
				slot(3, "2026-09-14", "14:00:00", types.SlotBooked),
				slot(4, "2026-09-15", "09:00:00", types.SlotAvailable),
			},
			expected: []int{2, 4},
		},
		{
			name: "slot starting exactly now is excluded",
			slots: []types.Slot{
				slot(1, "2026-09-14", "12:00:00", types.SlotAvailable),
			},
			expected: []int{},
		},
		{
			name: "unparseable start is excluded",
			slots: []types.Slot{
				slot(1, "someday", "13:00:00", types.SlotAvailable),
			},
			expected: []int{},
		},
		{
			name: "unknown status is excluded",
			slots: []types.Slot{
				{ID: 1, Date: "2026-09-15", StartTime: "09:00:00", Status: "on_hold"},
			},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFutureAvailable(tt.slots, now)
			ids := make([]int, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestGroupByDate(t *testing.T) {
	slots := []types.Slot{
		slot(1, "2026-09-15", "14:00:00", types.SlotAvailable),
		slot(2, "2026-09-14", "10:00:00", types.SlotAvailable),
		slot(3, "2026-09-15", "09:00:00", types.SlotAvailable),
		slot(4, "2026-09-14", "09:00:00", types.SlotAvailable),
	}

	groups := GroupByDate(slots)
	require.Len(t, groups, 2)

	// Every slot appears in exactly one group, keyed by its date field.
	total := 0
	for date, group := range groups {
		total += len(group)
		for _, s := range group {
			assert.Equal(t, date, s.Date)
		}
	}
	assert.Equal(t, len(slots), total)

	// Groups are internally sorted by start time.
	sept15 := groups["2026-09-15"]
	require.Len(t, sept15, 2)
	assert.Equal(t, 3, sept15[0].ID)
	assert.Equal(t, 1, sept15[1].ID)
}

func TestDaysOrdered(t *testing.T) {
	groups := GroupByDate([]types.Slot{
		slot(1, "2026-09-16", "09:00:00", types.SlotAvailable),
		slot(2, "2026-09-14", "09:00:00", types.SlotAvailable),
		slot(3, "2026-09-15", "09:00:00", types.SlotAvailable),
	})

	days := Days(groups)
	require.Len(t, days, 3)
	assert.Equal(t, "2026-09-14", days[0].Date)
	assert.Equal(t, "2026-09-15", days[1].Date)
	assert.Equal(t, "2026-09-16", days[2].Date)
}

func TestGroupProgrammesByDay(t *testing.T) {
	programmes := []types.Programme{
		{ID: 1, Title: "Closing keynote", StartsAt: time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Opening keynote", StartsAt: time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)},
		{ID: 3, Title: "CV workshop", StartsAt: time.Date(2026, 9, 14, 14, 0, 0, 0, time.UTC)},
	}

	days := GroupProgrammesByDay(programmes)
	require.Len(t, days, 2)
	require.Len(t, days[0].Programmes, 2)
	assert.Equal(t, "Opening keynote", days[0].Programmes[0].Title)
	assert.Equal(t, "CV workshop", days[0].Programmes[1].Title)
	require.Len(t, days[1].Programmes, 1)
	assert.Equal(t, "Closing keynote", days[1].Programmes[0].Title)
}

func TestFirstAvailable(t *testing.T) {
	assert.Nil(t, FirstAvailable(nil))

	slots := []types.Slot{
		slot(1, "2026-09-15", "09:00:00", types.SlotAvailable),
		slot(2, "2026-09-14", "11:00:00", types.SlotAvailable),
		slot(3, "2026-09-14", "09:30:00", types.SlotAvailable),
	}

	first := FirstAvailable(slots)
	require.NotNil(t, first)
	assert.Equal(t, 3, first.ID)
}
