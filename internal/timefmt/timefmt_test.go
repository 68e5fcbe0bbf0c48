package timefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare date",
			input:    "2026-09-14",
			expected: "Monday, 14 September 2026",
		},
		{
			name:     "full datetime",
			input:    "2026-09-15T08:30:00",
			expected: "Tuesday, 15 September 2026",
		},
		{
			name:     "rfc3339 with offset",
			input:    "2026-09-15T08:30:00+02:00",
			expected: "Tuesday, 15 September 2026",
		},
		{
			name:     "garbage yields empty",
			input:    "next tuesday",
			expected: "",
		},
		{
			name:     "empty yields empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.input))
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare clock truncated without date parsing",
			input:    "09:00:00",
			expected: "09:00",
		},
		{
			name:     "short clock passes through",
			input:    "14:30",
			expected: "14:30",
		},
		{
			name:     "single digit hour padded",
			input:    "9:05",
			expected: "09:05",
		},
		{
			name:     "datetime extracts clock",
			input:    "2026-09-14T16:45:00",
			expected: "16:45",
		},
		{
			name:     "garbage yields empty",
			input:    "noon",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTime(tt.input))
		})
	}
}

func TestSlotDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{
			name:     "thirty minute clock pair",
			start:    "09:00:00",
			end:      "09:30:00",
			expected: 30,
		},
		{
			name:     "identical clocks",
			start:    "11:15:00",
			end:      "11:15:00",
			expected: 0,
		},
		{
			name:     "identical datetimes",
			start:    "2026-09-14T10:00:00",
			end:      "2026-09-14T10:00:00",
			expected: 0,
		},
		{
			name:     "datetime pair across an hour",
			start:    "2026-09-14T10:00:00",
			end:      "2026-09-14T11:20:00",
			expected: 80,
		},
		{
			name:     "short clock forms",
			start:    "09:00",
			end:      "10:00",
			expected: 60,
		},
		{
			name:     "seconds round to nearest minute",
			start:    "09:00:00",
			end:      "09:29:40",
			expected: 30,
		},
		{
			name:     "negative delta clamps to zero",
			start:    "10:00:00",
			end:      "09:00:00",
			expected: 0,
		},
		{
			name:     "unparseable start yields zero",
			start:    "whenever",
			end:      "09:00:00",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SlotDuration(tt.start, tt.end))
		})
	}
}
