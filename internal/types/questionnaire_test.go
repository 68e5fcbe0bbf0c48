package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Option
	}{
		{
			name:     "bare string",
			input:    `"Paris"`,
			expected: Option{Value: "Paris", Label: "Paris"},
		},
		{
			name:     "value label object",
			input:    `{"value":"fr","label":"France"}`,
			expected: Option{Value: "fr", Label: "France"},
		},
		{
			name:     "object without label falls back to value",
			input:    `{"value":"remote"}`,
			expected: Option{Value: "remote", Label: "remote"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opt Option
			require.NoError(t, json.Unmarshal([]byte(tt.input), &opt))
			assert.Equal(t, tt.expected, opt)
		})
	}
}

func TestQuestionnaireQuestionByID(t *testing.T) {
	q := &Questionnaire{
		ID: 7,
		Questions: []Question{
			{ID: 1, QuestionText: "Why us?", QuestionType: QuestionText},
			{ID: 2, QuestionText: "Years of experience", QuestionType: QuestionNumber},
		},
	}

	found := q.QuestionByID(2)
	require.NotNil(t, found)
	assert.Equal(t, "Years of experience", found.QuestionText)

	assert.Nil(t, q.QuestionByID(99))

	var nilQ *Questionnaire
	assert.Nil(t, nilQ.QuestionByID(1))
}

func TestAnswerValueEmpty(t *testing.T) {
	tests := []struct {
		name     string
		value    AnswerValue
		expected bool
	}{
		{name: "blank text", value: TextValue(""), expected: true},
		{name: "non-blank text", value: TextValue("yes"), expected: false},
		{name: "zero number", value: NumberValue(0), expected: false},
		{name: "no choices", value: ChoicesValue{}, expected: true},
		{name: "nil choices", value: ChoicesValue(nil), expected: true},
		{name: "one choice", value: ChoicesValue{"go"}, expected: false},
		{name: "unset file", value: FileValue{}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Empty())
		})
	}
}

func TestSlotStartsAt(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name     string
		slot     Slot
		expected time.Time
	}{
		{
			name:     "bare time anchored to date",
			slot:     Slot{Date: "2026-09-14", StartTime: "09:30:00"},
			expected: time.Date(2026, 9, 14, 9, 30, 0, 0, loc),
		},
		{
			name:     "short clock form",
			slot:     Slot{Date: "2026-09-14", StartTime: "14:05"},
			expected: time.Date(2026, 9, 14, 14, 5, 0, 0, loc),
		},
		{
			name:     "full datetime keeps its own date",
			slot:     Slot{Date: "2026-09-14", StartTime: "2026-09-15T08:00:00"},
			expected: time.Date(2026, 9, 15, 8, 0, 0, 0, loc),
		},
		{
			name:     "unparseable date yields zero time",
			slot:     Slot{Date: "not-a-date", StartTime: "09:00:00"},
			expected: time.Time{},
		},
		{
			name:     "unparseable time yields zero time",
			slot:     Slot{Date: "2026-09-14", StartTime: "soon"},
			expected: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.slot.StartsAt(loc))
		})
	}
}

func TestApplicationDraftToRequest(t *testing.T) {
	draft := NewApplicationDraft(Offer{ID: 12, Title: "Backend Engineer"}, 3)
	assert.Equal(t, StatusPending, draft.Status)
	assert.NotEqual(t, draft.ID.String(), "")

	req := draft.ToRequest()
	assert.Equal(t, 12, req.Offer)
	assert.Equal(t, 3, req.Forum)
	assert.Nil(t, req.SelectedSlot)
	assert.Nil(t, req.QuestionnaireResponses)

	draft.Slot = &Slot{ID: 44, Date: "2026-09-14", StartTime: "09:00:00", Status: SlotAvailable}
	draft.Questionnaire = &QuestionnaireResponse{QuestionnaireID: 7}

	req = draft.ToRequest()
	require.NotNil(t, req.SelectedSlot)
	assert.Equal(t, 44, *req.SelectedSlot)
	assert.Equal(t, 7, req.QuestionnaireResponses.QuestionnaireID)
}

func TestAnswerWireNulls(t *testing.T) {
	text := "hello"
	a := Answer{Question: 1, QuestionType: QuestionText, AnswerText: &text}

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "hello", decoded["answer_text"])
	assert.Nil(t, decoded["answer_number"])
	assert.Nil(t, decoded["answer_choices"])
	assert.Nil(t, decoded["answer_file"])
}
