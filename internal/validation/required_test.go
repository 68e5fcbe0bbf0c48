package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/forum-agent/internal/answers"
	"github.com/jonathan/forum-agent/internal/types"
)

func TestValidateRequired(t *testing.T) {
	questionnaire := &types.Questionnaire{
		ID: 7,
		Questions: []types.Question{
			{ID: 1, QuestionText: "Why us?", QuestionType: types.QuestionText, IsRequired: true},
			{ID: 2, QuestionText: "Nickname", QuestionType: types.QuestionText},
			{ID: 3, QuestionText: "Stacks", QuestionType: types.QuestionCheckbox, IsRequired: true},
		},
	}

	t.Run("missing required text blocks", func(t *testing.T) {
		sheet := answers.NewSheet()

		err := ValidateRequired(questionnaire, sheet)
		var missing *MissingAnswerError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, 1, missing.QuestionID)
		assert.Contains(t, err.Error(), "Why us?")
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		sheet := answers.NewSheet()
		sheet.Set(1, types.TextValue(""))

		err := ValidateRequired(questionnaire, sheet)
		var missing *MissingAnswerError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, 1, missing.QuestionID)
	})

	t.Run("reports only the first violation", func(t *testing.T) {
		sheet := answers.NewSheet()

		err := ValidateRequired(questionnaire, sheet)
		var missing *MissingAnswerError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Why us?", missing.QuestionText)
	})

	t.Run("empty array counts as missing", func(t *testing.T) {
		sheet := answers.NewSheet()
		sheet.Set(1, types.TextValue("growth"))
		sheet.Set(3, types.ChoicesValue{})

		err := ValidateRequired(questionnaire, sheet)
		var missing *MissingAnswerError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, 3, missing.QuestionID)
	})

	t.Run("all required answered unblocks", func(t *testing.T) {
		sheet := answers.NewSheet()
		sheet.Set(1, types.TextValue("growth"))
		sheet.Set(3, types.ChoicesValue{"go"})

		assert.NoError(t, ValidateRequired(questionnaire, sheet))
	})

	t.Run("optional question may stay empty", func(t *testing.T) {
		sheet := answers.NewSheet()
		sheet.Set(1, types.TextValue("growth"))
		sheet.Set(3, types.ChoicesValue{"go"})

		assert.NoError(t, ValidateRequired(questionnaire, sheet))
		_, answered := sheet.Get(2)
		assert.False(t, answered)
	})

	t.Run("nil questionnaire passes", func(t *testing.T) {
		assert.NoError(t, ValidateRequired(nil, answers.NewSheet()))
	})
}
