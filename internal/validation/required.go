// Package validation gates wizard step advancement on required questions.
package validation

import (
	"fmt"

	"github.com/jonathan/forum-agent/internal/answers"
	"github.com/jonathan/forum-agent/internal/types"
)

// MissingAnswerError reports the first required question left unanswered.
// Validation stops at the first violation so the candidate is pointed at one
// concrete question rather than a wall of errors.
type MissingAnswerError struct {
	QuestionID   int
	QuestionText string
}

func (e *MissingAnswerError) Error() string {
	return fmt.Sprintf("please answer the required question: %s", e.QuestionText)
}

// ValidateRequired checks that every required question has a non-empty
// answer on the sheet. Returns nil when the questionnaire is absent or all
// required questions are answered.
func ValidateRequired(questionnaire *types.Questionnaire, sheet *answers.Sheet) error {
	if questionnaire == nil {
		return nil
	}
	for _, q := range questionnaire.Questions {
		if !q.IsRequired {
			continue
		}
		value, ok := sheet.Get(q.ID)
		if !ok || value == nil || value.Empty() {
			return &MissingAnswerError{QuestionID: q.ID, QuestionText: q.QuestionText}
		}
	}
	return nil
}
