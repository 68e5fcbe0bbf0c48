// Package types provides type definitions for structured data used throughout the forum-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// QuestionType identifies the kind of input a question expects
type QuestionType string

// Supported question types
const (
	QuestionText     QuestionType = "text"
	QuestionNumber   QuestionType = "number"
	QuestionEmail    QuestionType = "email"
	QuestionPhone    QuestionType = "phone"
	QuestionDate     QuestionType = "date"
	QuestionSelect   QuestionType = "select"
	QuestionRadio    QuestionType = "radio"
	QuestionCheckbox QuestionType = "checkbox"
	QuestionFile     QuestionType = "file"
)

// IsNumeric reports whether answers to this type are bucketed as numbers
func (t QuestionType) IsNumeric() bool {
	return t == QuestionNumber
}

// IsMultiChoice reports whether answers to this type are bucketed as choice lists
func (t QuestionType) IsMultiChoice() bool {
	return t == QuestionCheckbox
}

// Option represents one selectable choice of a select/radio/checkbox question.
// The backend sends options either as bare strings or as {value,label} objects.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// UnmarshalJSON accepts both the bare-string and the object form
func (o *Option) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Value = s
		o.Label = s
		return nil
	}

	type option Option
	var obj option
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*o = Option(obj)
	if o.Label == "" {
		o.Label = o.Value
	}
	return nil
}

// Question represents a single server-supplied questionnaire question.
// Questions are immutable from the client's perspective.
type Question struct {
	ID               int          `json:"id" validate:"required"`
	QuestionText     string       `json:"question_text"`
	QuestionType     QuestionType `json:"question_type" validate:"required,oneof=text number email phone date select radio checkbox file"`
	IsRequired       bool         `json:"is_required"`
	Options          []Option     `json:"options,omitempty"`
	MinValue         *float64     `json:"min_value,omitempty"`
	MaxValue         *float64     `json:"max_value,omitempty"`
	AllowedFileTypes []string     `json:"allowed_file_types,omitempty"`
}

// Questionnaire represents the optional, offer-specific question set
type Questionnaire struct {
	ID        int        `json:"id" validate:"required"`
	OfferID   int        `json:"offer,omitempty"`
	Title     string     `json:"title,omitempty"`
	Questions []Question `json:"questions" validate:"dive"`
}

// QuestionByID returns the question with the given id, or nil if absent
func (q *Questionnaire) QuestionByID(id int) *Question {
	if q == nil {
		return nil
	}
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}
