// Package types provides type definitions for structured data used throughout the forum-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "io"

// AnswerValue is the tagged union of in-memory answer representations.
// Exactly one concrete variant exists per question type category, replacing
// the dynamically-typed answer map of earlier designs.
type AnswerValue interface {
	// Empty reports whether the value counts as unanswered and must be
	// omitted from serialization.
	Empty() bool

	answerValue()
}

// TextValue holds a free-form string answer (text, email, phone, date, select, radio)
type TextValue string

// NumberValue holds a numeric answer
type NumberValue float64

// ChoicesValue holds a multi-select answer (checkbox)
type ChoicesValue []string

// FileValue holds a handle to an uploaded file. Open is called during
// serialization; the content is never held in memory before that point.
type FileValue struct {
	Name        string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

func (TextValue) answerValue()    {}
func (NumberValue) answerValue()  {}
func (ChoicesValue) answerValue() {}
func (FileValue) answerValue()    {}

// Empty reports whether the text is blank
func (v TextValue) Empty() bool { return v == "" }

// Empty always returns false: a number, once set, is an answer
func (v NumberValue) Empty() bool { return false }

// Empty reports whether no choices were made
func (v ChoicesValue) Empty() bool { return len(v) == 0 }

// Empty reports whether the handle is unset
func (v FileValue) Empty() bool { return v.Open == nil }

// AnswerFile is the wire form of an encoded file upload
type AnswerFile struct {
	Name string `json:"name"`
	Size int    `json:"size"`
	Type string `json:"type"`
	Data string `json:"data"` // base64
}

// Answer is the wire form of one answered question. Exactly one of the four
// answer_* fields is non-null, matching the question's type category.
type Answer struct {
	Question      int          `json:"question"`
	QuestionText  string       `json:"question_text"`
	QuestionType  QuestionType `json:"question_type"`
	AnswerText    *string      `json:"answer_text"`
	AnswerNumber  *float64     `json:"answer_number"`
	AnswerChoices []string     `json:"answer_choices"`
	AnswerFile    *AnswerFile  `json:"answer_file"`
}

// QuestionnaireResponse embeds the answered questionnaire in an application
type QuestionnaireResponse struct {
	QuestionnaireID int      `json:"questionnaire_id"`
	Answers         []Answer `json:"answers"`
}
