// Package answers turns the candidate's in-memory answer sheet into the wire
// payload submitted with an application, including asynchronous base64
// encoding of uploaded files.
package answers

import "github.com/jonathan/forum-agent/internal/types"

// Entry pairs a question id with its current answer value
type Entry struct {
	QuestionID int
	Value      types.AnswerValue
}

// Sheet is an ordered answer map keyed by question id. Insertion order is
// preserved so serialization output is deterministic; setting an existing
// id replaces the value in place.
type Sheet struct {
	order  []int
	values map[int]types.AnswerValue
}

// NewSheet creates an empty answer sheet
func NewSheet() *Sheet {
	return &Sheet{values: make(map[int]types.AnswerValue)}
}

// Set records or replaces the answer for a question
func (s *Sheet) Set(questionID int, value types.AnswerValue) {
	if _, ok := s.values[questionID]; !ok {
		s.order = append(s.order, questionID)
	}
	s.values[questionID] = value
}

// Get returns the answer for a question, if any
func (s *Sheet) Get(questionID int) (types.AnswerValue, bool) {
	v, ok := s.values[questionID]
	return v, ok
}

// Remove deletes the answer for a question
func (s *Sheet) Remove(questionID int) {
	if _, ok := s.values[questionID]; !ok {
		return
	}
	delete(s.values, questionID)
	for i, id := range s.order {
		if id == questionID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of recorded answers, empty values included
func (s *Sheet) Len() int {
	return len(s.order)
}

// Entries returns the answers in insertion order
func (s *Sheet) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Entry{QuestionID: id, Value: s.values[id]})
	}
	return out
}
