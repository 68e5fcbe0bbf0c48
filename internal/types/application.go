// Package types provides type definitions for structured data used throughout the forum-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// ApplicationStatus is the lifecycle state of an application record
type ApplicationStatus string

// StatusPending is the fixed status of every client-created application.
// The backend owns all later transitions.
const StatusPending ApplicationStatus = "pending"

// ApplicationDraft accumulates the candidate's input across wizard steps.
// It lives for exactly one wizard session: created on open, discarded on
// close or submit.
type ApplicationDraft struct {
	ID            uuid.UUID
	Offer         Offer
	ForumID       int
	Questionnaire *QuestionnaireResponse
	Slot          *Slot
	Status        ApplicationStatus
}

// NewApplicationDraft creates an empty draft for the given offer and forum
func NewApplicationDraft(offer Offer, forumID int) *ApplicationDraft {
	return &ApplicationDraft{
		ID:      uuid.New(),
		Offer:   offer,
		ForumID: forumID,
		Status:  StatusPending,
	}
}

// ApplicationRequest is the wire payload of POST /virtual/applications/
type ApplicationRequest struct {
	Offer                  int                    `json:"offer"`
	Forum                  int                    `json:"forum"`
	QuestionnaireResponses *QuestionnaireResponse `json:"questionnaire_responses,omitempty"`
	SelectedSlot           *int                   `json:"selected_slot,omitempty"`
	Status                 ApplicationStatus      `json:"status"`
}

// ToRequest converts the draft into its wire form
func (d *ApplicationDraft) ToRequest() ApplicationRequest {
	req := ApplicationRequest{
		Offer:                  d.Offer.ID,
		Forum:                  d.ForumID,
		QuestionnaireResponses: d.Questionnaire,
		Status:                 d.Status,
	}
	if d.Slot != nil {
		id := d.Slot.ID
		req.SelectedSlot = &id
	}
	return req
}

// Application is the backend's record of a created application
type Application struct {
	ID           int               `json:"id"`
	Offer        int               `json:"offer"`
	Forum        int               `json:"forum"`
	SelectedSlot *int              `json:"selected_slot,omitempty"`
	Status       ApplicationStatus `json:"status"`
	CreatedAt    string            `json:"created_at,omitempty"`
}
