package forumapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/forum-agent/internal/logging"
	"github.com/jonathan/forum-agent/internal/types"
)

// CreateApplication submits an application record with its embedded
// questionnaire responses and selected slot id.
func (c *Client) CreateApplication(ctx context.Context, req types.ApplicationRequest) (*types.Application, error) {
	raw, err := c.do(ctx, http.MethodPost, "/virtual/applications/", req)
	if err != nil {
		return nil, err
	}

	var app types.Application
	if err := json.Unmarshal(raw, &app); err != nil {
		return nil, fmt.Errorf("failed to decode created application: %w", err)
	}

	c.log.Info("application created", logging.Fields{
		"application": app.ID,
		"offer":       req.Offer,
		"forum":       req.Forum,
	})
	return &app, nil
}

// BookSlot reserves one interview slot within a forum's agenda. Conflicts
// (the slot was taken mid-session) surface as a *StatusError from the
// backend, which is the sole enforcer of slot exclusivity.
func (c *Client) BookSlot(ctx context.Context, forumID, slotID int) error {
	path := fmt.Sprintf("/virtual/forums/%d/agenda/%d/book/", forumID, slotID)
	if _, err := c.do(ctx, http.MethodPost, path, nil); err != nil {
		return err
	}

	c.log.Info("slot booked", logging.Fields{"forum": forumID, "slot": slotID})
	return nil
}

// ListOffers fetches the offers published within a forum
func (c *Client) ListOffers(ctx context.Context, forumID int) ([]types.Offer, error) {
	path := fmt.Sprintf("/virtual/forums/%d/offers/", forumID)

	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var offers []types.Offer
	if err := json.Unmarshal(raw, &offers); err != nil {
		return nil, fmt.Errorf("failed to decode offers for forum %d: %w", forumID, err)
	}
	return offers, nil
}

// AddFavorite marks an offer as a favorite for the current candidate
func (c *Client) AddFavorite(ctx context.Context, offerID int) error {
	path := fmt.Sprintf("/virtual/offers/%d/favorite/", offerID)
	_, err := c.do(ctx, http.MethodPost, path, nil)
	return err
}

// RemoveFavorite clears an offer from the candidate's favorites
func (c *Client) RemoveFavorite(ctx context.Context, offerID int) error {
	path := fmt.Sprintf("/virtual/offers/%d/favorite/", offerID)
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}
