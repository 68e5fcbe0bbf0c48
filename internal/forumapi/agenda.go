package forumapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/forum-agent/internal/schemas"
	"github.com/jonathan/forum-agent/internal/types"
)

// GetAgenda fetches the full interview slot and programme listing for a
// forum. Slots come back unfiltered; availability filtering happens in the
// agenda package at load time.
func (c *Client) GetAgenda(ctx context.Context, forumID int) (*types.Agenda, error) {
	path := fmt.Sprintf("/virtual/forums/%d/agenda/", forumID)

	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateAgenda(raw); err != nil {
		return nil, fmt.Errorf("agenda for forum %d: %w", forumID, err)
	}

	var agenda types.Agenda
	if err := json.Unmarshal(raw, &agenda); err != nil {
		return nil, fmt.Errorf("failed to decode agenda for forum %d: %w", forumID, err)
	}
	if err := c.validate.Struct(&agenda); err != nil {
		return nil, fmt.Errorf("agenda for forum %d failed validation: %w", forumID, err)
	}

	return &agenda, nil
}
