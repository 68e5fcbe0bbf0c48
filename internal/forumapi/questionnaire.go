package forumapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/forum-agent/internal/logging"
	"github.com/jonathan/forum-agent/internal/schemas"
	"github.com/jonathan/forum-agent/internal/types"
)

// GetQuestionnaire fetches the questionnaire configured for an offer.
// A 404 means no questionnaire is configured and returns (nil, nil); every
// other failure is returned as an error so callers can tell a transient
// server fault apart from "none configured".
func (c *Client) GetQuestionnaire(ctx context.Context, offerID int) (*types.Questionnaire, error) {
	path := fmt.Sprintf("/virtual/offers/%d/questionnaire/", offerID)

	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		if IsNotFound(err) {
			c.log.Debug("no questionnaire configured", logging.Fields{"offer": offerID})
			return nil, nil
		}
		return nil, err
	}

	if err := schemas.ValidateQuestionnaire(raw); err != nil {
		return nil, fmt.Errorf("questionnaire for offer %d: %w", offerID, err)
	}

	var questionnaire types.Questionnaire
	if err := json.Unmarshal(raw, &questionnaire); err != nil {
		return nil, fmt.Errorf("failed to decode questionnaire for offer %d: %w", offerID, err)
	}
	if err := c.validate.Struct(&questionnaire); err != nil {
		return nil, fmt.Errorf("questionnaire for offer %d failed validation: %w", offerID, err)
	}

	return &questionnaire, nil
}
