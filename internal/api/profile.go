package api

import (
	"context"
	"net/http"

	"github.com/saadjs/fitguide-cli/internal/model"
)

// ProfileUpdate is a partial update; nil fields are omitted from the
// payload and left untouched server-side. TDEE and the calorie target are
// recomputed by the API on every write.
type ProfileUpdate struct {
	Gender           *string  `json:"gender,omitempty"`
	Age              *int     `json:"age,omitempty"`
	HeightCm         *float64 `json:"height_cm,omitempty"`
	WeightKg         *float64 `json:"weight_kg,omitempty"`
	ActivityLevel    *string  `json:"activity_level,omitempty"`
	Goal             *string  `json:"goal,omitempty"`
	RemindersEnabled *bool    `json:"reminders_enabled,omitempty"`
}

func (c *Client) GetProfile(ctx context.Context) (model.Profile, error) {
	var out model.Profile
	if err := c.do(ctx, http.MethodGet, "update-profile/", nil, &out); err != nil {
		return model.Profile{}, noProfile(err)
	}
	return out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in ProfileUpdate) (model.Profile, error) {
	var out model.Profile
	if err := c.do(ctx, http.MethodPost, "update-profile/", in, &out); err != nil {
		return model.Profile{}, err
	}
	return out, nil
}
