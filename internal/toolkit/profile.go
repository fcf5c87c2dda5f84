package toolkit

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"fnctl/internal/functionapp"
)

// Messages shown when the profile endpoint gives no usable error.
const (
	ProfileFallbackMessage = "Error occurred during login"
	ProfileFetchMessage    = "Error occurred during fetch"
)

// UpdateProfile patches the profile fields of the user with p.ID.
func (c *Client) UpdateProfile(ctx context.Context, p functionapp.Profile) error {
	if p.ID == "" {
		return fmt.Errorf("profile id is required")
	}
	err := c.do(ctx, http.MethodPatch, userProfilePath(p.ID), nil, p, nil)
	if err == nil {
		return nil
	}
	var tkErr *Error
	if errors.As(err, &tkErr) {
		if tkErr.Message == "" {
			tkErr.Message = ProfileFallbackMessage
		}
		return tkErr
	}
	return fmt.Errorf("%s: %w", ProfileFetchMessage, err)
}
