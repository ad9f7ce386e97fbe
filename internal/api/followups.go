package api

import (
	"context"

	"github.com/leadline-crm/leadline/internal/model"
)

// FollowUps fetches the full follow-up collection.
func (c *Client) FollowUps(ctx context.Context) ([]model.FollowUp, error) {
	var followUps []model.FollowUp
	if err := c.Get(ctx, "/followups", nil, &followUps); err != nil {
		return nil, err
	}
	return followUps, nil
}

// UpcomingFollowUps fetches the dashboard's upcoming panel.
func (c *Client) UpcomingFollowUps(ctx context.Context) ([]model.FollowUp, error) {
	var followUps []model.FollowUp
	if err := c.Get(ctx, "/followups/upcoming", nil, &followUps); err != nil {
		return nil, err
	}
	return followUps, nil
}

// CreateFollowUp logs a follow-up. The terminal-status invariant is
// enforced here so no caller can persist a scheduled next follow-up on a
// closed lead.
func (c *Client) CreateFollowUp(ctx context.Context, fu model.FollowUp) (model.FollowUp, error) {
	fu.Normalize()
	if err := fu.Validate(); err != nil {
		return model.FollowUp{}, err
	}
	var created model.FollowUp
	if err := c.Post(ctx, "/followups", fu, &created); err != nil {
		return model.FollowUp{}, err
	}
	return created, nil
}

// UpdateFollowUp replaces a follow-up record.
func (c *Client) UpdateFollowUp(ctx context.Context, fu model.FollowUp) (model.FollowUp, error) {
	fu.Normalize()
	if err := fu.Validate(); err != nil {
		return model.FollowUp{}, err
	}
	var updated model.FollowUp
	if err := c.Put(ctx, "/followups/"+fu.ID, fu, &updated); err != nil {
		return model.FollowUp{}, err
	}
	return updated, nil
}

// DeleteFollowUp removes a follow-up by id.
func (c *Client) DeleteFollowUp(ctx context.Context, id string) error {
	return c.Delete(ctx, "/followups/"+id)
}
