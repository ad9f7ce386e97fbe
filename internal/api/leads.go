package api

import (
	"context"
	"net/url"

	"github.com/leadline-crm/leadline/internal/model"
)

// Leads fetches the full lead collection.
func (c *Client) Leads(ctx context.Context) ([]model.Lead, error) {
	var leads []model.Lead
	if err := c.Get(ctx, "/leads", nil, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// Lead fetches a single lead by id.
func (c *Client) Lead(ctx context.Context, id string) (model.Lead, error) {
	var lead model.Lead
	if err := c.Get(ctx, "/leads/"+id, nil, &lead); err != nil {
		return model.Lead{}, err
	}
	return lead, nil
}

// RecentLeads fetches the dashboard's recent-leads panel.
func (c *Client) RecentLeads(ctx context.Context) ([]model.Lead, error) {
	var leads []model.Lead
	if err := c.Get(ctx, "/leads/recent", nil, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// SearchLeadsByMobile queries the backend's mobile-number search.
func (c *Client) SearchLeadsByMobile(ctx context.Context, mobile string) ([]model.Lead, error) {
	query := url.Values{"mobile": {mobile}}
	var leads []model.Lead
	if err := c.Get(ctx, "/leads/search", query, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// CreateLead submits a new lead and returns the stored record.
func (c *Client) CreateLead(ctx context.Context, lead model.Lead) (model.Lead, error) {
	if err := lead.Validate(); err != nil {
		return model.Lead{}, err
	}
	var created model.Lead
	if err := c.Post(ctx, "/leads", lead, &created); err != nil {
		return model.Lead{}, err
	}
	return created, nil
}

// UpdateLead replaces a lead and returns the stored record.
func (c *Client) UpdateLead(ctx context.Context, lead model.Lead) (model.Lead, error) {
	if err := lead.Validate(); err != nil {
		return model.Lead{}, err
	}
	var updated model.Lead
	if err := c.Put(ctx, "/leads/"+lead.ID, lead, &updated); err != nil {
		return model.Lead{}, err
	}
	return updated, nil
}

// DeleteLead removes a lead by id.
func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.Delete(ctx, "/leads/"+id)
}
