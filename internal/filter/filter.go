// Package filter derives the visible subset of a fetched collection from
// the user's current search and filter selections. All functions are pure:
// they never mutate their input and are cheap enough to run on every
// keystroke.
package filter

import (
	"strings"

	"github.com/leadline-crm/leadline/internal/model"
)

// Criteria holds the user's current filter selections. A criterion is
// active only when non-empty; inactive criteria impose no constraint.
type Criteria struct {
	Search   string
	Status   string
	Branch   string
	Source   string
	Employee string
}

// IsZero reports whether no criterion is active.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Status == "" && c.Branch == "" && c.Source == "" && c.Employee == ""
}

// Leads returns the leads satisfying every active criterion, preserving
// input order. Search matches name and email case-insensitively and
// mobile as a plain substring; a hit on any one field satisfies the
// search criterion.
func Leads(items []model.Lead, c Criteria) []model.Lead {
	if c.IsZero() {
		return items
	}

	result := make([]model.Lead, 0, len(items))
	for _, lead := range items {
		if c.Search != "" && !leadMatchesSearch(lead, c.Search) {
			continue
		}
		if c.Status != "" && string(lead.Status) != c.Status {
			continue
		}
		if c.Branch != "" && lead.Branch != c.Branch {
			continue
		}
		if c.Source != "" && lead.LeadSource != c.Source {
			continue
		}
		result = append(result, lead)
	}
	return result
}

// FollowUps returns the follow-ups satisfying every active criterion,
// preserving input order. Search matches the lead's name and mobile plus
// the feedback and employee fields.
func FollowUps(items []model.FollowUp, c Criteria) []model.FollowUp {
	if c.IsZero() {
		return items
	}

	result := make([]model.FollowUp, 0, len(items))
	for _, fu := range items {
		if c.Search != "" && !followUpMatchesSearch(fu, c.Search) {
			continue
		}
		if c.Status != "" && string(fu.Status) != c.Status {
			continue
		}
		if c.Employee != "" && fu.FollowedBy != c.Employee {
			continue
		}
		result = append(result, fu)
	}
	return result
}

func leadMatchesSearch(lead model.Lead, query string) bool {
	lower := strings.ToLower(query)
	if strings.Contains(strings.ToLower(lead.Name), lower) {
		return true
	}
	// Mobile numbers are digits; match case-sensitively.
	if strings.Contains(lead.Mobile, query) {
		return true
	}
	// An absent email simply never matches.
	return lead.Email != "" && strings.Contains(strings.ToLower(lead.Email), lower)
}

func followUpMatchesSearch(fu model.FollowUp, query string) bool {
	lower := strings.ToLower(query)
	if strings.Contains(strings.ToLower(fu.Lead.Name), lower) {
		return true
	}
	if strings.Contains(fu.Lead.Mobile, query) {
		return true
	}
	if strings.Contains(strings.ToLower(fu.Feedback), lower) {
		return true
	}
	return strings.Contains(strings.ToLower(fu.FollowedBy), lower)
}
