package filter

import "github.com/leadline-crm/leadline/internal/model"

// LeadBranches returns the distinct non-empty branches across the leads,
// in first-seen order. Recomputed whenever the raw collection changes.
func LeadBranches(items []model.Lead) []string {
	return distinct(items, func(l model.Lead) string { return l.Branch })
}

// LeadSources returns the distinct non-empty lead sources across the
// leads, in first-seen order.
func LeadSources(items []model.Lead) []string {
	return distinct(items, func(l model.Lead) string { return l.LeadSource })
}

// FollowUpEmployees returns the distinct non-empty followed-by names
// across the follow-ups, in first-seen order.
func FollowUpEmployees(items []model.FollowUp) []string {
	return distinct(items, func(f model.FollowUp) string { return f.FollowedBy })
}

func distinct[T any](items []T, field func(T) string) []string {
	seen := make(map[string]bool, len(items))
	var values []string
	for _, item := range items {
		v := field(item)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
