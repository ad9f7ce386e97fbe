package filter

import (
	"testing"

	"github.com/leadline-crm/leadline/internal/model"
)

func TestLeadBranches_DistinctFirstSeenOrder(t *testing.T) {
	leads := []model.Lead{
		{Branch: "South"},
		{Branch: "North"},
		{Branch: "South"},
		{Branch: ""},
		{Branch: "East"},
		{Branch: "North"},
	}

	got := LeadBranches(leads)

	want := []string{"South", "North", "East"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLeadSources_ExcludesEmpty(t *testing.T) {
	leads := []model.Lead{{LeadSource: ""}, {LeadSource: ""}}
	if got := LeadSources(leads); len(got) != 0 {
		t.Fatalf("expected no facets, got %v", got)
	}
}

func TestFollowUpEmployees(t *testing.T) {
	followUps := []model.FollowUp{
		{FollowedBy: "Meena"},
		{FollowedBy: "Ravi"},
		{FollowedBy: "Meena"},
	}

	got := FollowUpEmployees(followUps)

	if len(got) != 2 || got[0] != "Meena" || got[1] != "Ravi" {
		t.Fatalf("got %v, want [Meena Ravi]", got)
	}
}

func TestFacets_EmptyInput(t *testing.T) {
	if got := LeadBranches(nil); len(got) != 0 {
		t.Fatalf("expected no facets for nil input, got %v", got)
	}
}
