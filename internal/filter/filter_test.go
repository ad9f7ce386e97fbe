package filter

import (
	"testing"

	"github.com/leadline-crm/leadline/internal/model"
)

func testLeads() []model.Lead {
	return []model.Lead{
		{ID: "1", Name: "Asha Verma", Mobile: "9876543210", Email: "asha@example.com", Status: model.StatusInterested, Branch: "North", LeadSource: "Website"},
		{ID: "2", Name: "Bilal Khan", Mobile: "9123456780", Status: model.StatusConverted, Branch: "South", LeadSource: "Referral"},
		{ID: "3", Name: "Carla Dsouza", Mobile: "9988776655", Email: "carla@example.com", Status: model.StatusInterested, Branch: "North", LeadSource: "Walk-in"},
		{ID: "4", Name: "Deepak Rao", Mobile: "9000011111", Email: "deepak@example.com", Status: model.StatusDropped, Branch: "South", LeadSource: "Website"},
	}
}

func leadIDs(leads []model.Lead) []string {
	ids := make([]string, len(leads))
	for i, l := range leads {
		ids[i] = l.ID
	}
	return ids
}

func assertIDs(t *testing.T, got []model.Lead, want ...string) {
	t.Helper()
	ids := leadIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestLeads_NoCriteriaReturnsInputUnchanged(t *testing.T) {
	leads := testLeads()

	got := Leads(leads, Criteria{})

	if len(got) != len(leads) {
		t.Fatalf("expected all %d leads, got %d", len(leads), len(got))
	}
	// Identity, not a copy.
	if &got[0] != &leads[0] {
		t.Fatal("expected the input slice to be returned as-is")
	}
}

func TestLeads_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "name match is case-insensitive", search: "ASHA", want: []string{"1"}},
		{name: "partial name", search: "a", want: []string{"1", "2", "3", "4"}},
		{name: "mobile substring", search: "98765", want: []string{"1"}},
		{name: "email match", search: "carla@", want: []string{"3"}},
		{name: "no match", search: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Leads(testLeads(), Criteria{Search: tt.search})
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestLeads_SearchSkipsAbsentEmail(t *testing.T) {
	// Lead 2 has no email; a query matching other leads' emails must not
	// panic on it or match it.
	got := Leads(testLeads(), Criteria{Search: "example.com"})
	assertIDs(t, got, "1", "3", "4")
}

func TestLeads_ExactFilters(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{name: "status", criteria: Criteria{Status: "Interested"}, want: []string{"1", "3"}},
		{name: "status is exact not substring", criteria: Criteria{Status: "Interest"}, want: nil},
		{name: "branch", criteria: Criteria{Branch: "South"}, want: []string{"2", "4"}},
		{name: "source", criteria: Criteria{Source: "Website"}, want: []string{"1", "4"}},
		{
			name:     "criteria combine as AND",
			criteria: Criteria{Branch: "South", Source: "Website"},
			want:     []string{"4"},
		},
		{
			name:     "search ANDs with filters",
			criteria: Criteria{Search: "example.com", Status: "Interested"},
			want:     []string{"1", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Leads(testLeads(), tt.criteria)
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestLeads_PreservesOrder(t *testing.T) {
	got := Leads(testLeads(), Criteria{Branch: "North"})
	assertIDs(t, got, "1", "3")
}

func testFollowUps() []model.FollowUp {
	return []model.FollowUp{
		{ID: "f1", Lead: model.LeadRef{Name: "Asha Verma", Mobile: "9876543210"}, FollowedBy: "Ravi", Feedback: "Asked for fees", Status: model.StatusInterested},
		{ID: "f2", Lead: model.LeadRef{Name: "Bilal Khan", Mobile: "9123456780"}, FollowedBy: "Meena", Feedback: "Enrolled today", Status: model.StatusConverted},
		{ID: "f3", Lead: model.LeadRef{Name: "Carla Dsouza", Mobile: "9988776655"}, FollowedBy: "Ravi", Feedback: "Call later", Status: model.StatusNextFollowUp},
	}
}

func TestFollowUps_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "lead name", search: "bilal", want: []string{"f2"}},
		{name: "lead mobile", search: "99887", want: []string{"f3"}},
		{name: "feedback", search: "fees", want: []string{"f1"}},
		{name: "employee", search: "ravi", want: []string{"f1", "f3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FollowUps(testFollowUps(), Criteria{Search: tt.search})
			if len(got) != len(tt.want) {
				t.Fatalf("got %d follow-ups, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i].ID != tt.want[i] {
					t.Fatalf("got %s at %d, want %s", got[i].ID, i, tt.want[i])
				}
			}
		})
	}
}

func TestFollowUps_EmployeeFilterIsExact(t *testing.T) {
	got := FollowUps(testFollowUps(), Criteria{Employee: "Ravi"})
	if len(got) != 2 || got[0].ID != "f1" || got[1].ID != "f3" {
		t.Fatalf("unexpected result: %+v", got)
	}

	// Unlike search, the filter does not match substrings.
	got = FollowUps(testFollowUps(), Criteria{Employee: "Rav"})
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFollowUps_NoCriteriaReturnsInputUnchanged(t *testing.T) {
	followUps := testFollowUps()
	got := FollowUps(followUps, Criteria{})
	if &got[0] != &followUps[0] {
		t.Fatal("expected the input slice to be returned as-is")
	}
}

func TestCriteria_IsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Fatal("empty criteria should be zero")
	}
	if (Criteria{Search: "x"}).IsZero() {
		t.Fatal("criteria with search should not be zero")
	}
	if (Criteria{Employee: "x"}).IsZero() {
		t.Fatal("criteria with employee should not be zero")
	}
}
