package model

import "testing"

func TestFollowUp_NormalizeClearsScheduleOnTerminalStatus(t *testing.T) {
	for _, status := range []Status{StatusConverted, StatusDropped} {
		fu := FollowUp{
			LeadID:           "1",
			Date:             "2026-02-10",
			FollowedBy:       "Ravi",
			Status:           status,
			NextFollowUpDate: "2026-02-20",
			NextFollowUpTime: "10:00",
		}

		fu.Normalize()

		if fu.NextFollowUpDate != "" || fu.NextFollowUpTime != "" {
			t.Fatalf("%s: next follow-up fields not cleared: %+v", status, fu)
		}
	}
}

func TestFollowUp_NormalizeKeepsScheduleOtherwise(t *testing.T) {
	fu := FollowUp{
		Status:           StatusNextFollowUp,
		NextFollowUpDate: "2026-02-20",
		NextFollowUpTime: "10:00",
	}

	fu.Normalize()

	if fu.NextFollowUpDate != "2026-02-20" || fu.NextFollowUpTime != "10:00" {
		t.Fatalf("schedule should survive a non-terminal status: %+v", fu)
	}
}

func TestFollowUp_Validate(t *testing.T) {
	valid := FollowUp{LeadID: "1", Date: "2026-02-10", FollowedBy: "Ravi", Status: StatusInterested}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid follow-up rejected: %v", err)
	}

	tests := []struct {
		name string
		fu   FollowUp
	}{
		{name: "missing lead", fu: FollowUp{Date: "2026-02-10", FollowedBy: "Ravi", Status: StatusInterested}},
		{name: "missing date", fu: FollowUp{LeadID: "1", FollowedBy: "Ravi", Status: StatusInterested}},
		{name: "missing employee", fu: FollowUp{LeadID: "1", Date: "2026-02-10", Status: StatusInterested}},
		{name: "bad status", fu: FollowUp{LeadID: "1", Date: "2026-02-10", FollowedBy: "Ravi", Status: "Done"}},
		{
			name: "terminal status with schedule",
			fu: FollowUp{
				LeadID: "1", Date: "2026-02-10", FollowedBy: "Ravi",
				Status: StatusConverted, NextFollowUpDate: "2026-02-20",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fu.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
