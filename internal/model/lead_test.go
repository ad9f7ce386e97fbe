package model

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "interested", input: "Interested", want: StatusInterested},
		{name: "next follow-up", input: "Next Follow-up", want: StatusNextFollowUp},
		{name: "converted", input: "Converted", want: StatusConverted},
		{name: "wrong case rejected", input: "interested", wantErr: true},
		{name: "unknown rejected", input: "Archived", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStatus(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[Status]bool{
		StatusConverted: true,
		StatusDropped:   true,
	}
	for _, s := range AllStatuses {
		if s.IsTerminal() != terminal[s] {
			t.Fatalf("%s: IsTerminal() = %v, want %v", s, s.IsTerminal(), terminal[s])
		}
	}
}

func TestStatus_ToneIsTotal(t *testing.T) {
	// Every pipeline stage must map to a display tone; an unmapped stage
	// would fall through to the warning default silently.
	want := map[Status]Tone{
		StatusConverted:     ToneSuccess,
		StatusInterested:    ToneSuccess,
		StatusDropped:       ToneDanger,
		StatusNotInterested: ToneDanger,
		StatusVisitOffice:   ToneInfo,
		StatusNextFollowUp:  ToneWarning,
	}
	for _, s := range AllStatuses {
		if got := s.Tone(); got != want[s] {
			t.Fatalf("%s: Tone() = %v, want %v", s, got, want[s])
		}
	}
}

func TestLead_Validate(t *testing.T) {
	valid := Lead{Name: "Asha", Mobile: "9876543210", Status: StatusInterested}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid lead rejected: %v", err)
	}

	tests := []struct {
		name string
		lead Lead
	}{
		{name: "missing name", lead: Lead{Mobile: "9876543210", Status: StatusInterested}},
		{name: "missing mobile", lead: Lead{Name: "Asha", Status: StatusInterested}},
		{name: "bad status", lead: Lead{Name: "Asha", Mobile: "9876543210", Status: "Maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.lead.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
