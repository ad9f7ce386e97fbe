package model

import "fmt"

// LeadRef is the snapshot of the owning lead the backend embeds in a
// follow-up so lists can render without a second fetch.
type LeadRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// FollowUp is a logged interaction with a lead, optionally scheduling
// the next one.
type FollowUp struct {
	ID               string  `json:"id"`
	LeadID           string  `json:"leadId"`
	Lead             LeadRef `json:"lead"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	FollowedBy       string  `json:"followedBy"`
	Feedback         string  `json:"feedback"`
	Status           Status  `json:"status"`
	NextFollowUpDate string  `json:"nextFollowUpDate,omitempty"`
	NextFollowUpTime string  `json:"nextFollowUpTime,omitempty"`
}

// Normalize enforces the terminal-status invariant: once a follow-up is
// Converted or Dropped there is nothing left to schedule, so the next
// follow-up fields are cleared before the payload is persisted.
func (f *FollowUp) Normalize() {
	if f.Status.IsTerminal() {
		f.NextFollowUpDate = ""
		f.NextFollowUpTime = ""
	}
}

// Validate checks the fields the backend requires on create and update.
func (f FollowUp) Validate() error {
	if f.LeadID == "" {
		return fmt.Errorf("follow-up lead id is required")
	}
	if f.Date == "" {
		return fmt.Errorf("follow-up date is required")
	}
	if f.FollowedBy == "" {
		return fmt.Errorf("follow-up employee is required")
	}
	if _, err := ParseStatus(string(f.Status)); err != nil {
		return err
	}
	if f.Status.IsTerminal() && (f.NextFollowUpDate != "" || f.NextFollowUpTime != "") {
		return fmt.Errorf("%s follow-up must not schedule a next follow-up", f.Status)
	}
	return nil
}
