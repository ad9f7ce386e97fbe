// Package model defines the core CRM entities exchanged with the backend.
package model

import (
	"fmt"
	"time"
)

// Status is the pipeline stage shared by leads and follow-ups.
type Status string

// Pipeline stages, as the backend serializes them.
const (
	StatusInterested    Status = "Interested"
	StatusNotInterested Status = "Not Interested"
	StatusVisitOffice   Status = "Visit Office"
	StatusConverted     Status = "Converted"
	StatusDropped       Status = "Dropped"
	StatusNextFollowUp  Status = "Next Follow-up"
)

// AllStatuses lists every pipeline stage in display order.
var AllStatuses = []Status{
	StatusNextFollowUp,
	StatusVisitOffice,
	StatusInterested,
	StatusNotInterested,
	StatusConverted,
	StatusDropped,
}

// ParseStatus validates a wire value against the closed status set.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown lead status: %q", s)
}

// IsTerminal reports whether the status ends the pipeline. Terminal
// statuses must not carry a scheduled next follow-up.
func (s Status) IsTerminal() bool {
	return s == StatusConverted || s == StatusDropped
}

// String returns the wire representation.
func (s Status) String() string {
	return string(s)
}

// Lead represents a prospective student tracked through the sales pipeline.
type Lead struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Mobile         string    `json:"mobile"`
	Email          string    `json:"email,omitempty"`
	Status         Status    `json:"leadStatus"`
	Branch         string    `json:"branch"`
	LeadSource     string    `json:"leadSource"`
	Course         string    `json:"course"`
	Specialization string    `json:"specialization,omitempty"`
	HandledBy      string    `json:"handledBy,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// Validate checks the fields the backend requires on create and update.
func (l Lead) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("lead name is required")
	}
	if l.Mobile == "" {
		return fmt.Errorf("lead mobile is required")
	}
	if _, err := ParseStatus(string(l.Status)); err != nil {
		return err
	}
	return nil
}
