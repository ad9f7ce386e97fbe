package model

// Branch is an office location leads are assigned to.
type Branch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Course is an offered program, optionally with specializations that a
// lead form only shows when present.
type Course struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specializations []string `json:"specializations,omitempty"`
}

// LeadSource is a marketing channel a lead arrived through.
type LeadSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
