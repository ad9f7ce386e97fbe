package model

// Tone is the semantic display color of a pipeline stage. Every surface
// (CLI output, TUI theme) maps tones to its own styles, so this is the
// only place a status is interpreted for display.
type Tone int

// Display tones.
const (
	ToneSuccess Tone = iota
	ToneDanger
	ToneInfo
	ToneWarning
)

// Tone returns the display tone for the status. The switch is exhaustive
// over the closed status set; anything unexpected renders as a warning.
func (s Status) Tone() Tone {
	switch s {
	case StatusConverted, StatusInterested:
		return ToneSuccess
	case StatusDropped, StatusNotInterested:
		return ToneDanger
	case StatusVisitOffice:
		return ToneInfo
	case StatusNextFollowUp:
		return ToneWarning
	default:
		return ToneWarning
	}
}
