package source

// Status is the publication state of a manga.
type Status string

const (
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
	StatusUnknown   Status = "Unknown"
)

// StatusFromCode maps the provider's numeric status code.
func StatusFromCode(code float64) Status {
	switch code {
	case 1:
		return StatusOngoing
	case 2:
		return StatusCompleted
	default:
		return StatusUnknown
	}
}
