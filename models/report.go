package models

// IssueCategory enum
type IssueCategory string

const (
	Pothole     IssueCategory = "Pothole"
	Streetlight IssueCategory = "Streetlight Outage"
	Garbage     IssueCategory = "Overflowing Trash Bin"
	Electrical  IssueCategory = "Electrical Hazard"
	FireHazard  IssueCategory = "Fire Hazard"
	Graffiti    IssueCategory = "Graffiti"
	Other       IssueCategory = "Other"
)

// Categories lists every valid issue category, in display order.
var Categories = []IssueCategory{
	Pothole,
	Streetlight,
	Garbage,
	Electrical,
	FireHazard,
	Graffiti,
	Other,
}

// ParseCategory validates a raw string against the closed category
// enumeration. Unknown values are rejected, never coerced.
func ParseCategory(s string) (IssueCategory, bool) {
	for _, c := range Categories {
		if s == string(c) {
			return c, true
		}
	}
	return "", false
}

// ReportStatus enum
type ReportStatus string

const (
	Pending    ReportStatus = "Pending"
	InProgress ReportStatus = "In Progress"
	Resolved   ReportStatus = "Resolved"
)

// ParseStatus validates a raw string against the closed status enumeration.
func ParseStatus(s string) (ReportStatus, bool) {
	switch ReportStatus(s) {
	case Pending, InProgress, Resolved:
		return ReportStatus(s), true
	}
	return "", false
}

// Coordinates is a WGS84 point. Out-of-range values are accepted as-is.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Report represents a civic issue reported by a resident. A report is
// immutable once constructed; status advancement is a backend concern
// stubbed by seed data for display purposes.
type Report struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    IssueCategory `json:"category"`
	Status      ReportStatus  `json:"status"`
	Location    Coordinates   `json:"location"`
	ImageURL    string        `json:"imageUrl"`
	Date        string        `json:"date"`
	Upvotes     int           `json:"upvotes"`
	UserName    string        `json:"userName,omitempty"`
	Phone       string        `json:"phone,omitempty"`
}

// Suggestion is the result of classifying an issue photo. Either field may
// be empty when the classifier had nothing usable to offer.
type Suggestion struct {
	Category    IssueCategory `json:"category,omitempty"`
	Description string        `json:"description,omitempty"`
}
