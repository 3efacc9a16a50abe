package interpret

// Priority labels, in match precedence order.
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Category labels.
const (
	CategoryGeneral       = "General"
	CategoryMeeting       = "Meeting"
	CategoryReview        = "Review"
	CategoryDevelopment   = "Development"
	CategoryCommunication = "Communication"
)

// Draft is the structured form of a raw task description, prior to
// persistence. It carries no ID and no creation time; the store assigns both.
type Draft struct {
	Text             string
	Category         string
	Priority         string
	DueDate          string // display label, e.g. "June 2, 2025 at 3pm"
	DueDateTimestamp int64  // epoch milliseconds, authoritative due instant
	Completed        bool
}
