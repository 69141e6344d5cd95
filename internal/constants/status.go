package constants

type TaskStatus string

const (
	StatusTodo             TaskStatus = "todo"
	StatusInProgress       TaskStatus = "in_progress"
	StatusPendingReview    TaskStatus = "pending_review"
	StatusApproved         TaskStatus = "approved"
	StatusRejectedRevision TaskStatus = "rejected_revision"
	StatusCancelled        TaskStatus = "cancelled"
)

// Option is one entry of an enum catalog as served to the UI.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusCatalog = []Option{
	{Value: string(StatusTodo), Label: "To Do", Color: "#6b7280"},
	{Value: string(StatusInProgress), Label: "In Progress", Color: "#3b82f6"},
	{Value: string(StatusPendingReview), Label: "Pending Review", Color: "#f59e0b"},
	{Value: string(StatusApproved), Label: "Approved", Color: "#10b981"},
	{Value: string(StatusRejectedRevision), Label: "Rejected - Needs Revision", Color: "#ef4444"},
	{Value: string(StatusCancelled), Label: "Cancelled", Color: "#9ca3af"},
}

// Statuses returns every status in lifecycle order.
func Statuses() []TaskStatus {
	out := make([]TaskStatus, len(statusCatalog))
	for i, o := range statusCatalog {
		out[i] = TaskStatus(o.Value)
	}
	return out
}

func StatusOptions() []Option {
	out := make([]Option, len(statusCatalog))
	copy(out, statusCatalog)
	return out
}

func (s TaskStatus) Valid() bool {
	for _, o := range statusCatalog {
		if o.Value == string(s) {
			return true
		}
	}
	return false
}

// Label returns the display label, or the raw value for unknown statuses.
func (s TaskStatus) Label() string {
	for _, o := range statusCatalog {
		if o.Value == string(s) {
			return o.Label
		}
	}
	return string(s)
}
