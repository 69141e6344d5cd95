package constants

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

var priorityCatalog = []Option{
	{Value: string(PriorityLow), Label: "Low", Color: "#10b981"},
	{Value: string(PriorityMedium), Label: "Medium", Color: "#f59e0b"},
	{Value: string(PriorityHigh), Label: "High", Color: "#ef4444"},
}

func Priorities() []TaskPriority {
	out := make([]TaskPriority, len(priorityCatalog))
	for i, o := range priorityCatalog {
		out[i] = TaskPriority(o.Value)
	}
	return out
}

func PriorityOptions() []Option {
	out := make([]Option, len(priorityCatalog))
	copy(out, priorityCatalog)
	return out
}

func (p TaskPriority) Valid() bool {
	for _, o := range priorityCatalog {
		if o.Value == string(p) {
			return true
		}
	}
	return false
}

func (p TaskPriority) Label() string {
	for _, o := range priorityCatalog {
		if o.Value == string(p) {
			return o.Label
		}
	}
	return string(p)
}
