package intent

import "github.com/BuzzLyutic/todo-copilot/internal/model"

type Parameter struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Enum        []string `json:"enum,omitempty"`
}

type ActionSpec struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
}

var priorityEnum = []string{string(model.PriorityLow), string(model.PriorityMedium), string(model.PriorityHigh)}

// Actions describes the actions an assistant can invoke, in the shape it registers them.
func Actions() []ActionSpec {
	return []ActionSpec{
		{
			Name:        ActionAdd,
			Description: "Add a new todo task",
			Parameters: []Parameter{
				{Name: "taskname", Type: "string", Description: "The name of the task to add", Required: true},
				{Name: "taskinfo", Type: "string", Description: "The information about the task to add", Required: true},
				{Name: "taskdate", Type: "string", Description: "The date of the task to add (YYYY-MM-DD format)", Required: true},
				{Name: "tasktime", Type: "string", Description: "The time of the task to add (HH:MM format)", Required: true},
				{Name: "taskpriority", Type: "string", Description: "The priority of the task to add (low, medium, high)", Required: true, Enum: priorityEnum},
			},
		},
		{
			Name:        ActionDelete,
			Description: "Delete a specific todo task by title",
			Parameters: []Parameter{
				{Name: "taskname", Type: "string", Description: "The name of the task to delete", Required: true},
			},
		},
		{
			Name:        ActionUpdate,
			Description: "Update an existing todo task",
			Parameters: []Parameter{
				{Name: "currenttaskname", Type: "string", Description: "The current name of the task to update", Required: true},
				{Name: "newtaskname", Type: "string", Description: "The new name for the task"},
				{Name: "newtaskinfo", Type: "string", Description: "The new description for the task"},
				{Name: "newtaskdate", Type: "string", Description: "The new date for the task (YYYY-MM-DD format)"},
				{Name: "newtasktime", Type: "string", Description: "The new time for the task (HH:MM format)"},
				{Name: "newtaskpriority", Type: "string", Description: "The new priority for the task (low, medium, high)", Enum: priorityEnum},
			},
		},
	}
}

// ReadableTodo is the task view shared with the assistant; the color tag is presentation only.
type ReadableTodo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

func Readable(tasks []model.Task) []ReadableTodo {
	out := make([]ReadableTodo, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ReadableTodo{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Deadline:    t.Deadline.Format(dateLayout + " " + timeLayout),
			Priority:    string(t.Priority),
			Completed:   t.Completed,
		})
	}
	return out
}
