package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-copilot/internal/model"
	"github.com/BuzzLyutic/todo-copilot/internal/repo"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// TaskStore - операции хранилища, нужные адаптеру
type TaskStore interface {
	Create(ctx context.Context, in model.CreateTaskInput) (model.Task, error)
	Update(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error)
	Delete(ctx context.Context, id string) error
	FindByTitle(ctx context.Context, title string) (model.Task, error)
}

// Adapter never fails: every outcome, including bad input, is reported as a status line.
type Adapter struct {
	store  TaskStore
	logger *zap.Logger
	mu     sync.Mutex // поиск по имени и изменение выполняются атомарно
}

func NewAdapter(store TaskStore, logger *zap.Logger) *Adapter {
	return &Adapter{
		store:  store,
		logger: logger,
	}
}

func (a *Adapter) Dispatch(ctx context.Context, in Intent) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	var (
		reply string
		ok    bool
	)
	switch in := in.(type) {
	case AddIntent:
		reply, ok = a.add(ctx, in)
	case DeleteIntent:
		reply, ok = a.remove(ctx, in)
	case UpdateIntent:
		reply, ok = a.update(ctx, in)
	default:
		reply = fmt.Sprintf("Unsupported action: %T", in)
	}

	a.logger.Info("intent handled",
		zap.String("action", actionOf(in)),
		zap.Bool("applied", ok),
		zap.String("reply", reply),
	)
	return reply
}

func (a *Adapter) add(ctx context.Context, in AddIntent) (string, bool) {
	fail := func(reason string) (string, bool) {
		return fmt.Sprintf("Could not add task %s: %s", in.Name, reason), false
	}

	if missing := missingFields(
		field{"taskname", in.Name},
		field{"taskinfo", in.Info},
		field{"taskdate", in.Date},
		field{"tasktime", in.Time},
		field{"taskpriority", in.Priority},
	); len(missing) > 0 {
		return fail("missing " + strings.Join(missing, ", "))
	}
	if _, ok := model.ParsePriority(in.Priority); !ok {
		return fail(fmt.Sprintf("invalid priority %q (expected low, medium or high)", in.Priority))
	}
	deadline, err := joinDeadline(in.Date, in.Time)
	if err != nil {
		return fail(err.Error())
	}

	task, err := a.store.Create(ctx, model.CreateTaskInput{
		Title:       in.Name,
		Description: in.Info,
		Deadline:    deadline,
		Priority:    in.Priority,
	})
	if err != nil {
		return fail(err.Error())
	}
	return fmt.Sprintf("Successfully added task: %s", task.Title), true
}

func (a *Adapter) remove(ctx context.Context, in DeleteIntent) (string, bool) {
	if in.Name == "" {
		return "Could not delete task: missing taskname", false
	}

	task, err := a.store.FindByTitle(ctx, in.Name)
	if errors.Is(err, repo.ErrorNotFound) {
		return fmt.Sprintf("Task not found: %s", in.Name), false
	}
	if err != nil {
		return fmt.Sprintf("Could not delete task %s: %v", in.Name, err), false
	}

	if err := a.store.Delete(ctx, task.ID); err != nil {
		return fmt.Sprintf("Could not delete task %s: %v", in.Name, err), false
	}
	return fmt.Sprintf("Successfully deleted task: %s", in.Name), true
}

func (a *Adapter) update(ctx context.Context, in UpdateIntent) (string, bool) {
	fail := func(reason string) (string, bool) {
		return fmt.Sprintf("Could not update task %s: %s", in.CurrentName, reason), false
	}
	notFound := func() (string, bool) {
		return fmt.Sprintf("Task not found: %s", in.CurrentName), false
	}

	if in.CurrentName == "" {
		return fail("missing currenttaskname")
	}

	task, err := a.store.FindByTitle(ctx, in.CurrentName)
	if errors.Is(err, repo.ErrorNotFound) {
		return notFound()
	}
	if err != nil {
		return fail(err.Error())
	}

	var patch model.TaskPatch
	if in.NewName != "" {
		patch.Title = &in.NewName
	}
	if in.NewInfo != "" {
		patch.Description = &in.NewInfo
	}
	if in.NewPriority != "" {
		if _, ok := model.ParsePriority(in.NewPriority); !ok {
			return fail(fmt.Sprintf("invalid priority %q (expected low, medium or high)", in.NewPriority))
		}
		patch.Priority = &in.NewPriority
	}
	if in.NewDate != "" && in.NewTime != "" {
		deadline, err := joinDeadline(in.NewDate, in.NewTime)
		if err != nil {
			return fail(err.Error())
		}
		patch.Deadline = &deadline
	}

	if _, err := a.store.Update(ctx, task.ID, patch); err != nil {
		if errors.Is(err, repo.ErrorNotFound) {
			return notFound()
		}
		return fail(err.Error())
	}
	return fmt.Sprintf("Successfully updated task: %s", in.CurrentName), true
}

// joinDeadline проверяет формат даты и времени и склеивает их в "YYYY-MM-DD HH:MM"
func joinDeadline(date, clock string) (string, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	if _, err := time.Parse(timeLayout, clock); err != nil {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", clock)
	}
	return date + " " + clock, nil
}

type field struct {
	name, value string
}

func missingFields(fields ...field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func actionOf(in Intent) string {
	if in == nil {
		return "none"
	}
	return in.Action()
}
