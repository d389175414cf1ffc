package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BuzzLyutic/todo-copilot/internal/model"
	"github.com/BuzzLyutic/todo-copilot/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

// Форматы дедлайна: ввод ассистента, datetime-local из формы и RFC 3339
var deadlineLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
}

type TaskService struct {
	repo repo.TaskRepository
	loc  *time.Location
	now  func() time.Time
}

func NewTaskService(repo repo.TaskRepository, loc *time.Location) *TaskService {
	if loc == nil {
		loc = time.Local
	}
	return &TaskService{repo: repo, loc: loc, now: time.Now}
}

func (s *TaskService) Create(ctx context.Context, in model.CreateTaskInput) (model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Task{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	deadline, err := s.ParseDeadline(in.Deadline)
	if err != nil {
		return model.Task{}, err
	}

	priority, ok := model.ParsePriority(in.Priority)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, in.Priority)
	}

	now := s.now()
	t := model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: in.Description,
		Deadline:    deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.SetPriority(priority)

	return s.repo.Create(ctx, t)
}

func (s *TaskService) Get(ctx context.Context, id string) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	return s.repo.List(ctx, filter)
}

func (s *TaskService) FindByTitle(ctx context.Context, title string) (model.Task, error) {
	return s.repo.FindByTitle(ctx, strings.TrimSpace(title))
}

// Update применяет только непустые поля patch; все значения проверяются до изменения задачи.
func (s *TaskService) Update(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	var (
		deadline time.Time
		priority model.Priority
		err      error
	)
	if present(patch.Deadline) {
		if deadline, err = s.ParseDeadline(*patch.Deadline); err != nil {
			return model.Task{}, err
		}
	}
	if present(patch.Priority) {
		var ok bool
		if priority, ok = model.ParsePriority(*patch.Priority); !ok {
			return model.Task{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, *patch.Priority)
		}
	}

	return s.repo.Update(ctx, id, func(t *model.Task) error {
		changed := false
		if present(patch.Title) {
			t.Title = strings.TrimSpace(*patch.Title)
			changed = true
		}
		if present(patch.Description) {
			t.Description = *patch.Description
			changed = true
		}
		if present(patch.Deadline) {
			t.Deadline = deadline
			changed = true
		}
		if present(patch.Priority) {
			t.SetPriority(priority)
			changed = true
		}
		if changed {
			t.UpdatedAt = s.now()
		}
		return nil
	})
}

func (s *TaskService) ToggleComplete(ctx context.Context, id string) (model.Task, error) {
	return s.repo.Update(ctx, id, func(t *model.Task) error {
		t.Completed = !t.Completed
		t.UpdatedAt = s.now()
		return nil
	})
}

// Delete идемпотентен: отсутствующая задача не считается ошибкой
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, repo.ErrorNotFound) {
		return err
	}
	return nil
}

// ParseDeadline разбирает дедлайн, переводит его в настроенный часовой пояс и обрезает до минут.
func (s *TaskService) ParseDeadline(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: deadline is required", ErrValidation)
	}
	for _, layout := range deadlineLayouts {
		if d, err := time.ParseInLocation(layout, v, s.loc); err == nil {
			return d.In(s.loc).Truncate(time.Minute), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparsable deadline %q", ErrValidation, v)
}

func present(v *string) bool {
	return v != nil && strings.TrimSpace(*v) != ""
}
