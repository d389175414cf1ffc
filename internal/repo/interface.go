package repo

import (
	"context"

	"github.com/BuzzLyutic/todo-copilot/internal/model"
)

// TaskRepository определяет интерфейс для работы с коллекцией задач.
// Реализация обязана пересортировать коллекцию до возврата из любого изменяющего метода.
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Get(ctx context.Context, id string) (model.Task, error)
	List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	FindByTitle(ctx context.Context, title string) (model.Task, error)
	Update(ctx context.Context, id string, apply func(*model.Task) error) (model.Task, error)
	Delete(ctx context.Context, id string) error
}
