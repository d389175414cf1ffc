package repo

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/BuzzLyutic/todo-copilot/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict") // повторный id при создании
)

type TaskRepo struct { // Репозиторий, хранящий задачи в памяти процесса
	mu    sync.RWMutex
	tasks []*model.Task
}

func NewTaskRepo() *TaskRepo { // Конструктор
	return &TaskRepo{}
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	if err := ctx.Err(); err != nil {
		return t, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(t.ID) >= 0 {
		return t, ErrorConflict
	}

	stored := t
	r.tasks = append(r.tasks, &stored)
	model.SortTasks(r.tasks)
	return stored, nil
}

func (r *TaskRepo) Get(ctx context.Context, id string) (model.Task, error) {
	if err := ctx.Err(); err != nil {
		return model.Task{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}
	return *r.tasks[i], nil
}

func (r *TaskRepo) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if filter.Match(*t) {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

// FindByTitle возвращает первую (в порядке сортировки) задачу с совпадающим без учета регистра названием
func (r *TaskRepo) FindByTitle(ctx context.Context, title string) (model.Task, error) {
	if err := ctx.Err(); err != nil {
		return model.Task{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tasks {
		if strings.EqualFold(t.Title, title) {
			return *t, nil
		}
	}
	return model.Task{}, ErrorNotFound
}

// Update применяет apply к копии задачи и сохраняет результат только если apply не вернул ошибку.
func (r *TaskRepo) Update(ctx context.Context, id string, apply func(*model.Task) error) (model.Task, error) {
	if err := ctx.Err(); err != nil {
		return model.Task{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}

	target := r.tasks[i]
	draft := *target
	if err := apply(&draft); err != nil {
		return *target, err
	}
	draft.ID = target.ID // id и created_at неизменяемы
	draft.CreatedAt = target.CreatedAt
	*target = draft

	model.SortTasks(r.tasks)
	return draft, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrorNotFound
	}
	// удаление сохраняет относительный порядок, пересортировка не нужна
	r.tasks = slices.Delete(r.tasks, i, i+1)
	return nil
}

func (r *TaskRepo) indexOf(id string) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
