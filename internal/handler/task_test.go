package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-copilot/internal/model"
	"github.com/BuzzLyutic/todo-copilot/internal/repo"
	"github.com/BuzzLyutic/todo-copilot/internal/service"
)

func setupHandler(t *testing.T) *TaskHandler {
	t.Helper()
	taskService := service.NewTaskService(repo.NewTaskRepo(), time.UTC)
	return NewTaskHandler(taskService, zap.NewNop())
}

func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func createTask(t *testing.T, handler *TaskHandler, in model.CreateTaskInput) model.Task {
	t.Helper()
	body, _ := json.Marshal(in)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Create(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.Task
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	return created
}

func TestTaskHandler_Create(t *testing.T) {
	handler := setupHandler(t)

	tests := []struct {
		name          string
		body          interface{}
		wantCode      int
		checkResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful creation",
			body: model.CreateTaskInput{
				Title:    "Test Task",
				Deadline: "2026-10-20T14:00",
				Priority: "High",
			},
			wantCode: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var task model.Task
				json.NewDecoder(w.Body).Decode(&task)
				assert.NotEmpty(t, task.ID)
				assert.Equal(t, "Test Task", task.Title)
				assert.Equal(t, model.PriorityHigh, task.Priority)
				assert.Equal(t, model.ColorRed, task.ColorTag)
				assert.False(t, task.Completed)
				assert.Contains(t, w.Header().Get("Location"), "/api/tasks/"+task.ID)
			},
		},
		{
			name:     "empty body",
			body:     nil,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid json",
			body:     "not an object",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: model.CreateTaskInput{
				Title:    "",
				Deadline: "2026-10-20T14:00",
				Priority: "low",
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "invalid priority",
			body: model.CreateTaskInput{
				Title:    "Task",
				Deadline: "2026-10-20T14:00",
				Priority: "urgent",
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			if tt.body != nil {
				body, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			handler.Create(w, req)

			assert.Equal(t, tt.wantCode, w.Code)

			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestTaskHandler_Get(t *testing.T) {
	handler := setupHandler(t)
	created := createTask(t, handler, model.CreateTaskInput{Title: "Get Test", Deadline: "2026-10-20 14:00", Priority: "low"})

	t.Run("get existing task", func(t *testing.T) {
		req := withID(httptest.NewRequest(http.MethodGet, "/api/tasks/"+created.ID, nil), created.ID)

		w := httptest.NewRecorder()
		handler.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var task model.Task
		json.NewDecoder(w.Body).Decode(&task)
		assert.Equal(t, created.ID, task.ID)
	})

	t.Run("get non-existing task", func(t *testing.T) {
		req := withID(httptest.NewRequest(http.MethodGet, "/api/tasks/missing", nil), "missing")

		w := httptest.NewRecorder()
		handler.Get(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTaskHandler_List(t *testing.T) {
	handler := setupHandler(t)

	b := createTask(t, handler, model.CreateTaskInput{Title: "B", Deadline: "2026-10-20 13:00", Priority: "low"})
	a := createTask(t, handler, model.CreateTaskInput{Title: "A", Deadline: "2026-10-20 14:00", Priority: "high"})
	c := createTask(t, handler, model.CreateTaskInput{Title: "C", Deadline: "2026-10-19 09:00", Priority: "medium"})

	toggle := withID(httptest.NewRequest(http.MethodPost, "/api/tasks/"+c.ID+"/toggle", nil), c.ID)
	handler.ToggleComplete(httptest.NewRecorder(), toggle)

	t.Run("list all tasks in order", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var tasks []model.Task
		json.NewDecoder(w.Body).Decode(&tasks)
		require.Len(t, tasks, 3)
		assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{tasks[0].ID, tasks[1].ID, tasks[2].ID})
	})

	t.Run("filter by completed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks?completed=true", nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var tasks []model.Task
		json.NewDecoder(w.Body).Decode(&tasks)
		require.Len(t, tasks, 1)
		assert.Equal(t, c.ID, tasks[0].ID)
	})

	t.Run("invalid filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks?completed=maybe", nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaskHandler_Update(t *testing.T) {
	handler := setupHandler(t)
	created := createTask(t, handler, model.CreateTaskInput{Title: "Original", Deadline: "2026-10-20 14:00", Priority: "high"})

	patch := func(t *testing.T, id string, body interface{}) *httptest.ResponseRecorder {
		t.Helper()
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+id, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		handler.Update(w, withID(req, id))
		return w
	}

	t.Run("successful partial update", func(t *testing.T) {
		w := patch(t, created.ID, map[string]string{"priority": "medium"})
		assert.Equal(t, http.StatusOK, w.Code)

		var updated model.Task
		json.NewDecoder(w.Body).Decode(&updated)
		assert.Equal(t, "Original", updated.Title)
		assert.Equal(t, model.PriorityMedium, updated.Priority)
		assert.Equal(t, model.ColorYellow, updated.ColorTag)
		assert.True(t, created.Deadline.Equal(updated.Deadline))
	})

	t.Run("validation error", func(t *testing.T) {
		w := patch(t, created.ID, map[string]string{"deadline": "whenever"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := patch(t, "missing", map[string]string{"title": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+created.ID, bytes.NewReader([]byte("{")))
		w := httptest.NewRecorder()
		handler.Update(w, withID(req, created.ID))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaskHandler_ToggleComplete(t *testing.T) {
	handler := setupHandler(t)
	created := createTask(t, handler, model.CreateTaskInput{Title: "Toggle", Deadline: "2026-10-20 14:00", Priority: "high"})

	for _, want := range []bool{true, false} {
		w := httptest.NewRecorder()
		handler.ToggleComplete(w, withID(httptest.NewRequest(http.MethodPost, "/", nil), created.ID))
		require.Equal(t, http.StatusOK, w.Code)

		var task model.Task
		json.NewDecoder(w.Body).Decode(&task)
		assert.Equal(t, want, task.Completed)
	}

	w := httptest.NewRecorder()
	handler.ToggleComplete(w, withID(httptest.NewRequest(http.MethodPost, "/", nil), "missing"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_Delete(t *testing.T) {
	handler := setupHandler(t)
	created := createTask(t, handler, model.CreateTaskInput{Title: "To Delete", Deadline: "2026-10-20 14:00", Priority: "low"})

	t.Run("successful delete", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Delete(w, withID(httptest.NewRequest(http.MethodDelete, "/api/tasks/"+created.ID, nil), created.ID))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Delete(w, withID(httptest.NewRequest(http.MethodDelete, "/api/tasks/"+created.ID, nil), created.ID))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
