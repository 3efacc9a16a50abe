package usecase

import (
	"context"
	"sync"
	"time"

	"taskmate/internal/model"
	"taskmate/internal/task/repository"
)

func timeNowUTC() time.Time { return time.Now().UTC() }

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockRepository is an in-memory repository.Repository with the same
// contract as the SQLite backend: monotonic ids, zero-value not-found,
// idempotent delete, whole-row update writes.
type mockRepository struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]model.Task

	status repository.Status

	createErr error
	getAllErr error
	updateErr error
	deleteErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		tasks:  make(map[int64]model.Task),
		status: repository.Status{Initialized: true},
	}
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	createdAt := opt.CreatedAt
	if createdAt.IsZero() {
		createdAt = timeNowUTC()
	}
	t := model.Task{
		ID:               m.nextID,
		Text:             opt.Text,
		Category:         opt.Category,
		Priority:         opt.Priority,
		DueDate:          opt.DueDate,
		DueDateTimestamp: opt.DueDateTimestamp,
		Completed:        opt.Completed,
		CreatedAt:        createdAt,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepository) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, id int64) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks[id], nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if m.updateErr != nil {
		return model.Task{}, m.updateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	existing.Text = opt.Text
	existing.Category = opt.Category
	existing.Priority = opt.Priority
	existing.DueDate = opt.DueDate
	existing.DueDateTimestamp = opt.DueDateTimestamp
	existing.Completed = opt.Completed
	m.tasks[opt.ID] = existing
	return existing, nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tasks, id)
	return nil
}

func (m *mockRepository) Status() repository.Status {
	return m.status
}
