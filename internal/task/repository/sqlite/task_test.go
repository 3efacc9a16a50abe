package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	repo "taskmate/internal/task/repository"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Info(ctx context.Context, args ...interface{})                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (noopLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (noopLogger) Error(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func newTestRepo(t *testing.T) (repo.Repository, *Conn) {
	t.Helper()
	conn := NewConn(filepath.Join(t.TempDir(), "taskmate.db"), noopLogger{})
	t.Cleanup(func() { conn.Close() })
	return New(conn, noopLogger{}), conn
}

func TestCreateAndGetAllRoundTrip(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		Text:             "Call John tomorrow at 3pm",
		Category:         "Meeting",
		Priority:         "medium",
		DueDate:          "June 2, 2025 at 3pm",
		DueDateTimestamp: 1748876400000,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("CreateTask did not assign an id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("CreateTask did not stamp CreatedAt")
	}

	all, err := r.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("GetAllTasks: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("GetAllTasks returned %d tasks, want 1", len(all))
	}
	got := all[0]
	if got.ID != created.ID || got.Text != created.Text || got.Category != created.Category {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, created)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt round trip: got %v, want %v", got.CreatedAt, created.CreatedAt)
	}
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		created, err := r.CreateTask(ctx, repo.CreateTaskOptions{Text: "t", Category: "General", Priority: "medium"})
		if err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
		if created.ID <= prev {
			t.Fatalf("ids not monotonic: %d after %d", created.ID, prev)
		}
		prev = created.ID
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		Text:      "review budget",
		Category:  "Review",
		Priority:  "medium",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:        created.ID,
		Text:      "urgent review budget",
		Category:  "Review",
		Priority:  "urgent",
		Completed: true,
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed on update: %d -> %d", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at changed on update: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if updated.Text != "urgent review budget" || updated.Priority != "urgent" || !updated.Completed {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestUpdateMissingIDReturnsZeroValue(t *testing.T) {
	r, _ := newTestRepo(t)

	got, err := r.UpdateTask(context.Background(), repo.UpdateTaskOptions{ID: 4242, Text: "x"})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if got.ID != 0 {
		t.Errorf("expected zero-value task for missing id, got %+v", got)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{Text: "t", Category: "General", Priority: "medium"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if err := r.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("first DeleteTask: %v", err)
	}
	if err := r.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("second DeleteTask on same id: %v", err)
	}
}

func TestStatusAfterFailedOpen(t *testing.T) {
	// A directory that does not exist makes the open fail.
	conn := NewConn(filepath.Join(t.TempDir(), "missing", "nested", "taskmate.db"), noopLogger{})
	r := New(conn, noopLogger{})

	if conn.Initialized() {
		t.Fatalf("manager initialized before first use")
	}

	_, err := r.GetAllTasks(context.Background())
	if err == nil {
		t.Fatalf("expected error opening store in a missing directory")
	}

	st := r.Status()
	if !st.Initialized {
		t.Errorf("manager should be initialized (done trying) after a failed open")
	}
	if st.Err == nil {
		t.Errorf("status should carry the open error")
	}
}

func TestReconnectAfterClose(t *testing.T) {
	r, conn := newTestRepo(t)
	ctx := context.Background()

	if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{Text: "t", Category: "General", Priority: "medium"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	// Simulate the underlying connection being closed externally.
	if err := conn.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	all, err := r.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("GetAllTasks after close (should reconnect): %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("GetAllTasks after reconnect returned %d tasks, want 1", len(all))
	}

	st := r.Status()
	if st.Err != nil {
		t.Errorf("status carries error after successful reconnect: %v", st.Err)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	r, conn := newTestRepo(t)
	ctx := context.Background()

	if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{Text: "t", Category: "General", Priority: "medium"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	db, err := conn.DB(ctx)
	if err != nil {
		t.Fatalf("DB: %v", err)
	}
	// Re-running the upgrade on an already-upgraded store must be a no-op.
	if err := migrate(ctx, db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	all, err := r.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("GetAllTasks: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("data lost across re-migration: %d tasks", len(all))
	}
}
