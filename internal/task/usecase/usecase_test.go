package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"taskmate/internal/task"
	"taskmate/internal/task/repository"
	"taskmate/pkg/interpret"
)

func newTestUseCase(t *testing.T) (*implUseCase, *mockRepository) {
	t.Helper()
	parser, err := interpret.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	repo := newMockRepository()
	return New(&mockLogger{}, repo, parser, nil, "primary", "UTC"), repo
}

func TestCreateRejectsEmptyInput(t *testing.T) {
	uc, _ := newTestUseCase(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := uc.Create(context.Background(), task.CreateInput{Text: text})
		if !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("Create(%q) error = %v, want ErrEmptyInput", text, err)
		}
	}
}

func TestCreateThenListRoundTrip(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Text: "email the report tomorrow, urgent"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Task.ID == 0 {
		t.Fatalf("Create did not assign an id")
	}
	if created.Task.Category != "Communication" {
		t.Errorf("category = %q, want Communication", created.Task.Category)
	}
	if created.Task.Priority != "urgent" {
		t.Errorf("priority = %q, want urgent", created.Task.Priority)
	}
	if created.Task.CreatedAt.IsZero() {
		t.Errorf("CreatedAt not stamped")
	}
	if created.CalendarLink != "" {
		t.Errorf("calendar link without a configured calendar: %q", created.CalendarLink)
	}

	listed, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if listed.Total != 1 || len(listed.Tasks) != 1 {
		t.Fatalf("List returned %d tasks, want 1", listed.Total)
	}
	if listed.Tasks[0].ID != created.Task.ID || listed.Tasks[0].Text != created.Task.Text {
		t.Errorf("round trip mismatch: %+v vs %+v", listed.Tasks[0], created.Task)
	}
}

func TestListSortsNewestFirst(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			Text:      "t",
			Category:  "General",
			Priority:  "medium",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	listed, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i := 1; i < len(listed.Tasks); i++ {
		if listed.Tasks[i].CreatedAt.After(listed.Tasks[i-1].CreatedAt) {
			t.Fatalf("tasks not sorted newest first: %v before %v",
				listed.Tasks[i-1].CreatedAt, listed.Tasks[i].CreatedAt)
		}
	}
}

func TestUpdateReinterpretsTextAndPreservesIdentity(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Text: "call the bank"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := uc.Update(ctx, task.UpdateInput{
		ID:   created.Task.ID,
		Text: "email the bank, urgent",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Task.ID != created.Task.ID {
		t.Errorf("id changed on update: %d -> %d", created.Task.ID, updated.Task.ID)
	}
	if !updated.Task.CreatedAt.Equal(created.Task.CreatedAt) {
		t.Errorf("CreatedAt changed on update")
	}
	if updated.Task.Category != "Communication" {
		t.Errorf("category not recomputed from edited text: %q", updated.Task.Category)
	}
	if updated.Task.Priority != "urgent" {
		t.Errorf("priority not recomputed from edited text: %q", updated.Task.Priority)
	}
}

func TestUpdateTogglesCompletedWithoutTouchingText(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Text: "review budget friday"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done := true
	updated, err := uc.Update(ctx, task.UpdateInput{ID: created.Task.ID, Completed: &done})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Task.Completed {
		t.Errorf("completed not set")
	}
	if updated.Task.Text != created.Task.Text || updated.Task.DueDate != created.Task.DueDate {
		t.Errorf("completed-only update altered interpreted fields: %+v", updated.Task)
	}
}

func TestUpdateMissingTaskReturnsNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Update(context.Background(), task.UpdateInput{ID: 99, Text: "x"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Update on missing id error = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdateWithNoFieldsIsRejected(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Update(context.Background(), task.UpdateInput{ID: 1})
	if !errors.Is(err, task.ErrNothingToApply) {
		t.Errorf("empty Update error = %v, want ErrNothingToApply", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Text: "one-off chore"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := uc.Delete(ctx, created.Task.ID); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := uc.Delete(ctx, created.Task.ID); err != nil {
		t.Fatalf("second Delete on same id: %v", err)
	}
}

func TestConcurrentUpdatesResolveLastWriteWins(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Text: "draft the proposal"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	texts := []string{"urgent draft the proposal", "low draft the proposal"}
	var wg sync.WaitGroup
	for _, text := range texts {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			if _, err := uc.Update(ctx, task.UpdateInput{ID: created.Task.ID, Text: text}); err != nil {
				t.Errorf("Update(%q): %v", text, err)
			}
		}(text)
	}
	wg.Wait()

	final, err := repo.GetOneTask(ctx, created.Task.ID)
	if err != nil {
		t.Fatalf("GetOneTask: %v", err)
	}
	// The store must hold exactly one of the two whole-row writes, never a
	// torn merge of both.
	switch final.Text {
	case texts[0]:
		if final.Priority != "urgent" {
			t.Errorf("torn merge: text %q with priority %q", final.Text, final.Priority)
		}
	case texts[1]:
		if final.Priority != "low" {
			t.Errorf("torn merge: text %q with priority %q", final.Text, final.Priority)
		}
	default:
		t.Errorf("final text %q matches neither write", final.Text)
	}
	if !final.CreatedAt.Equal(created.Task.CreatedAt) {
		t.Errorf("CreatedAt changed under concurrent updates")
	}
}

func TestInterpretPreviewDoesNotPersist(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	out, err := uc.Interpret(ctx, task.InterpretInput{Text: "zoom with Sam tomorrow at 9am"})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if out.Draft.Category != "Meeting" {
		t.Errorf("draft category = %q, want Meeting", out.Draft.Category)
	}

	all, err := repo.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("GetAllTasks: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("Interpret persisted %d tasks", len(all))
	}
}

func TestCalendarBucketsTasksPerDay(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	due := func(day, hour int) int64 {
		return time.Date(2025, 6, day, hour, 0, 0, 0, time.UTC).UnixMilli()
	}
	for _, opt := range []repository.CreateTaskOptions{
		{Text: "a", Category: "General", Priority: "medium", DueDateTimestamp: due(2, 15)},
		{Text: "b", Category: "General", Priority: "medium", DueDateTimestamp: due(2, 9)},
		{Text: "c", Category: "General", Priority: "medium", DueDateTimestamp: due(20, 0)},
		{Text: "other month", Category: "General", Priority: "medium", DueDateTimestamp: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC).UnixMilli()},
	} {
		if _, err := repo.CreateTask(ctx, opt); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	out, err := uc.Calendar(ctx, task.CalendarInput{Year: 2025, Month: time.June})
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if len(out.Days) != 2 {
		t.Fatalf("got %d day buckets, want 2", len(out.Days))
	}
	if out.Days[0].Day != 2 || len(out.Days[0].Tasks) != 2 {
		t.Errorf("day 2 bucket wrong: %+v", out.Days[0])
	}
	if out.Days[0].Tasks[0].Text != "b" {
		t.Errorf("day bucket not sorted by due instant: %+v", out.Days[0].Tasks)
	}
	if out.Days[1].Day != 20 || len(out.Days[1].Tasks) != 1 {
		t.Errorf("day 20 bucket wrong: %+v", out.Days[1])
	}
}

func TestCalendarRejectsInvalidMonth(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Calendar(context.Background(), task.CalendarInput{Year: 2025, Month: 13})
	if !errors.Is(err, task.ErrInvalidMonth) {
		t.Errorf("Calendar month=13 error = %v, want ErrInvalidMonth", err)
	}
}

func TestStatusReflectsStoreHealth(t *testing.T) {
	uc, repo := newTestUseCase(t)

	st := uc.Status(context.Background())
	if !st.Initialized || st.Error != "" {
		t.Errorf("healthy store status = %+v", st)
	}

	repo.status = repository.Status{Initialized: true, Err: errors.New("disk is gone")}
	st = uc.Status(context.Background())
	if st.Error != "disk is gone" {
		t.Errorf("status error = %q, want %q", st.Error, "disk is gone")
	}
}
