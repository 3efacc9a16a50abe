package usecase

import (
	"context"
	"strings"
	"time"

	"taskmate/internal/task"
)

// Interpret converts raw text into a draft without persisting anything.
// The parser itself is total; only an empty input is rejected so the UI
// never previews a blank task.
func (uc *implUseCase) Interpret(ctx context.Context, input task.InterpretInput) (task.InterpretOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.InterpretOutput{}, task.ErrEmptyInput
	}
	return task.InterpretOutput{Draft: uc.parser.Parse(input.Text, time.Now())}, nil
}

// Status surfaces the store's health pair for the UI banner state.
func (uc *implUseCase) Status(ctx context.Context) task.StatusOutput {
	st := uc.repo.Status()
	out := task.StatusOutput{Initialized: st.Initialized}
	if st.Err != nil {
		out.Error = st.Err.Error()
	}
	return out
}
