package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create interprets raw text into a structured task and persists it.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// List returns every stored task, newest first.
	List(ctx context.Context) (ListOutput, error)

	// Update re-interprets edited text and/or toggles completion, preserving
	// the task's id and original creation time.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)

	// Delete removes a task by id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error

	// Interpret converts raw text into a draft without persisting it.
	Interpret(ctx context.Context, input InterpretInput) (InterpretOutput, error)

	// Calendar buckets a month's tasks per calendar day.
	Calendar(ctx context.Context, input CalendarInput) (CalendarOutput, error)

	// Status reports the persistence store's (error, initialized) pair.
	Status(ctx context.Context) StatusOutput
}
