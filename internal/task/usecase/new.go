package usecase

import (
	"time"

	"taskmate/internal/task/repository"
	"taskmate/pkg/gcalendar"
	"taskmate/pkg/interpret"
	pkgLog "taskmate/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	parser     *interpret.Parser
	calendar   *gcalendar.Client // optional; nil disables event export
	calendarID string
	timezone   string
	location   *time.Location
}

// New creates a new task UseCase instance. calendar may be nil, in which
// case due dates are never exported to an external calendar. An unknown
// timezone falls back to UTC.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *interpret.Parser,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
) *implUseCase {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		parser:     parser,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		location:   loc,
	}
}
