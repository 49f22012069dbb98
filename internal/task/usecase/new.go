package usecase

import (
	"context"

	"voice-task-management/internal/task/repository"
	"voice-task-management/pkg/gcalendar"
	"voice-task-management/pkg/log"
)

// CalendarClient is the slice of the Google Calendar client used here,
// narrow so tests can stub it.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	calendar   CalendarClient // nil when calendar sync is not configured
	calendarID string
	timezone   string
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l log.Logger, calendar CalendarClient, calendarID, timezone string) *implUseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
