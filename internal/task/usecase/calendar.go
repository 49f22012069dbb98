package usecase

import (
	"context"
	"time"

	"voice-task-management/internal/task"
	"voice-task-management/pkg/gcalendar"
)

// defaultEventDuration is the calendar block reserved for a task.
const defaultEventDuration = time.Hour

// tryCreateCalendarEvent mirrors a due-dated task into Google Calendar when
// a client is configured. Failure is logged and swallowed.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t task.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   *t.DueDate,
		EndTime:     t.DueDate.Add(defaultEventDuration),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return
	}

	uc.l.Infof(ctx, "uc.Create: calendar event created for %q", t.Title)
}
