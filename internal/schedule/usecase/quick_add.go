package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"quicksched/internal/schedule"
	repo "quicksched/internal/schedule/repository"
	"quicksched/pkg/gcalendar"
	"quicksched/pkg/quickparse"
)

// QuickAdd turns a free-text phrase into a persisted appointment: parse,
// create the provider event, store the record.
func (uc *implUseCase) QuickAdd(ctx context.Context, input schedule.QuickAddInput) (schedule.QuickAddOutput, error) {
	result, err := uc.parser.Parse(input.Text, input.DefaultMinutes, uc.now())
	if err != nil {
		if errors.Is(err, quickparse.ErrEmptyInput) {
			return schedule.QuickAddOutput{}, schedule.ErrEmptyInput
		}
		uc.l.Errorf(ctx, "uc.QuickAdd Parse: %v", err)
		return schedule.QuickAddOutput{}, err
	}

	var eventID, htmlLink string
	if uc.calendar != nil {
		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     result.Title,
			Description: input.Text,
			StartTime:   result.Start,
			EndTime:     result.End,
			Timezone:    uc.parser.Location().String(),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.QuickAdd CreateEvent: %v", err)
			return schedule.QuickAddOutput{}, err
		}
		eventID = event.ID
		htmlLink = event.HtmlLink
	}

	sched, err := uc.repo.CreateSchedule(ctx, repo.CreateScheduleOptions{
		ID:              uuid.NewString(),
		Title:           result.Title,
		SourceText:      input.Text,
		StartAt:         result.Start,
		EndAt:           result.End,
		DurationMinutes: result.DurationMinutes,
		CalendarEventID: eventID,
		HTMLLink:        htmlLink,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.QuickAdd CreateSchedule: %v", err)
		return schedule.QuickAddOutput{}, err
	}

	return schedule.QuickAddOutput{Schedule: sched}, nil
}
