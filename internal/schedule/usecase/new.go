package usecase

import (
	"time"

	"quicksched/internal/schedule"
	"quicksched/internal/schedule/repository"
	"quicksched/pkg/gcalendar"
	"quicksched/pkg/log"
	"quicksched/pkg/quickparse"
)

// Ensure implUseCase implements schedule.UseCase
var _ schedule.UseCase = (*implUseCase)(nil)

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	parser     *quickparse.Parser
	calendar   gcalendar.ICalendar // nil when no provider is configured
	calendarID string

	// now supplies the reference clock for parsing; injected so the whole
	// quick-add flow is reproducible in tests.
	now func() time.Time
}

// New creates a new schedule UseCase implementation. calendar may be nil;
// quick-add then skips the provider and only persists the record.
func New(l log.Logger, repo repository.Repository, parser *quickparse.Parser, calendar gcalendar.ICalendar, calendarID string, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		parser:     parser,
		calendar:   calendar,
		calendarID: calendarID,
		now:        now,
	}
}
