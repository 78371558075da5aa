package http

import (
	"time"

	"quicksched/internal/schedule"
	"quicksched/pkg/response"
)

// --- Request DTOs ---

type quickAddReq struct {
	Text            string `json:"text"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=0"`
}

func (r quickAddReq) toInput() schedule.QuickAddInput {
	return schedule.QuickAddInput{
		Text:           r.Text,
		DefaultMinutes: r.DurationMinutes,
	}
}

// ---

type listReq struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`

	from, to time.Time // parsed by processListReq
}

func (r listReq) toInput() schedule.ListSchedulesInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return schedule.ListSchedulesInput{
		From:   r.from,
		To:     r.to,
		Limit:  limit,
		Offset: offset,
	}
}

// --- Response DTOs ---

type scheduleResp struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	SourceText      string            `json:"source_text"`
	StartAt         response.DateTime `json:"start_at"`
	EndAt           response.DateTime `json:"end_at"`
	DurationMinutes int               `json:"duration_minutes"`
	CalendarEventID string            `json:"calendar_event_id,omitempty"`
	HTMLLink        string            `json:"html_link,omitempty"`
	CreatedAt       response.DateTime `json:"created_at"`
}

func newScheduleResp(sched schedule.Schedule) scheduleResp {
	return scheduleResp{
		ID:              sched.ID,
		Title:           sched.Title,
		SourceText:      sched.SourceText,
		StartAt:         response.DateTime(sched.StartAt),
		EndAt:           response.DateTime(sched.EndAt),
		DurationMinutes: sched.DurationMinutes,
		CalendarEventID: sched.CalendarEventID,
		HTMLLink:        sched.HTMLLink,
		CreatedAt:       response.DateTime(sched.CreatedAt),
	}
}

type quickAddResp struct {
	Schedule scheduleResp `json:"schedule"`
}

func (h *handler) newQuickAddResp(out schedule.QuickAddOutput) quickAddResp {
	return quickAddResp{Schedule: newScheduleResp(out.Schedule)}
}

type listResp struct {
	Schedules []scheduleResp `json:"schedules"`
	Total     int            `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}

func (h *handler) newListResp(out schedule.ListSchedulesOutput) listResp {
	scheds := make([]scheduleResp, len(out.Schedules))
	for i, sched := range out.Schedules {
		scheds[i] = newScheduleResp(sched)
	}
	return listResp{
		Schedules: scheds,
		Total:     out.Total,
		Limit:     out.Limit,
		Offset:    out.Offset,
	}
}

type detailResp struct {
	Schedule scheduleResp `json:"schedule"`
}

func (h *handler) newDetailResp(out schedule.DetailScheduleOutput) detailResp {
	return detailResp{Schedule: newScheduleResp(out.Schedule)}
}
