package http

import (
	"github.com/gin-gonic/gin"

	"quicksched/pkg/response"
)

// QuickAdd godoc
// @Summary Create a schedule from a free-text phrase
// @Description Parses a quick-add phrase such as "arzt 24.01 09:15 30min" and stores the resulting schedule.
// @Tags schedules
// @Accept json
// @Produce json
// @Param body body quickAddReq true "Quick-add request"
// @Success 200 {object} quickAddResp
// @Failure 400 {object} response.Resp "Empty or malformed request"
// @Router /api/v1/schedules/quick [post]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		h.l.Warnf(ctx, "schedule.delivery.http.QuickAdd.processQuickAddReq: %v", err)
		response.Error(c, err)
		return
	}

	input := req.toInput()
	if input.DefaultMinutes <= 0 {
		input.DefaultMinutes = h.defaultMinutes
	}

	out, err := h.uc.QuickAdd(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "schedule.delivery.http.QuickAdd.uc.QuickAdd: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newQuickAddResp(out))
}

// List godoc
// @Summary List schedules
// @Description Lists stored schedules ordered by start time, optionally windowed by from/to.
// @Tags schedules
// @Produce json
// @Param from query string false "Window start (2006-01-02T15:04:05 or 2006-01-02)"
// @Param to query string false "Window end (2006-01-02T15:04:05 or 2006-01-02)"
// @Param limit query int false "Page size, default 20, max 100"
// @Param offset query int false "Page offset"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp "Malformed query"
// @Router /api/v1/schedules [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		h.l.Warnf(ctx, "schedule.delivery.http.List.processListReq: %v", err)
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "schedule.delivery.http.List.uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary Get one schedule
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} detailResp
// @Failure 404 {object} response.Resp "Schedule not found"
// @Router /api/v1/schedules/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "schedule.delivery.http.Detail.uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(out))
}

// Delete godoc
// @Summary Delete one schedule
// @Description Deletes a stored schedule and, when one is linked, its provider calendar event.
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp "Schedule not found"
// @Router /api/v1/schedules/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "schedule.delivery.http.Delete.uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
