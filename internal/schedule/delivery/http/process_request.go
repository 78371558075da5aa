package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// processQuickAddReq binds the quick-add request body. Text emptiness is a
// domain concern and is left to the usecase.
func (h *handler) processQuickAddReq(c *gin.Context) (quickAddReq, error) {
	var req quickAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list query parameters. The from/to
// window accepts zone-naive timestamps or bare dates, interpreted in the
// service zone.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	var err error
	if req.from, err = h.parseLocalTime(req.From); err != nil {
		return req, err
	}
	if req.to, err = h.parseLocalTime(req.To); err != nil {
		return req, err
	}
	return req, nil
}

// parseLocalTime parses a zone-naive timestamp or date in the service zone.
// Empty input yields the zero time (filter disabled).
func (h *handler) parseLocalTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, h.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}
