package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"quicksched/internal/schedule"
	"quicksched/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	QuickAdd(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  schedule.UseCase
	loc *time.Location // used to interpret zone-naive query timestamps

	// defaultMinutes fills in for requests that omit duration_minutes.
	defaultMinutes int
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase, loc *time.Location, defaultMinutes int) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		loc:            loc,
		defaultMinutes: defaultMinutes,
	}
}
