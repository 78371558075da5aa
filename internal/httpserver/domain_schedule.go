package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"quicksched/internal/middleware"
	scheduleHTTP "quicksched/internal/schedule/delivery/http"
	scheduleSQLite "quicksched/internal/schedule/repository/sqlite"
	scheduleUC "quicksched/internal/schedule/usecase"
)

// setupScheduleDomain initializes the schedule domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.location(), srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := scheduleSQLite.New(srv.db, srv.location(), srv.l)

	// 2. UseCase
	uc := scheduleUC.New(srv.l, repo, srv.parser, srv.calendar, srv.calendarID, time.Now)

	// 3. HTTP Handler
	h := scheduleHTTP.New(srv.l, uc, srv.location(), srv.defaultDuration)

	// 4. Routes: registers /api/v1/schedules
	scheduleHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Schedule domain registered with calendar provider")
	} else {
		srv.l.Infof(ctx, "Schedule domain registered, calendar provider not configured")
	}
	return nil
}
