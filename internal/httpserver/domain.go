package httpserver

import (
	"context"

	"meeting-conflict-resolver/internal/middleware"
	"meeting-conflict-resolver/internal/resolution"
	resolutionHTTP "meeting-conflict-resolver/internal/resolution/delivery/http"
	resolutionUC "meeting-conflict-resolver/internal/resolution/usecase"

	"github.com/gin-gonic/gin"
)

// setupResolutionDomain initializes the resolution domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, deps...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupResolutionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := resolutionUC.New(srv.l, srv.calendar, srv.ruleStore, srv.oracle, srv.finder, srv.cfg.Resolver.Timezone)

	// 2. HTTP Handler
	h := resolutionHTTP.New(srv.l, uc, srv.dateMath, resolutionHTTP.Defaults{
		Mode:           resolution.Mode(srv.cfg.Resolver.Mode),
		Prioritization: resolution.Prioritization(srv.cfg.Resolver.Prioritization),
		WindowDays:     srv.cfg.Resolver.WindowDays,
	})

	// 3. Routes: registers /api/v1/resolutions
	resolutionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Resolution domain registered")
	return nil
}
