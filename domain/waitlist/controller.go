package waitlist

import (
	"time"

	"github.com/evervow/leads-api/config/router"
	"github.com/evervow/leads-api/internal/log"
	apperrors "github.com/evervow/leads-api/pkg/errors"
	"github.com/evervow/leads-api/pkg/ratelimit"
	"gorm.io/gorm"
)

func NewWaitlistController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"WaitlistController",
		"v1",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			service := NewWaitlistService(logger, repository)

			submissionLimiter := createSubmissionRateLimiter(rs)

			rs.AddPostHandler(c, submissionLimiter, "", joinWaitlistHandler(service))
		},
	)
}

func createSubmissionRateLimiter(routerService *router.RouterService) ratelimit.RateLimiter {
	const submissionRequestsPerMinute = 30 // More permissive than monitoring (10/min)

	config := &ratelimit.RateLimitConfig{
		Requests: submissionRequestsPerMinute,
		Window:   time.Minute, // 1 minute window
		Redis:    nil,         // For now, use in-memory (could be enhanced to use Redis)
		Logger:   nil,         // Logger not needed for in-memory limiter
	}

	return ratelimit.NewRateLimiter(config)
}

func joinWaitlistHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req JoinRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			// Every parse-time failure collapses to the same generic reply;
			// internal decode errors never reach the caller.
			logger.Error("Failed to bind waitlist request", "error", err)
			return router.BadRequestResult("Bad request", nil)
		}

		if err := service.JoinWaitlist(ctx.Request.Context(), &req); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Waitlist submission accepted")
	}
}
