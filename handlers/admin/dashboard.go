package admin

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skillpath/institute-api/model"
	"github.com/skillpath/institute-api/services"
	"github.com/skillpath/institute-api/utils/cache"
	"github.com/skillpath/institute-api/utils/response"
)

// dashboardCacheKey and dashboardCacheTTL control the redis cache of the
// aggregate stats payload
const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardStats is the aggregate payload for the admin dashboard widgets
type DashboardStats struct {
	Candidates model.CandidateStats `json:"candidates"`
	Jobs       model.JobStats       `json:"jobs"`
	Courses    model.CourseStats    `json:"courses"`
	Enquiries  model.EnquiryStats   `json:"enquiries"`
}

// DashboardHandler aggregates stats from every entity service
type DashboardHandler struct {
	candidates *services.CandidateService
	jobs       *services.JobService
	courses    *services.CourseService
	enquiries  *services.EnquiryService
	redisCache *cache.RedisCache // nil disables caching
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	candidates *services.CandidateService,
	jobs *services.JobService,
	courses *services.CourseService,
	enquiries *services.EnquiryService,
	redisCache *cache.RedisCache,
) *DashboardHandler {
	return &DashboardHandler{
		candidates: candidates,
		jobs:       jobs,
		courses:    courses,
		enquiries:  enquiries,
		redisCache: redisCache,
	}
}

// Stats handles GET /api/v1/dashboard/stats. The payload is cached for a
// minute; a cache failure falls through to a fresh aggregation.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	ctx := c.Context()

	if h.redisCache != nil {
		var cached DashboardStats
		if err := h.redisCache.GetJSON(ctx, dashboardCacheKey, &cached); err == nil {
			return response.Success(c, cached)
		}
	}

	enquiryStats, err := h.enquiries.Stats(ctx)
	if err != nil {
		return response.InternalServerError(c, "Failed to compute enquiry stats")
	}

	stats := DashboardStats{
		Candidates: h.candidates.Stats(),
		Jobs:       h.jobs.Stats(),
		Courses:    h.courses.Stats(),
		Enquiries:  *enquiryStats,
	}

	if h.redisCache != nil {
		if err := h.redisCache.SetJSON(ctx, dashboardCacheKey, stats, dashboardCacheTTL); err != nil {
			log.Printf("dashboard: failed to cache stats: %v", err)
		}
	}

	return response.Success(c, stats)
}
