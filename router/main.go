package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skillpath/institute-api/config"
	"github.com/skillpath/institute-api/database"
	"github.com/skillpath/institute-api/handlers"
	admin_handlers "github.com/skillpath/institute-api/handlers/admin"
	auth_handlers "github.com/skillpath/institute-api/handlers/auth"
	candidate_handlers "github.com/skillpath/institute-api/handlers/candidate"
	course_handlers "github.com/skillpath/institute-api/handlers/course"
	enquiry_handlers "github.com/skillpath/institute-api/handlers/enquiry"
	job_handlers "github.com/skillpath/institute-api/handlers/job"
	"github.com/skillpath/institute-api/services"
	"github.com/skillpath/institute-api/utils/auth"
	"github.com/skillpath/institute-api/utils/cache"
	"github.com/skillpath/institute-api/utils/middleware"
)

// Deps carries everything the routes need, built once in app setup
type Deps struct {
	Env        *config.EnvironmentVariable
	Store      *database.GORMStore
	Candidates *services.CandidateService
	Jobs       *services.JobService
	Courses    *services.CourseService
	Enquiries  *services.EnquiryService
	RedisCache *cache.RedisCache // nil disables rate limiting and stats caching
}

func SetupRoutes(app *fiber.App, deps Deps) {
	if deps.Env.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := deps.Env.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "institute-api"
	}

	// Initialize JWT manager with config
	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: deps.Env.JWT_SECRET,
		Expiry: 24 * time.Hour, // Access token expires in 24 hours
		Issuer: jwtIssuer,
	})

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, deps.Store.DB())

	// Rate limiter for the public enquiry form
	enquiryLimiter := middleware.NewRateLimiter(deps.RedisCache,
		deps.Env.ENQUIRY_RATE_LIMIT, deps.Env.ENQUIRY_RATE_WINDOW)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Store)
	authHandler := auth_handlers.NewAuthHandler(deps.Store.DB(), jwtManager)
	candidateHandler := candidate_handlers.NewCandidateHandler(deps.Candidates)
	jobHandler := job_handlers.NewJobHandler(deps.Jobs)
	courseHandler := course_handlers.NewCourseHandler(deps.Courses)
	enquiryHandler := enquiry_handlers.NewEnquiryHandler(deps.Enquiries)
	dashboardHandler := admin_handlers.NewDashboardHandler(
		deps.Candidates, deps.Jobs, deps.Courses, deps.Enquiries, deps.RedisCache)

	api := app.Group("/api/v1")

	// Health
	api.Get("/health", healthHandler.Health)

	// Auth
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/profile", authMiddleware.Required(), authHandler.Profile)

	// Public routes: the enquiry form plus the catalog/placement listings
	// that the marketing pages consume
	api.Post("/enquiries", enquiryLimiter.Limit("enquiry"), enquiryHandler.CreateEnquiry)
	api.Get("/courses/published", courseHandler.ListPublishedCourses)
	api.Get("/jobs/active", jobHandler.ListActiveJobs)

	// Admin routes
	adminOnly := []fiber.Handler{authMiddleware.Required(), authMiddleware.RequireAdmin()}

	candidates := api.Group("/candidates", adminOnly...)
	candidates.Get("/stats", candidateHandler.CandidateStats)
	candidates.Get("/", candidateHandler.ListCandidates)
	candidates.Post("/", candidateHandler.CreateCandidate)
	candidates.Get("/:id", candidateHandler.GetCandidate)
	candidates.Put("/:id", candidateHandler.UpdateCandidate)
	candidates.Delete("/:id", candidateHandler.DeleteCandidate)

	jobs := api.Group("/jobs", adminOnly...)
	jobs.Get("/stats", jobHandler.JobStats)
	jobs.Get("/", jobHandler.ListJobs)
	jobs.Post("/", jobHandler.CreateJob)
	jobs.Get("/:id", jobHandler.GetJob)
	jobs.Put("/:id", jobHandler.UpdateJob)
	jobs.Delete("/:id", jobHandler.DeleteJob)

	courses := api.Group("/courses", adminOnly...)
	courses.Get("/stats", courseHandler.CourseStats)
	courses.Get("/", courseHandler.ListCourses)
	courses.Post("/", courseHandler.CreateCourse)
	courses.Get("/:id", courseHandler.GetCourse)
	courses.Put("/:id", courseHandler.UpdateCourse)
	courses.Post("/:id/archive", courseHandler.ArchiveCourse)
	courses.Post("/:id/enroll", courseHandler.EnrollStudent)
	courses.Delete("/:id", courseHandler.DeleteCourse)

	enquiries := api.Group("/enquiries", adminOnly...)
	enquiries.Get("/stats", enquiryHandler.EnquiryStats)
	enquiries.Get("/export", enquiryHandler.ExportEnquiries)
	enquiries.Get("/", enquiryHandler.ListEnquiries)
	enquiries.Patch("/:id/status", enquiryHandler.UpdateEnquiryStatus)

	dashboard := api.Group("/dashboard", adminOnly...)
	dashboard.Get("/stats", dashboardHandler.Stats)
}
