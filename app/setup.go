package app

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/skillpath/institute-api/api"
	"github.com/skillpath/institute-api/config"
	"github.com/skillpath/institute-api/database"
	"github.com/skillpath/institute-api/localstore"
	"github.com/skillpath/institute-api/router"
	"github.com/skillpath/institute-api/services"
	"github.com/skillpath/institute-api/services/cron"
	"github.com/skillpath/institute-api/utils/cache"
	"github.com/skillpath/institute-api/utils/storage"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection for the remote-visible data
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	// Seed the admin user
	if err := database.NewSeeder(store.DB()).SeedAll(); err != nil {
		log.Printf("Warning: database seeding failed: %v", err)
	}

	// Initialize the local record store
	kv, err := localstore.NewFileKV(getEnv.DATA_DIR)
	if err != nil {
		return fmt.Errorf("failed to open local record store: %w", err)
	}

	// Entity services on the local store
	candidateService := services.NewCandidateService(kv)
	jobService := services.NewJobService(kv)
	courseService := services.NewCourseService(kv)

	// First-run sample data; idempotent, never overwrites user data
	if err := candidateService.InitializeWithSampleData(); err != nil {
		log.Printf("Warning: failed to seed candidates: %v", err)
	}
	if err := jobService.InitializeWithSampleData(); err != nil {
		log.Printf("Warning: failed to seed jobs: %v", err)
	}
	if err := courseService.InitializeWithSampleData(); err != nil {
		log.Printf("Warning: failed to seed courses: %v", err)
	}

	// Enquiry workflow on the remote store
	enquiryService := services.NewEnquiryService(database.NewEnquiryRepository(store.DB()))

	// Redis is optional: without it the rate limiter and dashboard cache
	// are disabled, nothing else changes
	var redisCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis: %v. Rate limiting and stats caching will be disabled.", err)
			redisCache = nil
		}
	}

	// Spaces report upload is optional
	var spacesClient *storage.SpacesClient
	if getEnv.SPACES_BUCKET != "" {
		spacesClient, err = storage.NewSpacesClient(storage.SpacesConfig{
			AccessKey: getEnv.SPACES_ACCESS_KEY,
			SecretKey: getEnv.SPACES_SECRET_KEY,
			Bucket:    getEnv.SPACES_BUCKET,
			Region:    getEnv.SPACES_REGION,
			Endpoint:  getEnv.SPACES_ENDPOINT,
		})
		if err != nil {
			log.Printf("Warning: failed to create Spaces client: %v. Report uploads will be disabled.", err)
			spacesClient = nil
		}
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewCronManager(enquiryService, getEnv.REPORT_DIR, spacesClient)
		if err := cronManager.Start(); err != nil {
			// Don't fail the app, just log the warning
			log.Printf("Warning: failed to start cron jobs: %v", err)
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			redisCache.Close()
		}
		store.Close()
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Setup Routes
	router.SetupRoutes(app, router.Deps{
		Env:        getEnv,
		Store:      store,
		Candidates: candidateService,
		Jobs:       jobService,
		Courses:    courseService,
		Enquiries:  enquiryService,
		RedisCache: redisCache,
	})

	// Get the PORT & Start the Server
	return server.Run()
}
