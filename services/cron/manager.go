package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"github.com/skillpath/institute-api/services"
	"github.com/skillpath/institute-api/utils/storage"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron      *cron.Cron
	enquiries *services.EnquiryService
	reportDir string
	spaces    *storage.SpacesClient // nil when no bucket is configured
}

// NewCronManager creates a new cron manager. spaces may be nil; reports are
// then only written to disk.
func NewCronManager(enquiries *services.EnquiryService, reportDir string, spaces *storage.SpacesClient) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:      c,
		enquiries: enquiries,
		reportDir: reportDir,
		spaces:    spaces,
	}
}

// Start registers and starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// Daily at 2 AM: export the enquiry report
	_, err := m.cron.AddFunc("0 0 2 * * *", func() {
		log.Println("[CRON] Starting job: export_enquiry_report")
		m.ExportEnquiryReport()
	})
	if err != nil {
		return err
	}

	return nil
}
