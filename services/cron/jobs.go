package cron

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/skillpath/institute-api/utils/export"
)

// ExportEnquiryReport writes the full enquiry list as a CSV report to the
// report directory and, when a bucket is configured, uploads it.
// Runs daily so the counselling team always has yesterday's picture even if
// the admin panel is unreachable.
func (m *CronManager) ExportEnquiryReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	jobName := "export_enquiry_report"

	enquiries, err := m.enquiries.GetAll(ctx)
	if err != nil {
		log.Printf("[CRON] %s failed: could not list enquiries: %v", jobName, err)
		return
	}

	data, err := export.EnquiriesCSV(enquiries)
	if err != nil {
		log.Printf("[CRON] %s failed: could not render CSV: %v", jobName, err)
		return
	}

	if err := os.MkdirAll(m.reportDir, 0o755); err != nil {
		log.Printf("[CRON] %s failed: could not create report dir: %v", jobName, err)
		return
	}

	filename := fmt.Sprintf("enquiries-%s.csv", time.Now().Format("2006-01-02"))
	path := filepath.Join(m.reportDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("[CRON] %s failed: could not write %s: %v", jobName, path, err)
		return
	}

	if m.spaces != nil {
		key := "reports/" + filename
		url, err := m.spaces.UploadBytes(ctx, key, data, "text/csv")
		if err != nil {
			// The on-disk copy already exists; upload failure is not fatal
			log.Printf("[CRON] %s: upload failed: %v", jobName, err)
		} else {
			log.Printf("[CRON] %s: uploaded report to %s", jobName, url)
		}
	}

	log.Printf("[CRON] %s completed: %d enquiries written to %s", jobName, len(enquiries), path)
}
