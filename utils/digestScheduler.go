package utils

import (
	"log"
	"time"

	"educa/config"
	"educa/database"
	"educa/models"
	courseModels "educa/models/course"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[DIGEST-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processWeeklyDigest mails every enrolled student the courses created in the
// last seven days
func processWeeklyDigest() {
	db := database.Database.Db
	since := time.Now().AddDate(0, 0, -7)

	var recent []courseModels.Course
	if err := db.Where("created_at >= ?", since).
		Order("created_at desc").
		Find(&recent).Error; err != nil {
		logScheduler("Error fetching recent courses: " + err.Error())
		return
	}
	if len(recent) == 0 {
		logScheduler("No new courses this week, digest skipped")
		return
	}

	titles := make([]string, 0, len(recent))
	for _, crs := range recent {
		titles = append(titles, crs.Title)
	}

	var userIDs []uint
	if err := db.Model(&courseModels.Enrollment{}).
		Distinct("user_id").
		Pluck("user_id", &userIDs).Error; err != nil {
		logScheduler("Error fetching enrolled users: " + err.Error())
		return
	}

	sent := 0
	for _, id := range userIDs {
		var u models.User
		if err := db.Select("name, email").First(&u, id).Error; err == nil && u.Email != "" {
			SendCourseDigestEmail(u.Email, u.Name, titles)
			sent++
		}
	}
	log.Printf("[DIGEST-SCHEDULER] Digest queued, recipients: %d", sent)
}

// InitializeDigestScheduler starts the weekly course digest cron
func InitializeDigestScheduler() *cron.Cron {
	logScheduler("Initializing digest scheduler...")

	c := cron.New()
	if _, err := c.AddFunc(config.AppConfig.DigestCron, processWeeklyDigest); err != nil {
		logScheduler("Invalid digest cron spec, scheduler disabled: " + err.Error())
		return c
	}
	c.Start()

	logScheduler("Digest scheduler started with spec: " + config.AppConfig.DigestCron)
	return c
}
