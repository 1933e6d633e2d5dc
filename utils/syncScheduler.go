package utils

import (
	"codenexus/config"
	"codenexus/database"
	"codenexus/models"
	"codenexus/models/curriculum"
	"codenexus/services"
	"log"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// logSync logs sync sweep events with timestamp
func logSync(message string) {
	log.Printf("[PLATFORM-SYNC %s] %s", time.Now().Format(time.RFC3339), message)
}

// sweepPlatformSolves polls external judge profiles for every student with a
// configured handle and credits matching curriculum problems. Credit goes
// through the same transition path as manual completion, so duplicates are
// ignored and daily challenge bonuses still apply.
func sweepPlatformSolves() {
	db := database.Database.Db

	var students []models.User
	if err := db.Where("role = ? AND is_deleted = ? AND is_blocked = ?", "STUDENT", false, false).
		Where("leetcode_username != '' OR gfg_username != ''").
		Find(&students).Error; err != nil {
		logSync("Error fetching students: " + err.Error())
		return
	}
	if len(students) == 0 {
		return
	}

	today := time.Now().Format("2006-01-02")
	todaysSet, err := services.LoadDailySet(today)
	if err != nil {
		logSync("Error loading daily set: " + err.Error())
		todaysSet = nil
	}

	credited := 0
	for _, student := range students {
		handles := map[string]string{
			curriculum.PlatformLeetCode: student.LeetcodeUsername,
			curriculum.PlatformGfg:      student.GfgUsername,
		}

		for platform, handle := range handles {
			if handle == "" {
				continue
			}

			slugs, err := services.Platform.SolvedByUser(platform, handle)
			if err != nil {
				logSync("Error polling " + platform + " for " + handle + ": " + err.Error())
				continue
			}
			if len(slugs) == 0 {
				continue
			}

			var problems []curriculum.Problem
			if err := db.Where("platform = ? AND slug IN ? AND is_deleted = ?", platform, slugs, false).
				Find(&problems).Error; err != nil {
				logSync("Error matching slugs: " + err.Error())
				continue
			}

			for _, problem := range problems {
				_, events := services.Progress.SolveProblem(student.ID, problem.ID, problem.Points, today, todaysSet)
				if len(events) > 0 {
					credited++
				}
			}
		}
	}

	if credited > 0 {
		logSync("Sweep credited " + strconv.Itoa(credited) + " new solves")
	}
}

// StartSyncScheduler registers the platform sweep on the shared cron runner
func StartSyncScheduler(c *cron.Cron) {
	spec := config.AppConfig.SyncCronSpec
	if spec == "" {
		spec = "*/30 * * * *"
	}
	if _, err := c.AddFunc(spec, sweepPlatformSolves); err != nil {
		logSync("Error registering sweep: " + err.Error())
		return
	}
	logSync("Platform sync sweep scheduled: " + spec)
}

// InitializeSchedulers initializes the background cron runner
func InitializeSchedulers() *cron.Cron {
	c := cron.New()
	StartSyncScheduler(c)
	c.Start()
	return c
}
