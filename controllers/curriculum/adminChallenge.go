package curriculumController

import (
	"codenexus/database"
	"codenexus/middleware"
	"codenexus/models"
	"codenexus/models/curriculum"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminSetDailyChallenge creates or replaces the challenge set for a date
func AdminSetDailyChallenge(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedChallenge").(*struct {
		Date       string `json:"date"`
		ProblemIDs []uint `json:"problem_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Every referenced problem must exist
	var count int64
	database.Database.Db.Model(&curriculum.Problem{}).
		Where("id IN ? AND is_deleted = ?", reqData.ProblemIDs, false).Count(&count)
	if count != int64(len(reqData.ProblemIDs)) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One or more problems not found!", nil)
	}

	var set curriculum.DailyChallengeSet
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date = ?", reqData.Date).First(&set).Error; err != nil {
			set = curriculum.DailyChallengeSet{Date: reqData.Date}
			if err := tx.Create(&set).Error; err != nil {
				return err
			}
		} else {
			set.IsDeleted = false
			if err := tx.Save(&set).Error; err != nil {
				return err
			}
			// Replace the previous membership entirely
			if err := tx.Where("set_id = ?", set.ID).Delete(&curriculum.DailyChallengeProblem{}).Error; err != nil {
				return err
			}
		}

		for i, problemID := range reqData.ProblemIDs {
			member := curriculum.DailyChallengeProblem{
				SetID:      set.ID,
				ProblemID:  problemID,
				OrderIndex: i + 1,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save daily challenge!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily challenge saved successfully!", fiber.Map{
		"set_id":      set.ID,
		"date":        reqData.Date,
		"problem_ids": reqData.ProblemIDs,
	})
}

// AdminGetDailyChallenge returns the challenge set for a date (today by default)
func AdminGetDailyChallenge(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	date, _ := c.Locals("challengeDate").(string)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var set curriculum.DailyChallengeSet
	if err := database.Database.Db.Where("date = ? AND is_deleted = ?", date, false).First(&set).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No challenge scheduled for this date.", fiber.Map{
			"date":     date,
			"problems": []curriculum.Problem{},
		})
	}

	var members []curriculum.DailyChallengeProblem
	database.Database.Db.Where("set_id = ? AND is_deleted = ?", set.ID, false).
		Order("order_index asc").Find(&members)

	problemIDs := make([]uint, 0, len(members))
	for _, m := range members {
		problemIDs = append(problemIDs, m.ProblemID)
	}

	var problems []curriculum.Problem
	if len(problemIDs) > 0 {
		database.Database.Db.Where("id IN ? AND is_deleted = ?", problemIDs, false).Find(&problems)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily challenge fetched successfully!", fiber.Map{
		"date":     date,
		"set_id":   set.ID,
		"problems": problems,
	})
}
