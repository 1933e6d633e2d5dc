package rankingController

import (
	"codenexus/database"
	"codenexus/engine"
	"codenexus/middleware"
	"codenexus/models"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GetLeaderboard lists students ordered by their denormalized point totals
func GetLeaderboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	search := strings.TrimSpace(c.Query("search"))

	db := database.Database.Db.Model(&models.User{}).
		Where("role = ? AND is_deleted = ? AND is_blocked = ?", "STUDENT", false, false)
	if search != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var students []models.User
	if err := db.Order("points desc, current_streak desc, id asc").Limit(100).Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	table := engine.DefaultTierTable()
	entries := make([]fiber.Map, 0, len(students))
	selfRank := 0
	for i, s := range students {
		if s.ID == userID {
			selfRank = i + 1
		}
		entries = append(entries, fiber.Map{
			"rank":           i + 1,
			"user_id":        s.ID,
			"name":           s.Name,
			"points":         s.Points,
			"current_streak": s.CurrentStreak,
			"tier":           engine.TierFor(s.Points, table),
			"is_self":        s.ID == userID,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully!", fiber.Map{
		"entries":   entries,
		"self_rank": selfRank,
		"total":     len(entries),
	})
}

// GetMyRank returns the caller's exact position among all students
func GetMyRank(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var ahead int64
	database.Database.Db.Model(&models.User{}).
		Where("role = ? AND is_deleted = ? AND is_blocked = ? AND points > ?", "STUDENT", false, false, user.Points).
		Count(&ahead)

	var total int64
	database.Database.Db.Model(&models.User{}).
		Where("role = ? AND is_deleted = ? AND is_blocked = ?", "STUDENT", false, false).
		Count(&total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rank fetched successfully!", fiber.Map{
		"rank":           ahead + 1,
		"total_students": total,
		"points":         user.Points,
		"current_streak": user.CurrentStreak,
		"tier":           engine.TierFor(user.Points, engine.DefaultTierTable()),
	})
}

// ExportLeaderboard streams the full student ranking as an xlsx workbook
func ExportLeaderboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var students []models.User
	if err := database.Database.Db.Where("role = ? AND is_deleted = ?", "STUDENT", false).
		Order("points desc, current_streak desc, id asc").Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Leaderboard"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build export!", nil)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Rank", "Name", "Email", "Points", "Streak", "Tier", "Blocked"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	table := engine.DefaultTierTable()
	for i, s := range students {
		row := i + 2
		values := []interface{}{
			i + 1, s.Name, s.Email, s.Points, s.CurrentStreak,
			engine.TierFor(s.Points, table), s.IsBlocked,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to write export!", nil)
	}

	filename := fmt.Sprintf("leaderboard-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
