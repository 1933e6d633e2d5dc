package progressController

import (
	"codenexus/config"
	"codenexus/database"
	"codenexus/engine"
	"codenexus/middleware"
	"codenexus/models"
	"codenexus/models/curriculum"
	"codenexus/services"
	"time"

	"github.com/gofiber/fiber/v2"
)

// todayISO resolves the current calendar date once per request; the engine
// itself never reads the clock
func todayISO() string {
	return time.Now().Format("2006-01-02")
}

// CompleteBlock marks one content block of a module as completed and returns
// the new progress summary plus the ordered notification events
func CompleteBlock(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	moduleID := c.Locals("moduleID").(int)
	blockID := c.Locals("blockID").(int)

	cat, err := services.LoadCatalog()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load curriculum!", nil)
	}

	today := todayISO()
	set, err := services.LoadDailySet(today)
	if err != nil {
		// treated as "no challenge today"; the block completion still counts
		set = nil
	}

	snap, events := services.Progress.CompleteBlock(userID, cat, uint(moduleID), uint(blockID), today, set)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Block completion processed.", fiber.Map{
		"events":   events,
		"progress": progressSummary(snap),
	})
}

// SolveProblem marks a problem as solved globally, independent of any module
// context (daily challenge page, external verification)
func SolveProblem(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	problemID := c.Locals("problemID").(int)

	var problem curriculum.Problem
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", problemID, false).First(&problem).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Problem not found!", nil)
	}

	today := todayISO()
	set, err := services.LoadDailySet(today)
	if err != nil {
		set = nil
	}

	snap, events := services.Progress.SolveProblem(userID, problem.ID, problem.Points, today, set)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Problem completion processed.", fiber.Map{
		"events":   events,
		"progress": progressSummary(snap),
	})
}

// GetMyProgress returns the caller's full progress state with derived level
// and tier
func GetMyProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	snap := services.Progress.Get(userID)

	units := make([]fiber.Map, 0, len(snap.Units))
	for _, u := range snap.Units {
		blockIDs := make([]uint, 0, len(u.CompletedBlockIDs))
		for id := range u.CompletedBlockIDs {
			blockIDs = append(blockIDs, id)
		}
		units = append(units, fiber.Map{
			"module_id":           u.ModuleID,
			"completed_block_ids": blockIDs,
			"unlocked":            u.Unlocked,
			"module_completed":    u.ModuleCompleted,
		})
	}

	solved := make([]uint, 0, len(snap.CompletedProblemIDs))
	for id := range snap.CompletedProblemIDs {
		solved = append(solved, id)
	}
	dates := make([]string, 0, len(snap.CompletedDates))
	for d := range snap.CompletedDates {
		dates = append(dates, d)
	}

	data := progressSummary(snap)
	data["unit_progress"] = units
	data["completed_problem_ids"] = solved
	data["completed_dates"] = dates

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", data)
}

// RefreshProgress re-reads remote state and reconciles it with the session
// snapshot via the merge rule
func RefreshProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	cat, err := services.LoadCatalog()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load curriculum!", nil)
	}

	snap, err := services.Progress.Refresh(userID, cat)
	if err != nil {
		// local state stays authoritative; surface a non-blocking sync error
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Sync error, local progress retained.", fiber.Map{
			"sync_error": true,
			"progress":   progressSummary(snap),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress refreshed successfully!", fiber.Map{
		"sync_error": false,
		"progress":   progressSummary(snap),
	})
}

// GetDailyChallenge returns today's challenge set with per-problem solved
// state
func GetDailyChallenge(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	today := todayISO()
	set, err := services.LoadDailySet(today)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load daily challenge!", nil)
	}
	if set == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No challenge set for today.", fiber.Map{
			"date":     today,
			"problems": []fiber.Map{},
		})
	}

	snap := services.Progress.Get(userID)

	var problems []curriculum.Problem
	database.Database.Db.Where("id IN ? AND is_deleted = ?", set.ProblemIDs, false).Find(&problems)
	byID := make(map[uint]curriculum.Problem, len(problems))
	for _, p := range problems {
		byID[p.ID] = p
	}

	result := make([]fiber.Map, 0, len(set.ProblemIDs))
	allSolved := true
	for _, pid := range set.ProblemIDs {
		p, ok := byID[pid]
		if !ok {
			continue
		}
		solved := snap.CompletedProblemIDs[pid]
		if !solved {
			allSolved = false
		}
		result = append(result, fiber.Map{
			"id":            p.ID,
			"title":         p.Title,
			"difficulty":    p.Difficulty,
			"points":        p.Points,
			"platform":      p.Platform,
			"external_link": p.ExternalLink,
			"is_solved":     solved,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily challenge fetched successfully!", fiber.Map{
		"date":          today,
		"problems":      result,
		"all_solved":    allSolved,
		"bonus_awarded": snap.LastChallengeDate == today,
	})
}

func progressSummary(snap engine.Snapshot) fiber.Map {
	step := config.AppConfig.LevelStepXP
	return fiber.Map{
		"points":              snap.Points,
		"current_streak":      snap.CurrentStreak,
		"last_challenge_date": snap.LastChallengeDate,
		"level":               engine.LevelFor(snap.Points, step),
		"level_progress":      engine.LevelProgress(snap.Points, step),
		"tier":                engine.TierFor(snap.Points, engine.DefaultTierTable()),
	}
}
