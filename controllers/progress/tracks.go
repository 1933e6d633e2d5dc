package progressController

import (
	"codenexus/database"
	"codenexus/engine"
	"codenexus/middleware"
	"codenexus/models/curriculum"
	"codenexus/services"

	"github.com/gofiber/fiber/v2"
)

// GetTracks lists visible tracks with the caller's per-track completion
// summary
func GetTracks(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var tracks []curriculum.Track
	if err := database.Database.Db.Where("is_deleted = ? AND is_visible = ?", false, true).
		Order("order_index asc").Find(&tracks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tracks!", nil)
	}

	cat, err := services.LoadCatalog()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load curriculum!", nil)
	}
	snap := services.Progress.Get(userID)

	result := make([]fiber.Map, 0, len(tracks))
	for _, t := range tracks {
		total := 0
		completed := 0
		for _, et := range cat.Tracks {
			if et.ID != t.ID {
				continue
			}
			total = len(et.ModuleIDs)
			for _, mid := range et.ModuleIDs {
				if snap.Units[mid].ModuleCompleted {
					completed++
				}
			}
		}
		result = append(result, fiber.Map{
			"id":                t.ID,
			"title":             t.Title,
			"description":       t.Description,
			"icon":              t.Icon,
			"total_modules":     total,
			"completed_modules": completed,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tracks fetched successfully!", result)
}

// GetTrackDetail returns one track's modules and blocks with the caller's
// lock and completion state. Lock state is recomputed on every read.
func GetTrackDetail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trackID := c.Locals("trackID").(int)

	var track curriculum.Track
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_visible = ?", trackID, false, true).
		First(&track).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Track not found!", nil)
	}

	cat, err := services.LoadCatalog()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load curriculum!", nil)
	}

	var engineTrack engine.Track
	for _, et := range cat.Tracks {
		if et.ID == track.ID {
			engineTrack = et
			break
		}
	}

	snap := services.Progress.Get(userID)

	var modules []curriculum.Module
	database.Database.Db.Where("track_id = ? AND is_deleted = ? AND is_visible = ?", track.ID, false, true).
		Order("order_index asc").Find(&modules)

	moduleViews := make([]fiber.Map, 0, len(modules))
	for _, m := range modules {
		var blocks []curriculum.ContentBlock
		database.Database.Db.Where("module_id = ? AND is_deleted = ? AND is_visible = ?", m.ID, false, true).
			Order("order_index asc").Find(&blocks)

		unit := snap.Units[m.ID]
		blockViews := make([]fiber.Map, 0, len(blocks))
		for _, b := range blocks {
			blockViews = append(blockViews, fiber.Map{
				"id":           b.ID,
				"title":        b.Title,
				"block_type":   b.BlockType,
				"url":          b.URL,
				"problem_id":   b.ProblemID,
				"is_completed": unit.CompletedBlockIDs[b.ID],
			})
		}

		moduleViews = append(moduleViews, fiber.Map{
			"id":               m.ID,
			"title":            m.Title,
			"description":      m.Description,
			"is_locked":        engine.IsModuleLocked(engineTrack, m.ID, snap),
			"module_completed": unit.ModuleCompleted,
			"content_blocks":   blockViews,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Track details fetched successfully!", fiber.Map{
		"track":   track,
		"modules": moduleViews,
	})
}
