package progressValidator

import (
	"codenexus/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CompleteBlock validates block completion request params
func CompleteBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("module_id"))
		blockIDStr := strings.TrimSpace(c.Params("block_id"))

		if moduleIDStr == "" || blockIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID and Block ID are required!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		blockID, err := strconv.Atoi(blockIDStr)
		if err != nil || blockID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Block ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("blockID", blockID)
		return c.Next()
	}
}

// SolveProblem validates problem solve request params
func SolveProblem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		problemIDStr := strings.TrimSpace(c.Params("problem_id"))
		if problemIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Problem ID is required!", nil)
		}

		problemID, err := strconv.Atoi(problemIDStr)
		if err != nil || problemID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Problem ID!", nil)
		}

		c.Locals("problemID", problemID)
		return c.Next()
	}
}

// TrackDetail validates track detail request params
func TrackDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		trackIDStr := strings.TrimSpace(c.Params("id"))
		if trackIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Track ID is required!", nil)
		}

		trackID, err := strconv.Atoi(trackIDStr)
		if err != nil || trackID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Track ID!", nil)
		}

		c.Locals("trackID", trackID)
		return c.Next()
	}
}
