package curriculumValidator

import (
	"codenexus/middleware"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func parseIDParam(c *fiber.Ctx, name, label string) (int, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
	}
	return id, nil
}

// ============ Track Validators ============

// CreateTrack validates admin track creation request
func CreateTrack() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
			IsVisible   bool   `json:"is_visible"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrack", reqData)
		return c.Next()
	}
}

// UpdateTrack validates admin track update request
func UpdateTrack() fiber.Handler {
	return func(c *fiber.Ctx) error {
		trackID, err := parseIDParam(c, "id", "Track ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
			IsVisible   *bool  `json:"is_visible"`
			OrderIndex  *int   `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("trackID", trackID)
		c.Locals("validatedTrackUpdate", reqData)
		return c.Next()
	}
}

// DeleteTrack validates track deletion request
func DeleteTrack() fiber.Handler {
	return func(c *fiber.Ctx) error {
		trackID, err := parseIDParam(c, "id", "Track ID")
		if err != nil {
			return err
		}
		c.Locals("trackID", trackID)
		return c.Next()
	}
}

// ============ Module Validators ============

// CreateModule validates admin module creation under a track
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		trackID, err := parseIDParam(c, "track_id", "Track ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			errors["title"] = "Module title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Module title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("trackID", trackID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates admin module update request
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := parseIDParam(c, "module_id", "Module ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  *int   `json:"order_index"`
			IsVisible   *bool  `json:"is_visible"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Module title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// DeleteModule validates module deletion request
func DeleteModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := parseIDParam(c, "module_id", "Module ID")
		if err != nil {
			return err
		}
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// ============ Content Block Validators ============

// CreateBlock validates admin content block creation under a module
func CreateBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := parseIDParam(c, "module_id", "Module ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			Title     string `json:"title"`
			BlockType string `json:"block_type"`
			URL       string `json:"url"`
			ProblemID uint   `json:"problem_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.BlockType = strings.ToUpper(strings.TrimSpace(reqData.BlockType))

		if reqData.Title == "" {
			errors["title"] = "Block title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Block title must be at least 3 characters long!"
		}

		validBlockTypes := map[string]bool{"VIDEO": true, "PDF": true, "PROBLEM": true}
		if reqData.BlockType == "" {
			errors["block_type"] = "Block type is required!"
		} else if !validBlockTypes[reqData.BlockType] {
			errors["block_type"] = "Block type must be VIDEO, PDF, or PROBLEM!"
		}

		// Validate based on block type
		switch reqData.BlockType {
		case "VIDEO", "PDF":
			if strings.TrimSpace(reqData.URL) == "" {
				errors["url"] = "URL is required for " + reqData.BlockType + " type!"
			}
		case "PROBLEM":
			if reqData.ProblemID == 0 {
				errors["problem_id"] = "Problem ID is required for PROBLEM type!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedBlock", reqData)
		return c.Next()
	}
}

// UpdateBlock validates admin content block update request
func UpdateBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		blockID, err := parseIDParam(c, "block_id", "Block ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			Title      string `json:"title"`
			URL        string `json:"url"`
			ProblemID  *uint  `json:"problem_id"`
			OrderIndex *int   `json:"order_index"`
			IsVisible  *bool  `json:"is_visible"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Block title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("blockID", blockID)
		c.Locals("validatedBlockUpdate", reqData)
		return c.Next()
	}
}

// DeleteBlock validates content block deletion request
func DeleteBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		blockID, err := parseIDParam(c, "block_id", "Block ID")
		if err != nil {
			return err
		}
		c.Locals("blockID", blockID)
		return c.Next()
	}
}

// ============ Problem Validators ============

// CreateProblem validates admin problem creation request
func CreateProblem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Difficulty   string `json:"difficulty"`
			Points       int    `json:"points"`
			Platform     string `json:"platform"`
			Slug         string `json:"slug"`
			ExternalLink string `json:"external_link"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Difficulty = strings.ToUpper(strings.TrimSpace(reqData.Difficulty))
		reqData.Platform = strings.ToUpper(strings.TrimSpace(reqData.Platform))
		reqData.Slug = strings.TrimSpace(reqData.Slug)

		if reqData.Title == "" {
			errors["title"] = "Problem title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Problem title must be at least 3 characters long!"
		}

		validDifficulties := map[string]bool{"EASY": true, "MEDIUM": true, "HARD": true}
		if reqData.Difficulty != "" && !validDifficulties[reqData.Difficulty] {
			errors["difficulty"] = "Difficulty must be EASY, MEDIUM, or HARD!"
		}

		validPlatforms := map[string]bool{"LEETCODE": true, "GEEKSFORGEEKS": true}
		if reqData.Platform != "" && !validPlatforms[reqData.Platform] {
			errors["platform"] = "Platform must be LEETCODE or GEEKSFORGEEKS!"
		}

		if reqData.Points < 0 {
			errors["points"] = "Points must not be negative!"
		}

		if reqData.Slug == "" {
			errors["slug"] = "Slug is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProblem", reqData)
		return c.Next()
	}
}

// UpdateProblem validates admin problem update request
func UpdateProblem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		problemID, err := parseIDParam(c, "problem_id", "Problem ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Difficulty   string `json:"difficulty"`
			Points       *int   `json:"points"`
			Platform     string `json:"platform"`
			Slug         string `json:"slug"`
			ExternalLink string `json:"external_link"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Difficulty = strings.ToUpper(strings.TrimSpace(reqData.Difficulty))
		reqData.Platform = strings.ToUpper(strings.TrimSpace(reqData.Platform))

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Problem title must be at least 3 characters long!"
		}

		validDifficulties := map[string]bool{"EASY": true, "MEDIUM": true, "HARD": true}
		if reqData.Difficulty != "" && !validDifficulties[reqData.Difficulty] {
			errors["difficulty"] = "Difficulty must be EASY, MEDIUM, or HARD!"
		}

		validPlatforms := map[string]bool{"LEETCODE": true, "GEEKSFORGEEKS": true}
		if reqData.Platform != "" && !validPlatforms[reqData.Platform] {
			errors["platform"] = "Platform must be LEETCODE or GEEKSFORGEEKS!"
		}

		if reqData.Points != nil && *reqData.Points < 0 {
			errors["points"] = "Points must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("problemID", problemID)
		c.Locals("validatedProblemUpdate", reqData)
		return c.Next()
	}
}

// DeleteProblem validates problem deletion request
func DeleteProblem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		problemID, err := parseIDParam(c, "problem_id", "Problem ID")
		if err != nil {
			return err
		}
		c.Locals("problemID", problemID)
		return c.Next()
	}
}

// ============ Daily Challenge Validators ============

// SetDailyChallenge validates daily challenge set assignment request
func SetDailyChallenge() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Date       string `json:"date"`
			ProblemIDs []uint `json:"problem_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData.Date = strings.TrimSpace(reqData.Date)

		if reqData.Date == "" {
			errors["date"] = "Date is required!"
		} else if !isoDateRe.MatchString(reqData.Date) {
			errors["date"] = "Date must be in YYYY-MM-DD format!"
		}

		if len(reqData.ProblemIDs) == 0 {
			errors["problem_ids"] = "At least one problem is required!"
		}
		for _, id := range reqData.ProblemIDs {
			if id == 0 {
				errors["problem_ids"] = "Problem IDs must be positive!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChallenge", reqData)
		return c.Next()
	}
}

// GetDailyChallengeAdmin validates the admin challenge lookup request
func GetDailyChallengeAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := strings.TrimSpace(c.Query("date"))
		if date != "" && !isoDateRe.MatchString(date) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Date must be in YYYY-MM-DD format!", nil)
		}
		c.Locals("challengeDate", date)
		return c.Next()
	}
}
