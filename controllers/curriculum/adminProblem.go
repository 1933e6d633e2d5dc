package curriculumController

import (
	"codenexus/database"
	"codenexus/middleware"
	"codenexus/models"
	"codenexus/models/curriculum"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateProblem registers a new external platform problem
func AdminCreateProblem(c *fiber.Ctx) error {
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

	reqData, ok := c.Locals("validatedProblem").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Difficulty   string `json:"difficulty"`
		Points       int    `json:"points"`
		Platform     string `json:"platform"`
		Slug         string `json:"slug"`
		ExternalLink string `json:"external_link"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Slug is the sync sweep's matching key, keep it unique per platform
	var existing curriculum.Problem
	if err := database.Database.Db.Where("slug = ? AND platform = ? AND is_deleted = ?",
		reqData.Slug, reqData.Platform, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A problem with this slug already exists!", nil)
	}

	problem := curriculum.Problem{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Difficulty:   reqData.Difficulty,
		Points:       reqData.Points,
		Platform:     reqData.Platform,
		Slug:         reqData.Slug,
		ExternalLink: reqData.ExternalLink,
	}
	if problem.Difficulty == "" {
		problem.Difficulty = "EASY"
	}
	if problem.Platform == "" {
		problem.Platform = curriculum.PlatformLeetCode
	}
	if problem.Points == 0 {
		problem.Points = 10
	}

	if err := database.Database.Db.Create(&problem).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create problem!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Problem created successfully!", problem)
}

// AdminUpdateProblem updates an existing problem
func AdminUpdateProblem(c *fiber.Ctx) error {
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

	problemID := c.Locals("problemID").(int)

	var problem curriculum.Problem
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", problemID, false).First(&problem).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Problem not found!", nil)
	}

	reqData, ok := c.Locals("validatedProblemUpdate").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Difficulty   string `json:"difficulty"`
		Points       *int   `json:"points"`
		Platform     string `json:"platform"`
		Slug         string `json:"slug"`
		ExternalLink string `json:"external_link"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		problem.Title = reqData.Title
	}
	if reqData.Description != "" {
		problem.Description = reqData.Description
	}
	if reqData.Difficulty != "" {
		problem.Difficulty = reqData.Difficulty
	}
	if reqData.Points != nil {
		problem.Points = *reqData.Points
	}
	if reqData.Platform != "" {
		problem.Platform = reqData.Platform
	}
	if slug := strings.TrimSpace(reqData.Slug); slug != "" {
		problem.Slug = slug
	}
	if reqData.ExternalLink != "" {
		problem.ExternalLink = reqData.ExternalLink
	}

	if err := database.Database.Db.Save(&problem).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update problem!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Problem updated successfully!", problem)
}

// AdminDeleteProblem soft deletes a problem
func AdminDeleteProblem(c *fiber.Ctx) error {
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

	problemID := c.Locals("problemID").(int)

	var problem curriculum.Problem
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", problemID, false).First(&problem).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Problem not found!", nil)
	}

	// Refuse deletion while curriculum blocks still reference the problem
	var refs int64
	database.Database.Db.Model(&curriculum.ContentBlock{}).
		Where("problem_id = ? AND is_deleted = ?", problem.ID, false).Count(&refs)
	if refs > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Problem is referenced by content blocks!", nil)
	}

	problem.IsDeleted = true
	if err := database.Database.Db.Save(&problem).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete problem!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Problem deleted successfully!", nil)
}

// AdminListProblems lists all problems
func AdminListProblems(c *fiber.Ctx) error {
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

	db := database.Database.Db.Where("is_deleted = ?", false)
	if platform := strings.ToUpper(strings.TrimSpace(c.Query("platform"))); platform != "" {
		db = db.Where("platform = ?", platform)
	}
	if difficulty := strings.ToUpper(strings.TrimSpace(c.Query("difficulty"))); difficulty != "" {
		db = db.Where("difficulty = ?", difficulty)
	}

	var problems []curriculum.Problem
	if err := db.Order("id asc").Find(&problems).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch problems!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Problems fetched successfully!", problems)
}
