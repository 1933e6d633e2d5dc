package curriculumController

import (
	"codenexus/database"
	"codenexus/middleware"
	"codenexus/models"
	"codenexus/models/curriculum"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateTrack creates a new curriculum track
func AdminCreateTrack(c *fiber.Ctx) error {
	// Check admin role
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

	reqData, ok := c.Locals("validatedTrack").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		IsVisible   bool   `json:"is_visible"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// New tracks append to the end of the display order
	var nextOrder int
	database.Database.Db.Model(&curriculum.Track{}).
		Where("is_deleted = ?", false).
		Select("COALESCE(MAX(order_index), 0) + 1").Scan(&nextOrder)

	track := curriculum.Track{
		Title:       reqData.Title,
		Description: reqData.Description,
		Icon:        reqData.Icon,
		OrderIndex:  nextOrder,
		IsVisible:   reqData.IsVisible,
	}

	if err := database.Database.Db.Create(&track).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create track!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Track created successfully!", track)
}

// AdminUpdateTrack updates an existing track
func AdminUpdateTrack(c *fiber.Ctx) error {
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

	trackID := c.Locals("trackID").(int)

	var track curriculum.Track
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trackID, false).First(&track).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Track not found!", nil)
	}

	reqData, ok := c.Locals("validatedTrackUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		IsVisible   *bool  `json:"is_visible"`
		OrderIndex  *int   `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		track.Title = reqData.Title
	}
	if reqData.Description != "" {
		track.Description = reqData.Description
	}
	if reqData.Icon != "" {
		track.Icon = reqData.Icon
	}
	if reqData.IsVisible != nil {
		track.IsVisible = *reqData.IsVisible
	}
	if reqData.OrderIndex != nil {
		track.OrderIndex = *reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&track).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update track!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Track updated successfully!", track)
}

// AdminDeleteTrack soft deletes a track
func AdminDeleteTrack(c *fiber.Ctx) error {
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

	trackID := c.Locals("trackID").(int)

	var track curriculum.Track
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trackID, false).First(&track).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Track not found!", nil)
	}

	track.IsDeleted = true
	if err := database.Database.Db.Save(&track).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete track!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Track deleted successfully!", nil)
}

// AdminListTracks lists all tracks including hidden ones
func AdminListTracks(c *fiber.Ctx) error {
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

	var tracks []curriculum.Track
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("order_index asc").Find(&tracks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tracks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tracks fetched successfully!", tracks)
}
