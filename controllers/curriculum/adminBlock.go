package curriculumController

import (
	"codenexus/database"
	"codenexus/middleware"
	"codenexus/models"
	"codenexus/models/curriculum"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateBlock creates a content block at the end of a module
func AdminCreateBlock(c *fiber.Ctx) error {
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

	moduleID := c.Locals("moduleID").(int)

	var module curriculum.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedBlock").(*struct {
		Title     string `json:"title"`
		BlockType string `json:"block_type"`
		URL       string `json:"url"`
		ProblemID uint   `json:"problem_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// PROBLEM blocks must reference an existing problem
	if reqData.BlockType == curriculum.BlockTypeProblem {
		var problem curriculum.Problem
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.ProblemID, false).First(&problem).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Problem not found!", nil)
		}
	}

	var nextOrder int
	database.Database.Db.Model(&curriculum.ContentBlock{}).
		Where("module_id = ? AND is_deleted = ?", module.ID, false).
		Select("COALESCE(MAX(order_index), 0) + 1").Scan(&nextOrder)

	block := curriculum.ContentBlock{
		ModuleID:   module.ID,
		Title:      reqData.Title,
		BlockType:  reqData.BlockType,
		URL:        reqData.URL,
		ProblemID:  reqData.ProblemID,
		OrderIndex: nextOrder,
		IsVisible:  true,
	}

	if err := database.Database.Db.Create(&block).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create block!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Block created successfully!", block)
}

// AdminUpdateBlock updates an existing content block
func AdminUpdateBlock(c *fiber.Ctx) error {
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

	blockID := c.Locals("blockID").(int)

	var block curriculum.ContentBlock
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", blockID, false).First(&block).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Block not found!", nil)
	}

	reqData, ok := c.Locals("validatedBlockUpdate").(*struct {
		Title      string `json:"title"`
		URL        string `json:"url"`
		ProblemID  *uint  `json:"problem_id"`
		OrderIndex *int   `json:"order_index"`
		IsVisible  *bool  `json:"is_visible"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		block.Title = reqData.Title
	}
	if reqData.URL != "" {
		block.URL = reqData.URL
	}
	if reqData.ProblemID != nil {
		if block.BlockType != curriculum.BlockTypeProblem {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only PROBLEM blocks reference a problem!", nil)
		}
		var problem curriculum.Problem
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.ProblemID, false).First(&problem).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Problem not found!", nil)
		}
		block.ProblemID = *reqData.ProblemID
	}
	if reqData.OrderIndex != nil {
		block.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsVisible != nil {
		block.IsVisible = *reqData.IsVisible
	}

	if err := database.Database.Db.Save(&block).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update block!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Block updated successfully!", block)
}

// AdminDeleteBlock soft deletes a content block
func AdminDeleteBlock(c *fiber.Ctx) error {
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

	blockID := c.Locals("blockID").(int)

	var block curriculum.ContentBlock
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", blockID, false).First(&block).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Block not found!", nil)
	}

	block.IsDeleted = true
	if err := database.Database.Db.Save(&block).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete block!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Block deleted successfully!", nil)
}
