package superAdminController

import (
	"codenexus/config"
	"codenexus/controllers/auth"
	"codenexus/database"
	"codenexus/middleware"
	"codenexus/models"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// UserList returns a paginated list of users for admins
func UserList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Where("is_deleted = ?", false)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var users []models.User
	var total int64

	if err := db.Offset(offset).Limit(limit).Order("id asc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}
	db.Model(&models.User{}).Count(&total)

	for i := range users {
		users[i].Password = ""
	}

	response := map[string]interface{}{
		"users": users,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User List.", response)
}

// RegisterAdmin creates a new admin account
func RegisterAdmin(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var caller models.User
	if err := database.Database.Db.First(&caller, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if caller.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	var reqData models.User
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     "ADMIN",
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving admin to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register admin!", nil)
	}

	if err := authController.SeedPermissions(db, newUser.Role, newUser.ID); err != nil {
		log.Printf("Error seeding permissions: %v", err)
	}

	newUser.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Admin registered successfully.", newUser)
}

// BlockUser blocks a student account indefinitely
func BlockUser(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var caller models.User
	if err := database.Database.Db.First(&caller, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if caller.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	targetID, err := strconv.Atoi(strings.TrimSpace(c.Params("user_id")))
	if err != nil || targetID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
	}

	if uint(targetID) == caller.ID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot block your own account!", nil)
	}

	var target models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	target.IsBlocked = true
	target.BlockedUntil = nil
	if err := database.Database.Db.Save(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to block user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User blocked successfully!", nil)
}

// UnblockUser lifts a block and resets the failed login counter
func UnblockUser(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var caller models.User
	if err := database.Database.Db.First(&caller, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if caller.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	targetID, err := strconv.Atoi(strings.TrimSpace(c.Params("user_id")))
	if err != nil || targetID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
	}

	var target models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	target.IsBlocked = false
	target.BlockedUntil = nil
	target.FailedLoginAttempts = 0
	target.LastFailedLogin = nil
	if err := database.Database.Db.Save(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unblock user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User unblocked successfully!", nil)
}

// DeleteUser soft deletes a user account
func DeleteUser(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var caller models.User
	if err := database.Database.Db.First(&caller, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if caller.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	targetID, err := strconv.Atoi(strings.TrimSpace(c.Params("user_id")))
	if err != nil || targetID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
	}

	if uint(targetID) == caller.ID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot delete your own account!", nil)
	}

	var target models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	target.IsDeleted = true
	target.Email = target.Email + ".deleted." + strconv.FormatInt(time.Now().Unix(), 10)
	if err := database.Database.Db.Save(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
