package authValidator

import (
	"codenexus/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Helper to validate platform handles (letters, digits, underscore, hyphen)
func isValidHandle(handle string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9_-]{1,40}$`)
	return re.MatchString(handle)
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name             string `json:"name"`
			Email            string `json:"email"`
			Password         string `json:"password"`
			LeetcodeUsername string `json:"leetcode_username"`
			GfgUsername      string `json:"gfg_username"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		// Validate Email
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		// Validate Password
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		// Platform handles are optional but must be well formed when present
		if reqData.LeetcodeUsername != "" && !isValidHandle(reqData.LeetcodeUsername) {
			errors["leetcode_username"] = "Invalid LeetCode username!"
		}
		if reqData.GfgUsername != "" && !isValidHandle(reqData.GfgUsername) {
			errors["gfg_username"] = "Invalid GeeksforGeeks username!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated user to the next middleware
		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Email
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		// Validate Password
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// UpdateHandles validator middleware
func UpdateHandles() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LeetcodeUsername string `json:"leetcode_username"`
			GfgUsername      string `json:"gfg_username"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LeetcodeUsername != "" && !isValidHandle(reqData.LeetcodeUsername) {
			errors["leetcode_username"] = "Invalid LeetCode username!"
		}
		if reqData.GfgUsername != "" && !isValidHandle(reqData.GfgUsername) {
			errors["gfg_username"] = "Invalid GeeksforGeeks username!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedHandles", reqData)
		return c.Next()
	}
}
