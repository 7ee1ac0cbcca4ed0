package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	authService "aos_backend/internals/features/users/auth/service"
	helper "aos_backend/internals/helpers"
)

var validate = validator.New()

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// 🟢 POST /api/login (rate-limited ketat)
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !authService.CheckCredentials(req.Username, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized,
			"Tài khoản hoặc mật khẩu không đúng!")
	}

	token, err := authService.GenerateToken(req.Username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Đăng nhập thành công!", fiber.Map{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(authService.TokenTTL.Seconds()),
	})
}

// 🟢 POST /api/logout
// Tidak ada sesi server-side — cukup client buang token.
func Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Đã đăng xuất", nil)
}
