package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	clergyService "aos_backend/internals/features/clergy/service"
	"aos_backend/internals/features/organization/dto"
	orgService "aos_backend/internals/features/organization/service"
	helper "aos_backend/internals/helpers"
)

var validate = validator.New()

type AosInfoController struct {
	Service *orgService.AosInfoService
}

func NewAosInfoController(svc *orgService.AosInfoService) *AosInfoController {
	return &AosInfoController{Service: svc}
}

// 🟢 GET /api/public/info — thông tin AoS (default-merged, tidak pernah 500)
func (ctl *AosInfoController) Get(c *fiber.Ctx) error {
	info, err := ctl.Service.Get(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromModel(info))
}

// 🟢 PUT /api/a/info — upsert settings singleton
func (ctl *AosInfoController) Update(c *fiber.Ctx) error {
	var req dto.AosInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	info := req.ToModel()
	if err := ctl.Service.Save(c.UserContext(), info); err != nil {
		if errors.Is(err, clergyService.ErrNotConfigured) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable,
				"Chưa kết nối cơ sở dữ liệu. Không thể lưu.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"Lỗi khi lưu thông tin: "+err.Error())
	}

	return helper.JsonUpdated(c, "Đã cập nhật thông tin thành công!", dto.FromModel(info))
}
