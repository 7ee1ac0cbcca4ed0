package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aos_backend/internals/constants"
	"aos_backend/internals/features/clergy/dto"
	clergyModel "aos_backend/internals/features/clergy/model"
	"aos_backend/internals/features/clergy/service"
	helper "aos_backend/internals/helpers"
	authMw "aos_backend/internals/middlewares/auth"
)

var validate = validator.New()

type ClergyController struct {
	DB    *gorm.DB
	Store service.Store
	Sync  *service.RosterSync
}

func NewClergyController(db *gorm.DB, store service.Store, sync *service.RosterSync) *ClergyController {
	return &ClergyController{DB: db, Store: store, Sync: sync}
}

// =======================
// READ (PUBLIC)
// =======================

// 🟢 GET /api/public/clergy?search=&role=&category=&page=&per_page=
// Baca dari mirror roster (bukan query DB langsung), filter in-memory.
func (ctl *ClergyController) List(c *fiber.Ctx) error {
	search := c.Query("search")
	role := c.Query("role", constants.RoleFilterAll)
	category := c.Query("category", constants.CategoryAll)

	records := ctl.Sync.Records()
	filtered := service.FilterRoster(records, search, role, category)

	paging := helper.ResolvePaging(c, 20, 100)
	total := int64(len(filtered))
	start := paging.Offset
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + paging.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	page := filtered[start:end]

	connection := "connected"
	if !ctl.Sync.Connected() {
		connection = "error"
	}

	return helper.JsonList(c, "", fiber.Map{
		"clergies":   dto.FromModels(page),
		"connection": connection,
	}, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(page)))
}

// 🟢 GET /api/public/clergy/:id
func (ctl *ClergyController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	rec, ok := ctl.Sync.FindByID(id)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy giáo sĩ")
	}
	return helper.JsonOK(c, "", dto.FromModel(&rec))
}

// 🟢 GET /api/public/clergy/statuses — tabel status + label + warna
func (ctl *ClergyController) ListStatuses(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", constants.StatusConfigs)
}

// 🟢 GET /api/public/clergy/roles — pilihan role form + preset group filter
func (ctl *ClergyController) ListRoles(c *fiber.Ctx) error {
	groups := []dto.RoleGroupResponse{}
	var models []clergyModel.RoleGroupModel
	if ctl.DB == nil {
		// mode tanpa DB: cuma role options statis
	} else if err := ctl.DB.Order("role_group_sort_order ASC").Find(&models).Error; err != nil {
		log.Printf("[WARN] load role groups gagal: %v", err)
	} else {
		for i := range models {
			groups = append(groups, dto.FromRoleGroup(&models[i]))
		}
	}
	return helper.JsonOK(c, "", fiber.Map{
		"role_options": constants.RoleOptions,
		"role_groups":  groups,
	})
}

// =======================
// WRITE (ADMIN)
// =======================

// 🟢 POST /api/a/clergy — mode add: satu write eksplisit, blocking.
// Gagal → editor client tetap terbuka (error response), mirror belum
// berubah sampai snapshot berikutnya.
func (ctl *ClergyController) Create(c *fiber.Ctx) error {
	var req dto.ClergyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if msg, ok := req.ValidateDomain(); !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	rec := req.ToModel()
	if err := ctl.Store.Create(c.UserContext(), &rec); err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable,
				"Lỗi: Chưa kết nối cơ sở dữ liệu. Không thể lưu.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"Lỗi: "+err.Error())
	}
	return helper.JsonCreated(c, "Thêm giáo sĩ thành công!", dto.FromModel(&rec))
}

// 🟢 PUT /api/a/clergy/:id — full-record replace (bukan patch).
func (ctl *ClergyController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	var req dto.ClergyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if msg, ok := req.ValidateDomain(); !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	rec := req.ToModel()
	if err := ctl.Store.Update(c.UserContext(), id, &rec); err != nil {
		return storeErrorResponse(c, err)
	}
	return helper.JsonUpdated(c, "Cập nhật giáo sĩ thành công!", dto.FromModel(&rec))
}

// 🟢 DELETE /api/a/clergy/:id
// Request DELETE dari client = konfirmasi sudah lewat modal di UI, jadi
// precondition + confirm dijalankan berurutan di sini.
func (ctl *ClergyController) Delete(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Params("id")) // invalid/“sample” → uuid.Nil

	collector := &service.NoticeCollector{}
	wf := service.NewDeleteWorkflow(ctl.Store, collector)

	if !wf.Request(id) {
		notice, _ := collector.Last()
		status := fiber.StatusBadRequest
		if notice.Type == service.NoticeError {
			status = fiber.StatusServiceUnavailable
		}
		return helper.JsonError(c, status, notice.Message)
	}

	if err := wf.Confirm(c.UserContext()); err != nil {
		notice, _ := collector.Last()
		status := fiber.StatusInternalServerError
		if errors.Is(err, service.ErrPermissionDenied) {
			status = fiber.StatusForbidden
		} else if errors.Is(err, service.ErrRecordNotFound) {
			status = fiber.StatusNotFound
		}
		return helper.JsonError(c, status, notice.Message)
	}

	notice, _ := collector.Last()
	return helper.JsonDeleted(c, notice.Message, fiber.Map{"clergy_id": id.String()})
}

// 🟢 PATCH /api/a/clergy/:id/status — workflow ganti trạng thái.
func (ctl *ClergyController) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rec, found := ctl.findRecord(c.Params("id"))
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy giáo sĩ")
	}

	collector := &service.NoticeCollector{}
	wf := service.NewStatusWorkflow(ctl.Store, collector)
	change, ok := wf.Open(rec, authMw.IsAuthenticated(c))
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Cần đăng nhập để thay đổi trạng thái")
	}

	change.Select(req.ClergyStatus)
	if err := change.Confirm(c.UserContext()); err != nil {
		notice, _ := collector.Last()
		status := fiber.StatusInternalServerError
		if errors.Is(err, service.ErrMissingID) {
			status = fiber.StatusBadRequest
		} else if errors.Is(err, service.ErrRecordNotFound) {
			status = fiber.StatusNotFound
		} else if errors.Is(err, service.ErrNotConfigured) {
			status = fiber.StatusServiceUnavailable
		}
		return helper.JsonError(c, status, notice.Message)
	}

	notice, _ := collector.Last()
	rec.ClergyStatus = change.Selected()
	return helper.JsonUpdated(c, notice.Message, dto.FromModel(&rec))
}

// findRecord: mirror dulu (cepat), DB sebagai fallback kalau snapshot
// belum menyusul (eventual consistency).
func (ctl *ClergyController) findRecord(id string) (clergyModel.ClergyModel, bool) {
	if rec, ok := ctl.Sync.FindByID(id); ok {
		return rec, true
	}
	parsed, err := uuid.Parse(id)
	if err != nil || ctl.DB == nil {
		return clergyModel.ClergyModel{}, false
	}
	var rec clergyModel.ClergyModel
	if err := ctl.DB.First(&rec, "clergy_id = ?", parsed).Error; err != nil {
		return clergyModel.ClergyModel{}, false
	}
	return rec, true
}

func storeErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotConfigured):
		return helper.JsonError(c, fiber.StatusServiceUnavailable,
			"Lỗi: Chưa kết nối cơ sở dữ liệu.")
	case errors.Is(err, service.ErrMissingID):
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Không thể cập nhật dữ liệu mẫu")
	case errors.Is(err, service.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy giáo sĩ")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lỗi: "+err.Error())
	}
}
