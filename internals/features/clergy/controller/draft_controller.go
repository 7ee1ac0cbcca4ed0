package controller

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aos_backend/internals/features/clergy/dto"
	"aos_backend/internals/features/clergy/service"
	helper "aos_backend/internals/helpers"
)

// DraftController mengelola sesi edit + autosave per record.
// Client kirim snapshot form penuh tiap perubahan; POST pertama untuk satu
// id = snapshot awal saat editor dibuka (tidak memicu save), POST berikutnya
// masuk debounce autosave.
type DraftController struct {
	Store service.Store

	mu       sync.Mutex
	sessions map[uuid.UUID]*service.EditorSession
}

func NewDraftController(store service.Store) *DraftController {
	return &DraftController{
		Store:    store,
		sessions: make(map[uuid.UUID]*service.EditorSession),
	}
}

// 🟢 POST /api/a/clergy/:id/draft
func (ctl *DraftController) Apply(c *fiber.Ctx) error {
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

	draft := req.ToModel()
	draft.ClergyID = id

	ctl.mu.Lock()
	sess, exists := ctl.sessions[id]
	if !exists {
		sess = service.NewEditorSession(ctl.Store, draft)
		ctl.sessions[id] = sess
	}
	ctl.mu.Unlock()

	sess.Apply(draft)

	return helper.JsonOK(c, "", dto.DraftStateResponse{
		ClergyID:  id.String(),
		SaveState: string(sess.State()),
	})
}

// 🟢 GET /api/a/clergy/:id/draft — indikator save state
func (ctl *DraftController) State(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	ctl.mu.Lock()
	sess, exists := ctl.sessions[id]
	ctl.mu.Unlock()
	if !exists {
		return helper.JsonOK(c, "", dto.DraftStateResponse{
			ClergyID:  id.String(),
			SaveState: string(service.SaveStateIdle),
		})
	}
	return helper.JsonOK(c, "", dto.DraftStateResponse{
		ClergyID:  id.String(),
		SaveState: string(sess.State()),
	})
}

// 🟢 DELETE /api/a/clergy/:id/draft — editor ditutup: teardown sesi.
// Timer debounce yang pending dibatalkan, tidak ada write menyusul.
func (ctl *DraftController) Close(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	ctl.mu.Lock()
	sess, exists := ctl.sessions[id]
	delete(ctl.sessions, id)
	ctl.mu.Unlock()

	if exists {
		sess.Close()
	}
	return helper.JsonOK(c, "Đã đóng phiên chỉnh sửa", fiber.Map{"clergy_id": id.String()})
}

// CloseAll dipanggil saat shutdown.
func (ctl *DraftController) CloseAll() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	for id, sess := range ctl.sessions {
		sess.Close()
		delete(ctl.sessions, id)
	}
}
