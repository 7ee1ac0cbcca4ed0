package controller

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clergyModel "aos_backend/internals/features/clergy/model"
	"aos_backend/internals/features/clergy/service"
	orgModel "aos_backend/internals/features/organization/model"
)

// recordingStore: service.Store minimal untuk test HTTP — mencatat update.
type recordingStore struct {
	mu      sync.Mutex
	updates []clergyModel.ClergyModel
}

func (s *recordingStore) Configured() bool { return true }
func (s *recordingStore) Subscribe(func([]clergyModel.ClergyModel), func(error)) service.Unsubscribe {
	return func() {}
}
func (s *recordingStore) Create(context.Context, *clergyModel.ClergyModel) error { return nil }
func (s *recordingStore) Update(ctx context.Context, id uuid.UUID, rec *clergyModel.ClergyModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, *rec)
	return nil
}
func (s *recordingStore) Delete(context.Context, uuid.UUID) error { return nil }
func (s *recordingStore) GetSettings(context.Context) (*orgModel.AosInfoModel, error) {
	return nil, nil
}
func (s *recordingStore) SetSettings(context.Context, *orgModel.AosInfoModel) error { return nil }

func (s *recordingStore) updateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.updates)
}

type draftEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		ClergyID  string `json:"clergy_id"`
		SaveState string `json:"save_state"`
	} `json:"data"`
}

func newDraftApp(store service.Store) (*fiber.App, *DraftController) {
	ctl := NewDraftController(store)
	app := fiber.New()
	app.Post("/clergy/:id/draft", ctl.Apply)
	app.Get("/clergy/:id/draft", ctl.State)
	app.Delete("/clergy/:id/draft", ctl.Close)
	return app, ctl
}

func draftPayload(name string) []byte {
	body, _ := sonic.Marshal(fiber.Map{
		"clergy_full_name": name,
		"clergy_role":      "Linh Mục Chánh Xứ",
		"clergy_category":  "GIAO_XU",
	})
	return body
}

func doDraft(t *testing.T, app *fiber.App, method, url string, body []byte) draftEnvelope {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env draftEnvelope
	require.NoError(t, sonic.Unmarshal(raw, &env))
	return env
}

func TestDraftFirstApplyDoesNotSave(t *testing.T) {
	store := &recordingStore{}
	app, _ := newDraftApp(store)
	id := uuid.New()

	// POST pertama = snapshot awal editor → state tetap saved, tanpa write
	env := doDraft(t, app, "POST", "/clergy/"+id.String()+"/draft", draftPayload("Phêrô Nguyễn Văn An"))
	assert.True(t, env.Success)
	assert.Equal(t, "saved", env.Data.SaveState)
	assert.Zero(t, store.updateCount())
}

func TestDraftSecondApplyDebouncesThenSaves(t *testing.T) {
	store := &recordingStore{}
	app, ctl := newDraftApp(store)
	id := uuid.New()

	doDraft(t, app, "POST", "/clergy/"+id.String()+"/draft", draftPayload("Phêrô Nguyễn Văn An"))

	// percepat debounce untuk test
	ctl.mu.Lock()
	ctl.sessions[id].SetDelay(20 * time.Millisecond)
	ctl.mu.Unlock()

	env := doDraft(t, app, "POST", "/clergy/"+id.String()+"/draft", draftPayload("Phêrô Nguyễn Văn An (sửa)"))
	assert.Equal(t, "saving", env.Data.SaveState)

	deadline := time.Now().Add(time.Second)
	for store.updateCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	require.Equal(t, 1, store.updateCount())
	assert.Equal(t, "Phêrô Nguyễn Văn An (sửa)", store.updates[0].ClergyFullName)

	env = doDraft(t, app, "GET", "/clergy/"+id.String()+"/draft", nil)
	assert.Equal(t, "saved", env.Data.SaveState)
}

func TestDraftStateIdleWithoutSession(t *testing.T) {
	store := &recordingStore{}
	app, _ := newDraftApp(store)

	env := doDraft(t, app, "GET", "/clergy/"+uuid.New().String()+"/draft", nil)
	assert.Equal(t, "idle", env.Data.SaveState)
}

func TestDraftCloseCancelsPendingSave(t *testing.T) {
	store := &recordingStore{}
	app, _ := newDraftApp(store)
	id := uuid.New()

	doDraft(t, app, "POST", "/clergy/"+id.String()+"/draft", draftPayload("Phêrô Nguyễn Văn An"))
	doDraft(t, app, "POST", "/clergy/"+id.String()+"/draft", draftPayload("Belum Sempat Tersimpan"))

	// editor ditutup saat timer debounce masih pending
	doDraft(t, app, "DELETE", "/clergy/"+id.String()+"/draft", nil)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, store.updateCount())

	// sesi sudah dibuang → state balik ke idle
	env := doDraft(t, app, "GET", "/clergy/"+id.String()+"/draft", nil)
	assert.Equal(t, "idle", env.Data.SaveState)
}

func TestDraftRejectsBadID(t *testing.T) {
	store := &recordingStore{}
	app, _ := newDraftApp(store)

	req := httptest.NewRequest("POST", "/clergy/bukan-uuid/draft", bytes.NewReader(draftPayload("X")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
