package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	clergyModel "aos_backend/internals/features/clergy/model"
)

// SaveState: indikator siklus autosave pada sesi edit.
type SaveState string

const (
	SaveStateIdle   SaveState = "idle"
	SaveStateSaving SaveState = "saving"
	SaveStateSaved  SaveState = "saved"
	SaveStateError  SaveState = "error"
)

// DefaultAutosaveDelay: debounce trailing-edge 1.5 detik.
const DefaultAutosaveDelay = 1500 * time.Millisecond

// EditorSession: state machine autosave untuk SATU record dalam mode edit.
// Mode add tidak lewat sini (create eksplisit via Store.Create).
//
// Siklus: Apply pertama = snapshot awal form (diabaikan, armed). Apply
// berikutnya → state saving + reset timer debounce; edit beruntun dalam
// window coalesce jadi satu write berisi state terakhir. Timer fire →
// Store.Update; sukses → saved, gagal → error (ditelan, cuma indikator).
// Close membatalkan timer; tidak ada write setelah teardown.
type EditorSession struct {
	mu    sync.Mutex
	store Store
	id    uuid.UUID
	draft clergyModel.ClergyModel
	state SaveState
	timer *time.Timer
	delay time.Duration
	armed bool
	close bool
}

func NewEditorSession(store Store, record clergyModel.ClergyModel) *EditorSession {
	return &EditorSession{
		store: store,
		id:    record.ClergyID,
		draft: record,
		state: SaveStateSaved,
		delay: DefaultAutosaveDelay,
		armed: true,
	}
}

// SetDelay mengganti delay debounce (dipakai test). Panggil sebelum Apply.
func (s *EditorSession) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Apply menerima snapshot penuh form. Working copy milik sesi ini sendiri;
// mirror roster tidak pernah disentuh langsung.
func (s *EditorSession) Apply(draft clergyModel.ClergyModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.close {
		return
	}
	draft.ClergyID = s.id
	s.draft = draft

	if s.armed {
		// snapshot awal saat editor dibuka — jangan trigger save
		s.armed = false
		return
	}

	s.state = SaveStateSaving
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.flush)
}

// flush: trailing edge debounce — hanya state terakhir yang ditulis.
func (s *EditorSession) flush() {
	s.mu.Lock()
	if s.close {
		s.mu.Unlock()
		return
	}
	id := s.id
	draft := s.draft
	s.mu.Unlock()

	err := s.store.Update(context.Background(), id, &draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.close {
		return
	}
	if err != nil {
		// autosave gagal TIDAK memunculkan alert — cukup indikator
		log.Printf("[ERROR] autosave %s gagal: %v", id, err)
		s.state = SaveStateError
		return
	}
	s.state = SaveStateSaved
}

func (s *EditorSession) State() SaveState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *EditorSession) Draft() clergyModel.ClergyModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *EditorSession) RecordID() uuid.UUID {
	return s.id
}

// Close invalidasi timer yang pending; write yang belum fire dibatalkan.
func (s *EditorSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.close = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
