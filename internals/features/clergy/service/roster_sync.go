package service

import (
	"log"
	"sync"

	clergyModel "aos_backend/internals/features/clergy/model"
)

// RosterSync memegang mirror roster in-memory dari live subscription.
// Single-writer: hanya callback subscription yang mengganti mirror
// (full replace per snapshot). Komponen lain cuma baca.
type RosterSync struct {
	mu          sync.RWMutex
	store       Store
	records     []clergyModel.ClergyModel
	connected   bool
	started     bool
	unsubscribe Unsubscribe
}

func NewRosterSync(store Store) *RosterSync {
	return &RosterSync{store: store}
}

// Start membuka langganan. Persis satu langganan aktif per lifetime;
// panggilan kedua no-op.
func (r *RosterSync) Start() {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return
	}
	r.started = true
	r.mu.Unlock()

	r.unsubscribe = r.store.Subscribe(r.onSnapshot, r.onError)
}

// Stop melepas langganan. Setelah Stop tidak ada callback yang mengubah
// mirror lagi.
func (r *RosterSync) Stop() {
	r.mu.Lock()
	unsub := r.unsubscribe
	r.unsubscribe = nil
	r.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (r *RosterSync) onSnapshot(records []clergyModel.ClergyModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// full replace — snapshot kosong tetap valid (roster jadi kosong)
	r.records = records
	r.connected = true
}

// onError: terminal untuk sesi ini. Tidak ada reconnect; tampilkan data mẫu.
func (r *RosterSync) onError(err error) {
	log.Printf("[ERROR] roster subscription: %v — fallback ke data mẫu", err)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connected = false
	r.records = SampleClergy()
}

// Records mengembalikan salinan mirror (urutan roster dipertahankan).
func (r *RosterSync) Records() []clergyModel.ClergyModel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]clergyModel.ClergyModel, len(r.records))
	copy(out, r.records)
	return out
}

func (r *RosterSync) Connected() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.connected
}

// FindByID cari di mirror; ok=false kalau tidak ada.
func (r *RosterSync) FindByID(id string) (clergyModel.ClergyModel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ClergyID.String() == id {
			return rec, true
		}
	}
	return clergyModel.ClergyModel{}, false
}
