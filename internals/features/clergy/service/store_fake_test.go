package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	clergyModel "aos_backend/internals/features/clergy/model"
	orgModel "aos_backend/internals/features/organization/model"
)

// fakeStore: implementasi Store in-memory untuk test. Callback subscription
// dipegang supaya test bisa mendorong snapshot/error secara manual.
type fakeStore struct {
	mu         sync.Mutex
	configured bool

	onSnapshot func([]clergyModel.ClergyModel)
	onError    func(error)
	unsubbed   bool

	creates []clergyModel.ClergyModel
	updates []clergyModel.ClergyModel
	deletes []uuid.UUID

	updateErr error
	deleteErr error

	settings    *orgModel.AosInfoModel
	settingsErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{configured: true}
}

func (f *fakeStore) Configured() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.configured
}

func (f *fakeStore) Subscribe(onSnapshot func([]clergyModel.ClergyModel), onError func(error)) Unsubscribe {
	f.mu.Lock()
	f.onSnapshot = onSnapshot
	f.onError = onError
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.unsubbed = true
		f.onSnapshot = nil
		f.onError = nil
		f.mu.Unlock()
	}
}

// pushSnapshot mengirim snapshot ke subscriber aktif (kalau ada).
func (f *fakeStore) pushSnapshot(records []clergyModel.ClergyModel) {
	f.mu.Lock()
	cb := f.onSnapshot
	f.mu.Unlock()
	if cb != nil {
		cb(records)
	}
}

func (f *fakeStore) pushError(err error) {
	f.mu.Lock()
	cb := f.onError
	f.mu.Unlock()
	if cb != nil {
		cb(err)
	}
}

func (f *fakeStore) Create(ctx context.Context, rec *clergyModel.ClergyModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.configured {
		return ErrNotConfigured
	}
	if rec.ClergyID == uuid.Nil {
		rec.ClergyID = uuid.New()
	}
	f.creates = append(f.creates, *rec)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, id uuid.UUID, rec *clergyModel.ClergyModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.configured {
		return ErrNotConfigured
	}
	if id == uuid.Nil {
		return ErrMissingID
	}
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, *rec)
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.configured {
		return ErrNotConfigured
	}
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeStore) GetSettings(ctx context.Context) (*orgModel.AosInfoModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settingsErr != nil {
		return nil, f.settingsErr
	}
	return f.settings, nil
}

func (f *fakeStore) SetSettings(ctx context.Context, info *orgModel.AosInfoModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.configured {
		return ErrNotConfigured
	}
	f.settings = info
	return nil
}

func (f *fakeStore) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

func (f *fakeStore) lastUpdate() (clergyModel.ClergyModel, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.updates) == 0 {
		return clergyModel.ClergyModel{}, false
	}
	return f.updates[len(f.updates)-1], true
}
