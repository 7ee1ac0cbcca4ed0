package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clergyModel "aos_backend/internals/features/clergy/model"
	clergyService "aos_backend/internals/features/clergy/service"
	orgModel "aos_backend/internals/features/organization/model"
)

// settingsStore: Store minimal untuk test service ini — cuma jalur settings
// yang hidup, sisanya no-op.
type settingsStore struct {
	stored *orgModel.AosInfoModel
	getErr error
	setErr error
}

func (s *settingsStore) Configured() bool { return true }
func (s *settingsStore) Subscribe(func([]clergyModel.ClergyModel), func(error)) clergyService.Unsubscribe {
	return func() {}
}
func (s *settingsStore) Create(context.Context, *clergyModel.ClergyModel) error { return nil }
func (s *settingsStore) Update(context.Context, uuid.UUID, *clergyModel.ClergyModel) error {
	return nil
}
func (s *settingsStore) Delete(context.Context, uuid.UUID) error { return nil }

func (s *settingsStore) GetSettings(ctx context.Context) (*orgModel.AosInfoModel, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.stored, nil
}

func (s *settingsStore) SetSettings(ctx context.Context, info *orgModel.AosInfoModel) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.stored = info
	return nil
}

func TestGetReturnsDefaultWhenAbsent(t *testing.T) {
	svc := NewAosInfoService(&settingsStore{})

	info, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, info)

	def := DefaultAosInfo()
	assert.Equal(t, def.AosInfoIntroduction, info.AosInfoIntroduction)
	assert.Len(t, info.Documents(), 4)
	assert.Equal(t, "#", info.Social().Facebook)
}

func TestGetDegradesToDefaultOnStoreError(t *testing.T) {
	svc := NewAosInfoService(&settingsStore{getErr: errors.New("koneksi putus")})

	// jalur baca tidak fatal
	info, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultAosInfo().AosInfoIntroduction, info.AosInfoIntroduction)
}

func TestGetMergesStoredOverDefault(t *testing.T) {
	stored := &orgModel.AosInfoModel{
		AosInfoKey:          orgModel.AosInfoKey,
		AosInfoIntroduction: "Giới thiệu tùy chỉnh",
	}
	stored.SetSocial(orgModel.SocialLinks{Facebook: "https://facebook.com/aos"})
	svc := NewAosInfoService(&settingsStore{stored: stored})

	info, err := svc.Get(context.Background())
	require.NoError(t, err)

	// field terisi menang atas default
	assert.Equal(t, "Giới thiệu tùy chỉnh", info.AosInfoIntroduction)
	assert.Equal(t, "https://facebook.com/aos", info.Social().Facebook)

	// field kosong diisi dari default (termasuk social per-key)
	assert.Len(t, info.Documents(), 4)
	assert.Equal(t, "#", info.Social().Website)
	assert.Equal(t, "#", info.Social().Youtube)
}

func TestSaveUpserts(t *testing.T) {
	store := &settingsStore{}
	svc := NewAosInfoService(store)

	info := DefaultAosInfo()
	info.AosInfoIntroduction = "Phiên bản mới"
	require.NoError(t, svc.Save(context.Background(), info))
	assert.Equal(t, "Phiên bản mới", store.stored.AosInfoIntroduction)

	// save kedua = replace
	info2 := DefaultAosInfo()
	info2.AosInfoIntroduction = "Phiên bản mới hơn"
	require.NoError(t, svc.Save(context.Background(), info2))
	assert.Equal(t, "Phiên bản mới hơn", store.stored.AosInfoIntroduction)
}

func TestSavePropagatesError(t *testing.T) {
	svc := NewAosInfoService(&settingsStore{setErr: clergyService.ErrNotConfigured})
	err := svc.Save(context.Background(), DefaultAosInfo())
	assert.ErrorIs(t, err, clergyService.ErrNotConfigured)
}
