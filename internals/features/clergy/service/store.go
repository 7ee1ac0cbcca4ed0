package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	clergyModel "aos_backend/internals/features/clergy/model"
	orgModel "aos_backend/internals/features/organization/model"
)

var (
	// ErrNotConfigured: store belum terhubung/terkonfigurasi. Semua operasi
	// tulis diblokir; jalur baca degradasi ke data mẫu.
	ErrNotConfigured = errors.New("store not configured")

	// ErrMissingID: mutasi pada record yang belum pernah disimpan.
	// Ditolak sebelum ada kontak ke store.
	ErrMissingID = errors.New("missing document id")

	// ErrPermissionDenied: store menolak operasi (khusus delete, pesannya
	// dibedakan dari kegagalan generik).
	ErrPermissionDenied = errors.New("permission denied")

	ErrRecordNotFound = errors.New("record not found")
)

// Unsubscribe melepas satu langganan snapshot. Setelah dipanggil tidak ada
// callback lagi.
type Unsubscribe func()

// Store: gateway ke document store giáo sĩ + settings singleton.
// Subscribe mengirim snapshot penuh (bukan delta) setiap kali koleksi berubah.
type Store interface {
	Configured() bool
	Subscribe(onSnapshot func([]clergyModel.ClergyModel), onError func(error)) Unsubscribe
	Create(ctx context.Context, rec *clergyModel.ClergyModel) error
	Update(ctx context.Context, id uuid.UUID, rec *clergyModel.ClergyModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetSettings(ctx context.Context) (*orgModel.AosInfoModel, error)
	SetSettings(ctx context.Context, info *orgModel.AosInfoModel) error
}
