package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aos_backend/internals/constants"
	clergyModel "aos_backend/internals/features/clergy/model"
	orgModel "aos_backend/internals/features/organization/model"
)

// DefaultPollInterval: jarak polling untuk menangkap perubahan dari writer
// lain (di luar proses ini). Mutasi lokal langsung broadcast tanpa menunggu.
const DefaultPollInterval = 5 * time.Second

// GormStore: implementasi Store di atas PostgreSQL (GORM).
// Live subscription diemulasi: setiap mutasi sukses → re-query koleksi penuh
// → publish ke semua subscriber, plus poll ticker untuk perubahan eksternal.
type GormStore struct {
	db  *gorm.DB
	hub *snapshotHub

	pollInterval time.Duration
	stopPoll     chan struct{}
	pollOnce     sync.Once
	stopOnce     sync.Once
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:           db,
		hub:          newSnapshotHub(),
		pollInterval: DefaultPollInterval,
		stopPoll:     make(chan struct{}),
	}
}

func (s *GormStore) Configured() bool {
	return s.db != nil
}

// StartPolling menjalankan ticker broadcast. Idempotent.
func (s *GormStore) StartPolling() {
	if !s.Configured() {
		return
	}
	s.pollOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(s.pollInterval)
			defer ticker.Stop()
			for {
				select {
				case <-s.stopPoll:
					return
				case <-ticker.C:
					s.broadcast()
				}
			}
		}()
	})
}

func (s *GormStore) StopPolling() {
	s.stopOnce.Do(func() { close(s.stopPoll) })
}

func (s *GormStore) loadSnapshot() ([]clergyModel.ClergyModel, error) {
	var records []clergyModel.ClergyModel
	err := s.db.
		Order("clergy_created_at ASC, clergy_id ASC").
		Find(&records).Error
	return records, err
}

// broadcast kirim snapshot terbaru (atau error query) ke semua subscriber.
func (s *GormStore) broadcast() {
	records, err := s.loadSnapshot()
	if err != nil {
		log.Printf("[ERROR] broadcast snapshot gagal: %v", err)
		s.hub.publish(snapshotMessage{err: err})
		return
	}
	s.hub.publish(snapshotMessage{records: records})
}

func (s *GormStore) Subscribe(
	onSnapshot func([]clergyModel.ClergyModel),
	onError func(error),
) Unsubscribe {
	if !s.Configured() {
		// tiru perilaku client firestore: error langsung, unsubscribe no-op
		return s.hub.subscribe(onSnapshot, onError, &snapshotMessage{err: ErrNotConfigured})
	}
	records, err := s.loadSnapshot()
	initial := &snapshotMessage{records: records, err: err}
	return s.hub.subscribe(onSnapshot, onError, initial)
}

func (s *GormStore) Create(ctx context.Context, rec *clergyModel.ClergyModel) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	// ID di-assign oleh store, bukan dari caller
	rec.ClergyID = uuid.New()
	if rec.ClergyStatus == "" {
		rec.ClergyStatus = constants.DefaultStatus
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	go s.broadcast()
	return nil
}

func (s *GormStore) Update(ctx context.Context, id uuid.UUID, rec *clergyModel.ClergyModel) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if id == uuid.Nil {
		return ErrMissingID
	}
	rec.ClergyID = id
	// full-record replace, bukan partial patch
	tx := s.db.WithContext(ctx).
		Model(&clergyModel.ClergyModel{}).
		Where("clergy_id = ?", id).
		Select("*").
		Omit("clergy_id", "clergy_created_at").
		Updates(rec)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	go s.broadcast()
	return nil
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if id == uuid.Nil {
		return ErrMissingID
	}
	tx := s.db.WithContext(ctx).
		Where("clergy_id = ?", id).
		Delete(&clergyModel.ClergyModel{})
	if tx.Error != nil {
		if isPermissionDenied(tx.Error) {
			return ErrPermissionDenied
		}
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	go s.broadcast()
	return nil
}

// isPermissionDenied: klasifikasi error otorisasi dari Postgres
// (42501 insufficient_privilege / RLS).
func isPermissionDenied(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "42501") ||
		strings.Contains(msg, "row-level security")
}

// =======================
// SETTINGS SINGLETON
// =======================

func (s *GormStore) GetSettings(ctx context.Context) (*orgModel.AosInfoModel, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	var info orgModel.AosInfoModel
	err := s.db.WithContext(ctx).
		First(&info, "aos_info_key = ?", orgModel.AosInfoKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *GormStore) SetSettings(ctx context.Context, info *orgModel.AosInfoModel) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	info.AosInfoKey = orgModel.AosInfoKey
	// upsert: buat kalau belum ada, replace kalau sudah
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "aos_info_key"}},
			UpdateAll: true,
		}).
		Create(info).Error
}
