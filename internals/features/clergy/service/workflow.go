package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"aos_backend/internals/constants"
	clergyModel "aos_backend/internals/features/clergy/model"
)

// =======================
// STATUS TRANSITION WORKFLOW
// =======================

// StatusWorkflow: ganti trạng thái lewat modal, gated auth.
type StatusWorkflow struct {
	store    Store
	notifier Notifier
}

func NewStatusWorkflow(store Store, notifier Notifier) *StatusWorkflow {
	return &StatusWorkflow{store: store, notifier: notifier}
}

// Open menangkap record target + status sekarang sebagai seleksi awal.
// Tanpa auth affordance ini informational-only → tidak ada sesi.
func (w *StatusWorkflow) Open(record clergyModel.ClergyModel, authenticated bool) (*StatusChange, bool) {
	if !authenticated {
		return nil, false
	}
	selected := record.ClergyStatus
	if selected == "" {
		selected = constants.DefaultStatus
	}
	return &StatusChange{
		store:    w.store,
		notifier: w.notifier,
		record:   record,
		selected: selected,
	}, true
}

// StatusChange: satu sesi modal ganti status.
type StatusChange struct {
	store    Store
	notifier Notifier
	record   clergyModel.ClergyModel
	selected string
}

func (sc *StatusChange) Select(status string) {
	sc.selected = status
}

func (sc *StatusChange) Selected() string {
	return sc.selected
}

// Confirm: read-modify-write seluruh record dengan status baru.
// Record data mẫu (tanpa ID) ditolak sebelum kontak ke store.
func (sc *StatusChange) Confirm(ctx context.Context) error {
	if !sc.record.IsPersisted() {
		sc.notifier.Notify(Notice{
			Type:    NoticeError,
			Message: "Không thể cập nhật trạng thái của dữ liệu mẫu",
		})
		return ErrMissingID
	}
	if !constants.IsValidStatus(sc.selected) {
		sc.notifier.Notify(Notice{
			Type:    NoticeError,
			Message: fmt.Sprintf("Trạng thái không hợp lệ: %s", sc.selected),
		})
		return fmt.Errorf("invalid status %q", sc.selected)
	}

	updated := sc.record
	updated.ClergyStatus = sc.selected
	if err := sc.store.Update(ctx, sc.record.ClergyID, &updated); err != nil {
		sc.notifier.Notify(Notice{
			Type:    NoticeError,
			Message: fmt.Sprintf("Lỗi khi cập nhật trạng thái: %s", err.Error()),
		})
		return err
	}

	sc.notifier.Notify(Notice{
		Type:    NoticeSuccess,
		Message: "Cập nhật trạng thái thành công!",
	})
	return nil
}

// Cancel buang seleksi pending, tanpa efek samping.
func (sc *StatusChange) Cancel() {}

// =======================
// DELETION WORKFLOW
// =======================

// DeleteWorkflow: dua precondition client-side sebelum modal konfirmasi
// muncul; konfirmasi baru memanggil store.
type DeleteWorkflow struct {
	mu       sync.Mutex
	store    Store
	notifier Notifier
	pending  *uuid.UUID
}

func NewDeleteWorkflow(store Store, notifier Notifier) *DeleteWorkflow {
	return &DeleteWorkflow{store: store, notifier: notifier}
}

// Request cek precondition. true = lanjut ke konfirmasi.
func (w *DeleteWorkflow) Request(id uuid.UUID) bool {
	if id == uuid.Nil {
		w.notifier.Notify(Notice{
			Type:    NoticeWarning,
			Message: "Đây là dữ liệu mẫu (Mock Data).\nBạn không thể xóa dữ liệu này vì nó chỉ hiển thị tạm thời.",
		})
		return false
	}
	if !w.store.Configured() {
		w.notifier.Notify(Notice{
			Type:    NoticeError,
			Message: "Lỗi: Chưa kết nối cơ sở dữ liệu.\nVui lòng kiểm tra cấu hình.",
		})
		return false
	}

	w.mu.Lock()
	w.pending = &id
	w.mu.Unlock()
	return true
}

// Confirm eksekusi delete; pending dibersihkan di kedua jalur.
func (w *DeleteWorkflow) Confirm(ctx context.Context) error {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()
	if pending == nil {
		return nil
	}

	if err := w.store.Delete(ctx, *pending); err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			// permission-denied dibedakan dari kegagalan generik
			w.notifier.Notify(Notice{
				Type:    NoticeError,
				Message: "Lỗi: Bạn không có quyền xóa dữ liệu này.\nVui lòng kiểm tra quyền truy cập.",
			})
		} else {
			w.notifier.Notify(Notice{
				Type:    NoticeError,
				Message: fmt.Sprintf("Lỗi khi xóa: %s", err.Error()),
			})
		}
		return err
	}

	w.notifier.Notify(Notice{
		Type:    NoticeSuccess,
		Message: "Đã xóa giáo sĩ thành công!",
	})
	return nil
}

func (w *DeleteWorkflow) Cancel() {
	w.mu.Lock()
	w.pending = nil
	w.mu.Unlock()
}

// Pending: id yang menunggu konfirmasi (nil kalau tidak ada).
func (w *DeleteWorkflow) Pending() *uuid.UUID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending
}
