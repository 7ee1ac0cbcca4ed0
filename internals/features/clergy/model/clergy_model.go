package model

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimelineEvent: satu baris riwayat mục vụ (tahun + keterangan).
// Urutan insert dipertahankan, boleh duplikat.
type TimelineEvent struct {
	Year        string `json:"year"`
	Description string `json:"description"`
}

type ClergyModel struct {
	ClergyID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"clergy_id"`
	ClergyFullName        string         `gorm:"type:varchar(150);not null" json:"clergy_full_name"`
	ClergyImageURL        string         `gorm:"type:text" json:"clergy_image_url"`
	ClergyProfileLink     string         `gorm:"type:text" json:"clergy_profile_link"`
	ClergyRole            string         `gorm:"type:varchar(80);not null" json:"clergy_role"`
	ClergyCurrentLocation string         `gorm:"type:text" json:"clergy_current_location"`
	ClergyOrdinationDate  string         `gorm:"type:varchar(20)" json:"clergy_ordination_date"`
	ClergyBirthDate       string         `gorm:"type:varchar(20)" json:"clergy_birth_date"`
	ClergyPatronSaint     string         `gorm:"type:varchar(100)" json:"clergy_patron_saint"`
	ClergyTenure          string         `gorm:"type:varchar(50)" json:"clergy_tenure"`
	ClergyCategory        string         `gorm:"type:varchar(20);not null;default:'GIAO_XU'" json:"clergy_category"`
	ClergyStatus          string         `gorm:"type:varchar(20);not null;default:'DANG_MUC_VU'" json:"clergy_status"`
	ClergyTimeline        datatypes.JSON `gorm:"type:jsonb" json:"clergy_timeline"`
	ClergyCreatedAt       time.Time      `gorm:"autoCreateTime" json:"clergy_created_at"`
	ClergyUpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"clergy_updated_at"`
}

func (ClergyModel) TableName() string {
	return "clergies"
}

// IsPersisted: record tanpa ID (zero UUID) hanya tampilan (data mẫu),
// tidak boleh di-update/delete/ganti status.
func (m *ClergyModel) IsPersisted() bool {
	return m.ClergyID != uuid.Nil
}

// Timeline decode dari kolom jsonb; jsonb kosong/invalid → slice kosong.
func (m *ClergyModel) Timeline() []TimelineEvent {
	if len(m.ClergyTimeline) == 0 {
		return []TimelineEvent{}
	}
	var events []TimelineEvent
	if err := sonic.Unmarshal(m.ClergyTimeline, &events); err != nil {
		return []TimelineEvent{}
	}
	return events
}

func (m *ClergyModel) SetTimeline(events []TimelineEvent) {
	if events == nil {
		events = []TimelineEvent{}
	}
	raw, err := sonic.Marshal(events)
	if err != nil {
		return
	}
	m.ClergyTimeline = datatypes.JSON(raw)
}
