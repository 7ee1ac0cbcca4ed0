package dto

import (
	"strings"

	"aos_backend/internals/constants"
	clergyModel "aos_backend/internals/features/clergy/model"
)

/* =========================================================
   REQUEST DTO — CREATE / UPDATE / DRAFT (writable fields)
   Catatan:
   - id TIDAK diterima dari client (di-assign store saat create)
   - status opsional; kosong → DANG_MUC_VU
========================================================= */

type TimelineEventRequest struct {
	Year        string `json:"year"`
	Description string `json:"description"`
}

type ClergyRequest struct {
	ClergyFullName        string `json:"clergy_full_name" validate:"required,max=150"`
	ClergyImageURL        string `json:"clergy_image_url" validate:"omitempty,url"`
	ClergyProfileLink     string `json:"clergy_profile_link" validate:"omitempty,url"`
	ClergyRole            string `json:"clergy_role" validate:"required,max=80"`
	ClergyCurrentLocation string `json:"clergy_current_location" validate:"max=200"`
	ClergyOrdinationDate  string `json:"clergy_ordination_date" validate:"omitempty,datetime=2006-01-02"`
	ClergyBirthDate       string `json:"clergy_birth_date" validate:"omitempty,datetime=2006-01-02"`
	ClergyPatronSaint     string `json:"clergy_patron_saint" validate:"max=100"`
	ClergyTenure          string `json:"clergy_tenure" validate:"max=50"`
	ClergyCategory        string `json:"clergy_category" validate:"required"`
	ClergyStatus          string `json:"clergy_status"`

	ClergyTimeline []TimelineEventRequest `json:"clergy_timeline"`
}

// Normalize trim field teks + default status/category.
func (r *ClergyRequest) Normalize() {
	r.ClergyFullName = strings.TrimSpace(r.ClergyFullName)
	r.ClergyRole = strings.TrimSpace(r.ClergyRole)
	r.ClergyCurrentLocation = strings.TrimSpace(r.ClergyCurrentLocation)
	r.ClergyPatronSaint = strings.TrimSpace(r.ClergyPatronSaint)
	r.ClergyTenure = strings.TrimSpace(r.ClergyTenure)
	if r.ClergyStatus == "" {
		r.ClergyStatus = constants.DefaultStatus
	}
}

// Validate aturan domain yang tidak tercover tag validator.
func (r *ClergyRequest) ValidateDomain() (string, bool) {
	if !constants.IsValidCategory(r.ClergyCategory) {
		return "clergy_category tidak dikenal: " + r.ClergyCategory, false
	}
	if !constants.IsValidStatus(r.ClergyStatus) {
		return "clergy_status tidak dikenal: " + r.ClergyStatus, false
	}
	return "", true
}

func (r *ClergyRequest) ToModel() clergyModel.ClergyModel {
	m := clergyModel.ClergyModel{
		ClergyFullName:        r.ClergyFullName,
		ClergyImageURL:        r.ClergyImageURL,
		ClergyProfileLink:     r.ClergyProfileLink,
		ClergyRole:            r.ClergyRole,
		ClergyCurrentLocation: r.ClergyCurrentLocation,
		ClergyOrdinationDate:  r.ClergyOrdinationDate,
		ClergyBirthDate:       r.ClergyBirthDate,
		ClergyPatronSaint:     r.ClergyPatronSaint,
		ClergyTenure:          r.ClergyTenure,
		ClergyCategory:        r.ClergyCategory,
		ClergyStatus:          r.ClergyStatus,
	}
	events := make([]clergyModel.TimelineEvent, 0, len(r.ClergyTimeline))
	for _, e := range r.ClergyTimeline {
		events = append(events, clergyModel.TimelineEvent{
			Year:        e.Year,
			Description: e.Description,
		})
	}
	m.SetTimeline(events)
	return m
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ClergyResponse struct {
	ClergyID              string                      `json:"clergy_id,omitempty"`
	ClergyFullName        string                      `json:"clergy_full_name"`
	ClergyImageURL        string                      `json:"clergy_image_url"`
	ClergyProfileLink     string                      `json:"clergy_profile_link"`
	ClergyRole            string                      `json:"clergy_role"`
	ClergyCurrentLocation string                      `json:"clergy_current_location"`
	ClergyOrdinationDate  string                      `json:"clergy_ordination_date"`
	ClergyBirthDate       string                      `json:"clergy_birth_date"`
	ClergyPatronSaint     string                      `json:"clergy_patron_saint"`
	ClergyTenure          string                      `json:"clergy_tenure"`
	ClergyCategory        string                      `json:"clergy_category"`
	ClergyStatus          string                      `json:"clergy_status"`
	ClergyStatusConfig    constants.StatusConfig      `json:"clergy_status_config"`
	ClergyTimeline        []clergyModel.TimelineEvent `json:"clergy_timeline"`
	// data mẫu (fallback) tidak punya ID → tidak bisa dimutasi dari client
	ClergyIsSample bool `json:"clergy_is_sample"`
}

func FromModel(m *clergyModel.ClergyModel) ClergyResponse {
	resp := ClergyResponse{
		ClergyFullName:        m.ClergyFullName,
		ClergyImageURL:        m.ClergyImageURL,
		ClergyProfileLink:     m.ClergyProfileLink,
		ClergyRole:            m.ClergyRole,
		ClergyCurrentLocation: m.ClergyCurrentLocation,
		ClergyOrdinationDate:  m.ClergyOrdinationDate,
		ClergyBirthDate:       m.ClergyBirthDate,
		ClergyPatronSaint:     m.ClergyPatronSaint,
		ClergyTenure:          m.ClergyTenure,
		ClergyCategory:        m.ClergyCategory,
		ClergyStatus:          m.ClergyStatus,
		ClergyStatusConfig:    constants.GetStatusConfig(m.ClergyStatus),
		ClergyTimeline:        m.Timeline(),
		ClergyIsSample:        !m.IsPersisted(),
	}
	if m.IsPersisted() {
		resp.ClergyID = m.ClergyID.String()
	}
	return resp
}

func FromModels(models []clergyModel.ClergyModel) []ClergyResponse {
	out := make([]ClergyResponse, 0, len(models))
	for i := range models {
		out = append(out, FromModel(&models[i]))
	}
	return out
}

/* =========================================================
   STATUS & DRAFT
========================================================= */

type StatusUpdateRequest struct {
	ClergyStatus string `json:"clergy_status" validate:"required"`
}

type DraftStateResponse struct {
	ClergyID  string `json:"clergy_id"`
	SaveState string `json:"save_state"` // idle | saving | saved | error
}

type RoleGroupResponse struct {
	RoleGroupLabel string   `json:"role_group_label"`
	RoleGroupRoles []string `json:"role_group_roles"`
	// token siap pakai untuk query ?role= ("RoleA|RoleB")
	RoleGroupFilterToken string `json:"role_group_filter_token"`
}

func FromRoleGroup(m *clergyModel.RoleGroupModel) RoleGroupResponse {
	return RoleGroupResponse{
		RoleGroupLabel:       m.RoleGroupLabel,
		RoleGroupRoles:       []string(m.RoleGroupRoles),
		RoleGroupFilterToken: m.FilterToken(),
	}
}
