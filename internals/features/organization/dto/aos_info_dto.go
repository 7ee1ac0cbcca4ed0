package dto

import (
	orgModel "aos_backend/internals/features/organization/model"
)

type AosDocumentRequest struct {
	ID    int    `json:"id"`
	Title string `json:"title" validate:"required,max=200"`
	Type  string `json:"type" validate:"required,oneof=PDF DOCX XLSX"`
	Size  string `json:"size" validate:"max=20"`
	URL   string `json:"url" validate:"required"`
}

type SocialLinksRequest struct {
	Facebook string `json:"facebook"`
	Website  string `json:"website"`
	Youtube  string `json:"youtube"`
}

type AosInfoRequest struct {
	Introduction string               `json:"introduction" validate:"required"`
	Documents    []AosDocumentRequest `json:"documents" validate:"dive"`
	SocialLinks  SocialLinksRequest   `json:"social_links"`
}

func (r *AosInfoRequest) ToModel() *orgModel.AosInfoModel {
	info := &orgModel.AosInfoModel{
		AosInfoKey:          orgModel.AosInfoKey,
		AosInfoIntroduction: r.Introduction,
	}
	docs := make([]orgModel.AosDocument, 0, len(r.Documents))
	for _, d := range r.Documents {
		docs = append(docs, orgModel.AosDocument{
			ID:    d.ID,
			Title: d.Title,
			Type:  d.Type,
			Size:  d.Size,
			URL:   d.URL,
		})
	}
	info.SetDocuments(docs)
	info.SetSocial(orgModel.SocialLinks{
		Facebook: r.SocialLinks.Facebook,
		Website:  r.SocialLinks.Website,
		Youtube:  r.SocialLinks.Youtube,
	})
	return info
}

type AosInfoResponse struct {
	Introduction string                 `json:"introduction"`
	Documents    []orgModel.AosDocument `json:"documents"`
	SocialLinks  orgModel.SocialLinks   `json:"social_links"`
	UpdatedAt    string                 `json:"updated_at,omitempty"`
}

func FromModel(m *orgModel.AosInfoModel) AosInfoResponse {
	resp := AosInfoResponse{
		Introduction: m.AosInfoIntroduction,
		Documents:    m.Documents(),
		SocialLinks:  m.Social(),
	}
	if !m.AosInfoUpdatedAt.IsZero() {
		resp.UpdatedAt = m.AosInfoUpdatedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}
