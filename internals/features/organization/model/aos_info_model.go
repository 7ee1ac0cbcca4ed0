package model

import (
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

// AosInfoKey: id dokumen settings tunggal (upsert, bukan insert baru).
const AosInfoKey = "aos_info"

// AosDocument: satu dokumen unduhan di halaman thông tin AoS.
type AosDocument struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"` // PDF | DOCX | XLSX
	Size  string `json:"size"`
	URL   string `json:"url"`
}

type SocialLinks struct {
	Facebook string `json:"facebook"`
	Website  string `json:"website"`
	Youtube  string `json:"youtube"`
}

type AosInfoModel struct {
	AosInfoKey          string         `gorm:"type:varchar(32);primaryKey" json:"aos_info_key"`
	AosInfoIntroduction string         `gorm:"type:text" json:"aos_info_introduction"`
	AosInfoDocuments    datatypes.JSON `gorm:"type:jsonb" json:"aos_info_documents"`
	AosInfoSocialLinks  datatypes.JSON `gorm:"type:jsonb" json:"aos_info_social_links"`
	AosInfoUpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"aos_info_updated_at"`
}

func (AosInfoModel) TableName() string {
	return "aos_info"
}

func (m *AosInfoModel) Documents() []AosDocument {
	if len(m.AosInfoDocuments) == 0 {
		return []AosDocument{}
	}
	var docs []AosDocument
	if err := sonic.Unmarshal(m.AosInfoDocuments, &docs); err != nil {
		return []AosDocument{}
	}
	return docs
}

func (m *AosInfoModel) SetDocuments(docs []AosDocument) {
	if docs == nil {
		docs = []AosDocument{}
	}
	raw, err := sonic.Marshal(docs)
	if err != nil {
		return
	}
	m.AosInfoDocuments = datatypes.JSON(raw)
}

func (m *AosInfoModel) Social() SocialLinks {
	var links SocialLinks
	if len(m.AosInfoSocialLinks) > 0 {
		_ = sonic.Unmarshal(m.AosInfoSocialLinks, &links)
	}
	return links
}

func (m *AosInfoModel) SetSocial(links SocialLinks) {
	raw, err := sonic.Marshal(links)
	if err != nil {
		return
	}
	m.AosInfoSocialLinks = datatypes.JSON(raw)
}
