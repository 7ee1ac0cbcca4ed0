package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RoleGroupModel: preset filter yang menggabungkan beberapa role jadi satu
// pilihan toolbar (misal "Giám Mục" → 3 role uskup).
type RoleGroupModel struct {
	RoleGroupID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"role_group_id"`
	RoleGroupLabel     string         `gorm:"type:varchar(80);uniqueIndex;not null" json:"role_group_label"`
	RoleGroupRoles     pq.StringArray `gorm:"type:text[];not null" json:"role_group_roles"`
	RoleGroupSortOrder int            `gorm:"not null;default:0" json:"role_group_sort_order"`
	RoleGroupCreatedAt time.Time      `gorm:"autoCreateTime" json:"role_group_created_at"`
}

func (RoleGroupModel) TableName() string {
	return "clergy_role_groups"
}

// FilterToken: bentuk token yang dipakai filter engine
// ("RoleA|RoleB|RoleC", atau role tunggal tanpa delimiter).
func (m *RoleGroupModel) FilterToken() string {
	return strings.Join(m.RoleGroupRoles, "|")
}
