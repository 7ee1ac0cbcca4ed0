package service

import (
	"github.com/lib/pq"
	"gorm.io/gorm"

	clergyModel "aos_backend/internals/features/clergy/model"
)

// EnsureDefaultRoleGroups seed preset group filter bawaan (idempotent).
// "Giám Mục" menggabungkan tiga role uskup jadi satu pilihan toolbar.
func EnsureDefaultRoleGroups(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	defaults := []clergyModel.RoleGroupModel{
		{
			RoleGroupLabel: "Giám Mục",
			RoleGroupRoles: pq.StringArray{
				"Tổng Giám Mục",
				"Phó Tổng Giám Mục",
				"Giám Mục Phụ Tá",
			},
			RoleGroupSortOrder: 1,
		},
	}

	for i := range defaults {
		err := db.
			Where("role_group_label = ?", defaults[i].RoleGroupLabel).
			FirstOrCreate(&defaults[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}
