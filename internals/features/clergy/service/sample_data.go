package service

import (
	"aos_backend/internals/constants"
	clergyModel "aos_backend/internals/features/clergy/model"
)

// SampleClergy: dataset fallback saat subscription error, supaya UI tetap
// terisi. Tanpa ID (zero UUID) → display-only, tidak bisa dimutasi.
func SampleClergy() []clergyModel.ClergyModel {
	a := clergyModel.ClergyModel{
		ClergyFullName:        "Phêrô Nguyễn Văn A",
		ClergyImageURL:        "https://picsum.photos/200",
		ClergyProfileLink:     "https://example.com/cha-a",
		ClergyRole:            "Linh Mục",
		ClergyCurrentLocation: "Giáo xứ Chính Tòa",
		ClergyOrdinationDate:  "2010-06-29",
		ClergyBirthDate:       "1980-05-15",
		ClergyPatronSaint:     "Thánh Phêrô",
		ClergyTenure:          "2018 - Nay",
		ClergyCategory:        constants.CategoryGiaoXu,
		ClergyStatus:          constants.StatusDangMucVu,
	}
	a.SetTimeline([]clergyModel.TimelineEvent{
		{Year: "2010-2014", Description: "Phó xứ Giáo xứ A"},
		{Year: "2014-2018", Description: "Du học Roma"},
	})

	b := clergyModel.ClergyModel{
		ClergyFullName:        "Giuse Trần Văn B",
		ClergyImageURL:        "https://picsum.photos/201",
		ClergyProfileLink:     "https://example.com/cha-b",
		ClergyRole:            "Giám mục",
		ClergyCurrentLocation: "Đại Chủng Viện",
		ClergyOrdinationDate:  "2005-06-29",
		ClergyBirthDate:       "1975-12-20",
		ClergyPatronSaint:     "Thánh Giuse",
		ClergyTenure:          "2015 - Nay",
		ClergyCategory:        constants.CategoryTGMDCV,
		ClergyStatus:          constants.StatusDangMucVu,
	}
	b.SetTimeline([]clergyModel.TimelineEvent{
		{Year: "2005-2010", Description: "Phó xứ Giáo xứ B"},
	})

	return []clergyModel.ClergyModel{a, b}
}
