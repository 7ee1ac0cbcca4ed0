package service

import (
	"context"
	"log"

	clergyService "aos_backend/internals/features/clergy/service"
	orgModel "aos_backend/internals/features/organization/model"
)

// DefaultAosInfo: konten bawaan halaman thông tin AoS, dipakai saat settings
// singleton belum pernah ditulis (atau store tidak terjangkau).
func DefaultAosInfo() *orgModel.AosInfoModel {
	info := &orgModel.AosInfoModel{
		AosInfoKey: orgModel.AosInfoKey,
		AosInfoIntroduction: "AOS là cộng đồng truyền giáo qua nền tảng game Roblox, nơi đức tin " +
			"Công giáo được gieo mầm giữa không gian sáng tạo và kết nối của giới trẻ. " +
			"Qua các hoạt động trong game, sinh hoạt cộng đồng và tinh thần bác ái, AOS mong muốn " +
			"mang Tin Mừng đến gần hơn với mọi người bằng ngôn ngữ của thời đại số.\n" +
			"Cộng đồng chọn chân phước Carlo Acutis làm thánh bổn mạng – người trẻ đã dùng công nghệ " +
			"và internet để loan báo đức tin. Noi gương ngài, AOS khao khát trở thành một môi trường " +
			"lành mạnh, yêu thương và đầy hy vọng, nơi mỗi người có thể vừa chơi game, vừa lớn lên " +
			"trong đức tin và tình huynh đệ.",
	}
	info.SetDocuments([]orgModel.AosDocument{
		{ID: 1, Title: "Quy chế Hoạt động AoS 2024", Type: "PDF", Size: "2.5 MB", URL: "#"},
		{ID: 2, Title: "Mẫu đơn xin gia nhập", Type: "DOCX", Size: "500 KB", URL: "#"},
		{ID: 3, Title: "Lịch Phụng vụ & Sự kiện 2026", Type: "XLSX", Size: "1.2 MB", URL: "#"},
		{ID: 4, Title: "Hướng dẫn Mục vụ Di dân", Type: "PDF", Size: "3.0 MB", URL: "#"},
	})
	info.SetSocial(orgModel.SocialLinks{Facebook: "#", Website: "#", Youtube: "#"})
	return info
}

// AosInfoService baca/tulis settings singleton lewat gateway store.
type AosInfoService struct {
	store clergyService.Store
}

func NewAosInfoService(store clergyService.Store) *AosInfoService {
	return &AosInfoService{store: store}
}

// Get: data tersimpan di-merge di atas default — field kosong (termasuk
// social link per-key) diisi dari default supaya respons selalu lengkap.
func (s *AosInfoService) Get(ctx context.Context) (*orgModel.AosInfoModel, error) {
	def := DefaultAosInfo()

	stored, err := s.store.GetSettings(ctx)
	if err != nil {
		// jalur baca tidak fatal: degradasi ke default
		log.Printf("[WARN] get aos info gagal: %v — pakai default", err)
		return def, nil
	}
	if stored == nil {
		return def, nil
	}

	merged := *stored
	if merged.AosInfoIntroduction == "" {
		merged.AosInfoIntroduction = def.AosInfoIntroduction
	}
	if len(merged.Documents()) == 0 {
		merged.AosInfoDocuments = def.AosInfoDocuments
	}
	social := merged.Social()
	defSocial := def.Social()
	if social.Facebook == "" {
		social.Facebook = defSocial.Facebook
	}
	if social.Website == "" {
		social.Website = defSocial.Website
	}
	if social.Youtube == "" {
		social.Youtube = defSocial.Youtube
	}
	merged.SetSocial(social)

	return &merged, nil
}

// Save: upsert (buat kalau belum ada, replace kalau sudah).
func (s *AosInfoService) Save(ctx context.Context, info *orgModel.AosInfoModel) error {
	return s.store.SetSettings(ctx, info)
}
