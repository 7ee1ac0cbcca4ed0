package constants

// =======================
// CATEGORY (Nơi mục vụ)
// =======================
// CategoryAll hanya dipakai sebagai filter sentinel, tidak pernah disimpan.
const (
	CategoryAll    = "ALL"
	CategoryTGMDCV = "TGM_DCV" // Tòa Giám Mục & Đại Chủng Viện
	CategoryGiaoXu = "GIAO_XU" // Giáo xứ
	CategoryDong   = "DONG"    // Dòng tu
	CategoryHuu    = "HUU"     // Hưu dưỡng
	CategoryQuaDoi = "QUA_DOI" // Qua đời
)

var CategoryOptions = []string{
	CategoryTGMDCV,
	CategoryGiaoXu,
	CategoryDong,
	CategoryHuu,
	CategoryQuaDoi,
}

func IsValidCategory(v string) bool {
	for _, c := range CategoryOptions {
		if v == c {
			return true
		}
	}
	return false
}

// =======================
// STATUS (Trạng thái mục vụ)
// =======================
const (
	StatusDangMucVu = "DANG_MUC_VU"
	StatusW1        = "W1"
	StatusW2        = "W2"
	StatusW3        = "W3"
	StatusTamHoan   = "TAM_HOAN"
	StatusVeHuu     = "VE_HUU"

	DefaultStatus = StatusDangMucVu
)

// StatusConfig membawa label tampilan + warna untuk tiap status.
type StatusConfig struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Urutan tetap: dari aktif ke tidak aktif.
var StatusConfigs = []StatusConfig{
	{Key: StatusDangMucVu, Label: "Đang Mục Vụ", Color: "green"},
	{Key: StatusW1, Label: "W1", Color: "yellow"},
	{Key: StatusW2, Label: "W2", Color: "red-light"},
	{Key: StatusW3, Label: "W3", Color: "red"},
	{Key: StatusTamHoan, Label: "Tạm hoãn mục vụ", Color: "red-dark"},
	{Key: StatusVeHuu, Label: "Về hưu", Color: "gray"},
}

func IsValidStatus(v string) bool {
	for _, s := range StatusConfigs {
		if v == s.Key {
			return true
		}
	}
	return false
}

// GetStatusConfig fallback ke DANG_MUC_VU kalau status tidak dikenal.
func GetStatusConfig(status string) StatusConfig {
	for _, s := range StatusConfigs {
		if status == s.Key {
			return s
		}
	}
	return StatusConfigs[0]
}

// =======================
// ROLE (Sứ vụ)
// =======================
// Role disimpan sebagai string bebas; daftar ini hanya pilihan pada form.
var RoleOptions = []string{
	"Tổng Giám Mục",
	"Phó Tổng Giám Mục",
	"Giám Mục Phụ Tá",
	"Linh Mục Chánh Xứ",
	"Linh Mục Phó Xứ",
	"Linh Mục Dòng",
	"Linh Mục Tòa",
	"Phó tế",
	"Về Hưu",
}

// RoleFilterAll: sentinel "tanpa filter" untuk token role.
const RoleFilterAll = "ALL"

// RoleGroupDelimiter memisahkan beberapa role dalam satu token filter
// (misal "Tổng Giám Mục|Phó Tổng Giám Mục|Giám Mục Phụ Tá").
const RoleGroupDelimiter = "|"
