package service

import (
	"strings"

	"aos_backend/internals/constants"
	clergyModel "aos_backend/internals/features/clergy/model"
)

// Filter engine: murni, sinkron, tanpa state. Inklusi = search AND role AND
// category. Urutan hasil = subsequence urutan roster (tidak di-sort ulang).

// MatchesSearch: substring case-insensitive pada nama ATAU nơi mục vụ.
func MatchesSearch(rec *clergyModel.ClergyModel, term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(rec.ClergyFullName), t) ||
		strings.Contains(strings.ToLower(rec.ClergyCurrentLocation), t)
}

// MatchesRole: token "ALL"/kosong → lolos; token ber-delimiter "|" →
// membership di set hasil split; selain itu exact equality.
func MatchesRole(rec *clergyModel.ClergyModel, token string) bool {
	if token == "" || token == constants.RoleFilterAll {
		return true
	}
	if strings.Contains(token, constants.RoleGroupDelimiter) {
		for _, role := range strings.Split(token, constants.RoleGroupDelimiter) {
			if rec.ClergyRole == role {
				return true
			}
		}
		return false
	}
	return rec.ClergyRole == token
}

// MatchesCategory: exact equality atau sentinel "ALL"/kosong.
func MatchesCategory(rec *clergyModel.ClergyModel, token string) bool {
	if token == "" || token == constants.CategoryAll {
		return true
	}
	return rec.ClergyCategory == token
}

// FilterRoster menerapkan ketiga predikat, stabil terhadap urutan input.
func FilterRoster(records []clergyModel.ClergyModel, search, role, category string) []clergyModel.ClergyModel {
	out := make([]clergyModel.ClergyModel, 0, len(records))
	for i := range records {
		rec := &records[i]
		if MatchesSearch(rec, search) && MatchesRole(rec, role) && MatchesCategory(rec, category) {
			out = append(out, records[i])
		}
	}
	return out
}
