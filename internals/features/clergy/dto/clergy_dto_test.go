package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aos_backend/internals/constants"
	clergyModel "aos_backend/internals/features/clergy/model"
)

func validRequest() ClergyRequest {
	return ClergyRequest{
		ClergyFullName: "  Phêrô Nguyễn Văn An  ",
		ClergyRole:     "Linh Mục Chánh Xứ",
		ClergyCategory: constants.CategoryGiaoXu,
	}
}

func TestNormalizeTrimsAndDefaultsStatus(t *testing.T) {
	req := validRequest()
	req.Normalize()

	assert.Equal(t, "Phêrô Nguyễn Văn An", req.ClergyFullName)
	assert.Equal(t, constants.StatusDangMucVu, req.ClergyStatus)

	// status terisi tidak di-overwrite
	req2 := validRequest()
	req2.ClergyStatus = constants.StatusVeHuu
	req2.Normalize()
	assert.Equal(t, constants.StatusVeHuu, req2.ClergyStatus)
}

func TestValidateDomainRejectsUnknownTokens(t *testing.T) {
	req := validRequest()
	req.Normalize()
	_, ok := req.ValidateDomain()
	assert.True(t, ok)

	req.ClergyCategory = "PAROKI"
	msg, ok := req.ValidateDomain()
	assert.False(t, ok)
	assert.Contains(t, msg, "clergy_category")

	req.ClergyCategory = constants.CategoryGiaoXu
	req.ClergyStatus = "NGHI_PHEP"
	msg, ok = req.ValidateDomain()
	assert.False(t, ok)
	assert.Contains(t, msg, "clergy_status")
}

func TestToModelCarriesTimeline(t *testing.T) {
	req := validRequest()
	req.Normalize()
	req.ClergyTimeline = []TimelineEventRequest{
		{Year: "2010-2014", Description: "Phó xứ Giáo xứ A"},
		{Year: "2014-2018", Description: "Du học Roma"},
	}

	m := req.ToModel()
	assert.Equal(t, uuid.Nil, m.ClergyID) // id di-assign store, bukan client
	events := m.Timeline()
	require.Len(t, events, 2)
	assert.Equal(t, "Du học Roma", events[1].Description)
}

func TestFromModelMarksSampleRecords(t *testing.T) {
	sample := clergyModel.ClergyModel{
		ClergyFullName: "Phêrô Nguyễn Văn A",
		ClergyStatus:   constants.StatusDangMucVu,
	}
	resp := FromModel(&sample)
	assert.True(t, resp.ClergyIsSample)
	assert.Empty(t, resp.ClergyID)
	assert.Equal(t, "Đang Mục Vụ", resp.ClergyStatusConfig.Label)

	persisted := sample
	persisted.ClergyID = uuid.New()
	resp = FromModel(&persisted)
	assert.False(t, resp.ClergyIsSample)
	assert.Equal(t, persisted.ClergyID.String(), resp.ClergyID)
}

func TestFromModelUnknownStatusFallsBack(t *testing.T) {
	m := clergyModel.ClergyModel{
		ClergyID:     uuid.New(),
		ClergyStatus: "LEGACY_STATUS",
	}
	resp := FromModel(&m)
	// config fallback ke status pertama supaya badge selalu render
	assert.Equal(t, constants.StatusDangMucVu, resp.ClergyStatusConfig.Key)
}
