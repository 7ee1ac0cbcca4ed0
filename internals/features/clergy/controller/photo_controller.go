package controller

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aos_backend/internals/configs"
	"aos_backend/internals/features/clergy/dto"
	helper "aos_backend/internals/helpers"
)

const (
	maxPhotoBytes = 5 << 20 // 5MB
	photoMaxWidth = 600
	webpQuality   = 85
)

// 🟢 POST /api/a/clergy/:id/photo — upload foto giáo sĩ.
// Semua format masuk dikonversi ke webp (resize max 600px) lalu URL
// record di-update lewat store (read-modify-write).
func (ctl *ClergyController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	rec, found := ctl.findRecord(id.String())
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "Không tìm thấy giáo sĩ")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Thiếu file ảnh (field: photo)")
	}
	if fileHeader.Size > maxPhotoBytes {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ảnh vượt quá 5MB")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Không đọc được file ảnh")
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Không đọc được file ảnh")
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// jpeg/png gagal → coba webp
		if wimg, werr := webp.Decode(bytes.NewReader(raw)); werr == nil {
			img = wimg
		} else {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				"Định dạng ảnh không được hỗ trợ (jpeg/png/webp)")
		}
	}

	if img.Bounds().Dx() > photoMaxWidth {
		img = imaging.Resize(img, photoMaxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Chuyển đổi ảnh thất bại")
	}

	if err := os.MkdirAll(configs.UploadDir, 0o755); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Không tạo được thư mục upload")
	}
	filename := fmt.Sprintf("clergy_%s_%d.webp", id, time.Now().Unix())
	if err := os.WriteFile(filepath.Join(configs.UploadDir, filename), buf.Bytes(), 0o644); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lưu ảnh thất bại")
	}

	rec.ClergyImageURL = "/uploads/" + filename
	if err := ctl.Store.Update(c.UserContext(), id, &rec); err != nil {
		return storeErrorResponse(c, err)
	}

	return helper.JsonUpdated(c, "Cập nhật ảnh thành công!", dto.FromModel(&rec))
}
