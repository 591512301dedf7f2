package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"melodi/logger"
	"melodi/models"
	"melodi/store"
)

// musicInput, ekleme ve güncelleme isteklerinin gövdesidir.
// Pointer alanlar, hangi alanların gönderildiğini ayırt etmeyi sağlar.
type musicInput struct {
	Name        *string  `json:"name"`
	Artist      *string  `json:"artist"`
	Time        *float64 `json:"time"`
	Description *string  `json:"description"`
}

// GetMusics, kataloğdaki tüm müzikleri listeler; description dahil edilmez.
func GetMusics(c *fiber.Ctx) error {
	musics, err := DB.ListMusic(c.Context())
	if err != nil {
		logger.S.Errorf("Müzik listeleme hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Müzikler listelenemedi."})
	}

	return c.JSON(musics)
}

// GetMusicByID, bir müziğin tüm alanlarını getirir.
func GetMusicByID(c *fiber.Ctx) error {
	musicID, err := uuid.Parse(c.Params("musicID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz müzik ID'si."})
	}

	music, err := DB.GetMusic(c.Context(), musicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Müzik bulunamadı."})
		}
		logger.S.Errorf("Müzik sorgulama hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Müzik bilgileri alınamadı."})
	}

	return c.JSON(music)
}

// CreateMusic, kataloğa yeni bir müzik ekler. name, artist ve time zorunludur.
func CreateMusic(c *fiber.Ctx) error {
	var input musicInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	if input.Name == nil || *input.Name == "" ||
		input.Artist == nil || *input.Artist == "" ||
		input.Time == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, artist ve time alanları zorunludur."})
	}

	music := models.Music{
		ID:     uuid.New(),
		Name:   *input.Name,
		Artist: *input.Artist,
		Time:   *input.Time,
	}
	if input.Description != nil {
		music.Description = *input.Description
	}

	if err := DB.CreateMusic(c.Context(), &music); err != nil {
		logger.S.Errorf("Müzik ekleme hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Müzik eklenemedi."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Müzik başarıyla eklendi."})
}

// UpdateMusic, yalnızca istekte gönderilen alanları günceller; diğerleri
// olduğu gibi kalır.
func UpdateMusic(c *fiber.Ctx) error {
	musicID, err := uuid.Parse(c.Params("musicID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz müzik ID'si."})
	}

	var input musicInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	music, err := DB.GetMusic(c.Context(), musicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Güncellenecek müzik bulunamadı."})
		}
		logger.S.Errorf("Müzik sorgulama hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Müzik bilgileri alınamadı."})
	}

	if input.Name != nil {
		music.Name = *input.Name
	}
	if input.Artist != nil {
		music.Artist = *input.Artist
	}
	if input.Time != nil {
		music.Time = *input.Time
	}
	if input.Description != nil {
		music.Description = *input.Description
	}

	if err := DB.UpdateMusic(c.Context(), music); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Güncellenecek müzik bulunamadı."})
		}
		logger.S.Errorf("Müzik güncelleme hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Müzik güncellenemedi."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Müzik başarıyla güncellendi."})
}

// DeleteMusic, bir müziği kataloğdan kaldırır. Bu müziğe işaret eden çalma
// listesi girdileri silinmez; kayıt açıkta kalır.
func DeleteMusic(c *fiber.Ctx) error {
	musicID, err := uuid.Parse(c.Params("musicID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz müzik ID'si."})
	}

	if err := DB.DeleteMusic(c.Context(), musicID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Silinecek müzik bulunamadı."})
		}
		logger.S.Errorf("Müzik silme hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Müzik silinemedi."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Müzik başarıyla silindi."})
}
