package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"melodi/logger"
	"melodi/models"
	"melodi/store"
)

// GetPlaylist, oturumdaki kullanıcının çalma listesini müzik bilgileriyle
// birleştirilmiş olarak getirir.
func GetPlaylist(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açık değil."})
	}

	// Oturumun işaret ettiği kullanıcı bu arada silinmiş olabilir.
	if _, err := DB.GetUserByID(c.Context(), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kullanıcı bulunamadı."})
		}
		logger.S.Errorf("Kullanıcı sorgulama hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kullanıcı bilgileri alınamadı."})
	}

	items, err := DB.ListPlaylist(c.Context(), userID)
	if err != nil {
		logger.S.Errorf("Çalma listesi sorgulama hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Çalma listesi alınamadı."})
	}

	return c.JSON(items)
}

// AddToPlaylist, bir müziği oturumdaki kullanıcının çalma listesine ekler.
// Aynı müzik birden fazla kez eklenebilir.
func AddToPlaylist(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açık değil."})
	}

	musicID, err := uuid.Parse(c.Params("musicID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz müzik ID'si."})
	}

	if _, err := DB.GetMusic(c.Context(), musicID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Müzik bulunamadı."})
		}
		logger.S.Errorf("Müzik sorgulama hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Müzik bilgileri alınamadı."})
	}

	entry := models.PlaylistEntry{
		ID:      uuid.New(),
		UserID:  userID,
		MusicID: musicID,
	}
	if err := DB.AddPlaylistEntry(c.Context(), &entry); err != nil {
		logger.S.Errorf("Çalma listesine ekleme hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Müzik çalma listesine eklenemedi."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Müzik başarıyla çalma listesine eklendi."})
}

// RemoveFromPlaylist, oturumdaki kullanıcının çalma listesinden eşleşen tek
// bir girdiyi kaldırır. Çift kayıt varsa her çağrı bir tanesini siler.
func RemoveFromPlaylist(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açık değil."})
	}

	musicID, err := uuid.Parse(c.Params("musicID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz müzik ID'si."})
	}

	if err := DB.RemovePlaylistEntry(c.Context(), userID, musicID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Çalma listesinde eşleşen girdi bulunamadı."})
		}
		logger.S.Errorf("Çalma listesinden silme hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Müzik çalma listesinden silinemedi."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Müzik başarıyla çalma listesinden silindi."})
}
