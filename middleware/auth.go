package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"melodi/logger"
	"melodi/store"
)

// DB ve Store global değişkenleri main.go'dan aktarılacak.
var DB store.Store
var Store *session.Store

// AuthRequired middleware'ı, sadece oturum açmış kullanıcıların erişimine izin verir.
// Oturumdaki kullanıcı ID'si veritabanından yüklenerek doğrulanır; kullanıcı
// silinmişse çerez hâlâ canlı olsa bile oturum geçersizdir ve yok edilir.
// Geçerliyse kullanıcı ID'si c.Locals üzerinden bir sonraki handler'a taşınır.
func AuthRequired(c *fiber.Ctx) error {
	if Store == nil || DB == nil {
		logger.S.Error("Session store veya DB atanmamış. Bu bir konfigürasyon hatasıdır.")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Sunucu hatası, session store mevcut değil."})
	}

	sess, err := Store.Get(c)
	if err != nil {
		logger.S.Errorf("Session alınamadı: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum bulunamadı veya geçersiz."})
	}

	userID := sess.Get("userID")
	if userID == nil {
		_ = sess.Destroy()
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Lütfen giriş yapın."})
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		logger.S.Errorf("Session'daki userID UUID tipinde değil: %v", userID)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum bulunamadı veya geçersiz."})
	}

	if _, err := DB.GetUserByID(c.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = sess.Destroy()
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum bulunamadı veya geçersiz."})
		}
		logger.S.Errorf("Oturum kullanıcısı sorgulama hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kullanıcı bilgileri alınamadı."})
	}

	// userID'yi bir sonraki handler'a iletmek için Locals'a kaydet.
	c.Locals("userID", id)

	return c.Next()
}
