package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"melodi/logger"
	"melodi/models"
	"melodi/store"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUser, yeni bir kullanıcı kaydı oluşturur. Oturum açmaz.
func CreateUser(c *fiber.Ctx) error {
	var creds credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	if creds.Username == "" || creds.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kullanıcı adı ve şifre zorunludur."})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.S.Errorf("Şifre hashleme hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Şifre hashleme hatası."})
	}

	user := models.User{
		ID:       uuid.New(),
		Username: creds.Username,
		Password: string(hashedPassword),
	}

	if err := DB.CreateUser(c.Context(), &user); err != nil {
		// Kullanıcı adı benzersizliği store seviyesindeki constraint ile sağlanır.
		if errors.Is(err, store.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Bu kullanıcı adı zaten alınmış."})
		}
		logger.S.Errorf("Kullanıcı kaydı oluşturma hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kullanıcı kaydı yapılamadı."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Kullanıcı başarıyla kaydedildi."})
}

// DeleteUser, bir kullanıcıyı ve o kullanıcıya ait tüm çalma listesi
// girdilerini siler. Kaskad tek bir transaction içinde yapılır: önce
// girdiler, sonra kullanıcı; ikisi birlikte ya silinir ya silinmez.
func DeleteUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz kullanıcı ID'si."})
	}

	if err := DB.DeleteUserCascade(c.Context(), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kullanıcı bulunamadı."})
		}
		logger.S.Errorf("Kullanıcı silme hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kullanıcı silinemedi."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Kullanıcı başarıyla silindi."})
}

// Login, kullanıcının oturum açmasını sağlar.
func Login(c *fiber.Ctx) error {
	var creds credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	user, err := DB.GetUserByUsername(c.Context(), creds.Username)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.S.Errorf("Kullanıcı sorgulama hatası: %v", err)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Geçersiz kullanıcı adı veya şifre."})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Geçersiz kullanıcı adı veya şifre."})
	}

	// Oturum oluştur ve kullanıcı ID'sini sakla
	sess, err := Store.Get(c)
	if err != nil {
		logger.S.Errorf("Session oluşturma/alma hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Session oluşturulamadı."})
	}
	sess.Set("userID", user.ID)
	if err := sess.Save(); err != nil {
		logger.S.Errorf("Session kaydetme hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Session kaydedilemedi."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Giriş başarılı."})
}

// Logout, kullanıcının oturumunu kapatır.
func Logout(c *fiber.Ctx) error {
	sess, err := Store.Get(c)
	if err != nil {
		logger.S.Errorf("Session alma hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Session alınamadı."})
	}
	if err := sess.Destroy(); err != nil {
		logger.S.Errorf("Session sonlandırma hatası: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Session sonlandırılamadı."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Çıkış başarılı."})
}
