package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"melodi/logger"
	"melodi/store"
)

// DB ve Store global değişkenleri main.go'dan aktarılacak.
var DB store.Store
var Store *session.Store

// currentUserID, AuthRequired middleware'ının Locals'a koyduğu kullanıcı
// ID'sini çözer. Yoksa veya tipi bozuksa false döner; bu durumda handler
// 401 ile yanıt vermelidir.
func currentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	userIDLocal := c.Locals("userID")
	if userIDLocal == nil {
		return uuid.Nil, false
	}
	userID, ok := userIDLocal.(uuid.UUID)
	if !ok {
		logger.S.Errorf("userID yerel değişkeni UUID tipinde değil: %v", userIDLocal)
		return uuid.Nil, false
	}
	return userID, true
}
