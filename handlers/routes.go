package handlers

import (
	"github.com/gofiber/fiber/v2"

	"melodi/middleware"
)

// RegisterRoutes, tüm rotaları uygulamaya bağlar. main.go ve testler aynı
// rota tablosunu kullanır.
func RegisterRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello World")
	})

	// Kimlik doğrulama rotaları
	app.Post("/create_user", CreateUser)
	app.Delete("/delete_user/:userID", DeleteUser)
	app.Post("/login", Login)
	app.Post("/logout", middleware.AuthRequired, Logout)

	api := app.Group("/api")

	// Müzik kataloğu rotaları; okuma açık, yazma oturum gerektirir.
	api.Get("/musics", GetMusics)
	api.Get("/musics/:musicID", GetMusicByID)
	api.Post("/musics/add", middleware.AuthRequired, CreateMusic)
	api.Put("/musics/update/:musicID", middleware.AuthRequired, UpdateMusic)
	api.Delete("/musics/delete/:musicID", middleware.AuthRequired, DeleteMusic)

	// Çalma listesi rotaları; tamamı oturum gerektirir.
	api.Get("/playlist", middleware.AuthRequired, GetPlaylist)
	api.Post("/playlist/add/:musicID", middleware.AuthRequired, AddToPlaylist)
	api.Delete("/playlist/remove/:musicID", middleware.AuthRequired, RemoveFromPlaylist)
}
