package main

import (
	"context"
	"encoding/gob"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis/v3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/sethvargo/go-retry"

	"melodi/config"
	"melodi/handlers"
	"melodi/logger"
	"melodi/middleware"
	"melodi/store"
)

func init() {
	// Gob paketine uuid.UUID tipini kaydet.
	// Bu, Fiber session modülünün UUID tipindeki verileri doğru şekilde saklamasını sağlar.
	gob.Register(uuid.UUID{})
}

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Debug); err != nil {
		panic(err)
	}
	defer func() { _ = logger.S.Sync() }()

	// Session verileri Redis'te tutulur
	redisStore := redis.New(redis.Config{
		Host: cfg.RedisHost,
		Port: cfg.RedisPort,
	})

	sessionStore := session.New(session.Config{
		Storage: redisStore,
	})

	// Veritabanı bağlantısı
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.PostgresDSN())
	if err != nil {
		logger.S.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}
	defer conn.Close(ctx)

	// Veritabanı konteyneri geç açılabilir; ping'i sabit aralıkla yeniden dene.
	backoff := retry.WithMaxRetries(5, retry.NewConstant(2*time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := conn.Ping(ctx); err != nil {
			logger.S.Warnf("Veritabanı ping başarısız, yeniden denenecek: %v", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		logger.S.Fatalf("Veritabanı bağlantısı başarısız: %v", err)
	}

	app := fiber.New()
	app.Use(cors.New())

	// Handler'lara ve middleware'a veritabanı ve session nesnelerini aktar
	pg := store.NewPostgres(conn)
	handlers.DB = pg
	middleware.DB = pg
	handlers.Store = sessionStore
	middleware.Store = sessionStore

	handlers.RegisterRoutes(app)

	logger.S.Infof("Sunucu %s adresinde dinliyor", cfg.Port)
	logger.S.Fatal(app.Listen(cfg.Port))
}
