// Package config, ayarları bir .env dosyasından ve ortam değişkenlerinden yükler.
// Ortam değişkenleri her zaman .env değerlerinin önüne geçer.
package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config, uygulamanın tüm ayarlarını tutar.
type Config struct {
	// PostgreSQL: ya DatabaseURL doğrudan verilir ya da tek tek alanlar.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// Session store için Redis
	RedisHost string
	RedisPort int

	// Sunucu
	Port  string
	Debug bool
}

// Load, ayarları önce .env dosyasından (varsa) sonra ortam değişkenlerinden okur.
func Load() *Config {
	v := newViper()

	// Varsayılanlar
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "melodi")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("PORT", ":3000")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		DatabaseURL: v.GetString("DATABASE_URL"),
		DBUser:      v.GetString("DB_USER"),
		DBPass:      v.GetString("DB_PASS"),
		DBHost:      v.GetString("DB_HOST"),
		DBPort:      v.GetString("DB_PORT"),
		DBName:      v.GetString("DB_NAME"),
		DBSSLMode:   v.GetString("DB_SSLMODE"),
		RedisHost:   v.GetString("REDIS_HOST"),
		RedisPort:   v.GetInt("REDIS_PORT"),
		Port:        v.GetString("PORT"),
		Debug:       v.GetBool("DEBUG"),
	}

	return cfg
}

// PostgresDSN, tam PostgreSQL bağlantı dizesini döndürür.
// DATABASE_URL varsa tek tek alanların önüne geçer.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

func newViper() *viper.Viper {
	// .env yoksa sorun değil; üretim gerçek ortam değişkenlerini kullanır.
	if err := godotenv.Load(); err != nil {
		log.Println("config: .env dosyası bulunamadı, yalnızca ortam değişkenleri kullanılacak")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}
