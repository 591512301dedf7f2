package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"melodi/models"
)

// Sentinel hatalar; handler'lar errors.Is ile HTTP durum koduna çevirir.
var (
	ErrNotFound = errors.New("kayıt bulunamadı")
	ErrConflict = errors.New("kayıt zaten mevcut")
)

// Store, veritabanı erişim katmanıdır. Handler'lar yalnızca bu arayüze
// bağımlıdır; üretimde Postgres, testlerde bellek içi bir sahte kullanılır.
type Store interface {
	// Müzik kataloğu
	ListMusic(ctx context.Context) ([]models.MusicSummary, error)
	GetMusic(ctx context.Context, id uuid.UUID) (*models.Music, error)
	CreateMusic(ctx context.Context, m *models.Music) error
	UpdateMusic(ctx context.Context, m *models.Music) error
	DeleteMusic(ctx context.Context, id uuid.UUID) error

	// Kullanıcılar. DeleteUserCascade, kullanıcının çalma listesi
	// girdilerini ve kullanıcıyı tek bir transaction içinde siler;
	// yarıda kalan bir silme geride temizlenmiş liste + duran kullanıcı bırakmaz.
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	DeleteUserCascade(ctx context.Context, id uuid.UUID) error

	// Çalma listesi
	ListPlaylist(ctx context.Context, userID uuid.UUID) ([]models.PlaylistItem, error)
	AddPlaylistEntry(ctx context.Context, e *models.PlaylistEntry) error
	RemovePlaylistEntry(ctx context.Context, userID, musicID uuid.UUID) error
}
