package models

import "github.com/google/uuid"

// PlaylistEntry modeli, t_playlist tablosunu temsil eder.
// Aynı (user_id, music_id) çifti birden fazla kez eklenebilir.
type PlaylistEntry struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	MusicID uuid.UUID `json:"music_id"`
}

// PlaylistItem, çalma listesi görünümünün bir satırıdır;
// girdiyi müzik bilgileriyle birleştirir.
type PlaylistItem struct {
	ID          uuid.UUID `json:"id"`
	MusicName   string    `json:"music_name"`
	MusicArtist string    `json:"music_artist"`
	MusicTime   float64   `json:"music_time"`
}
