package models

import "github.com/google/uuid"

// Music modeli, t_musics tablosunu temsil eder.
type Music struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Artist      string    `json:"artist"`
	Time        float64   `json:"time"`
	Description string    `json:"description"`
}

// MusicSummary, listeleme görünümüdür; description alanı dahil edilmez.
type MusicSummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Artist string    `json:"artist"`
	Time   float64   `json:"time"`
}
