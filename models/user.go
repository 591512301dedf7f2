package models

import "github.com/google/uuid"

// User modeli, t_users tablosunu temsil eder.
// Password alanı yanıtlarda asla gösterilmez.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Password string    `json:"-"`
}
