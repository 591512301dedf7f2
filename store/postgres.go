package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"melodi/models"
)

// uniqueViolation, PostgreSQL'in unique constraint ihlali için döndürdüğü koddur.
const uniqueViolation = "23505"

// Postgres, Store arayüzünün pgx üzerinden çalışan gerçeklemesidir.
type Postgres struct {
	conn *pgx.Conn
}

// NewPostgres, var olan bir pgx bağlantısını saran bir Postgres store döndürür.
func NewPostgres(conn *pgx.Conn) *Postgres {
	return &Postgres{conn: conn}
}

func (p *Postgres) ListMusic(ctx context.Context) ([]models.MusicSummary, error) {
	rows, err := p.conn.Query(ctx, `SELECT id, name, artist, time FROM t_musics`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	musics := []models.MusicSummary{}
	for rows.Next() {
		var m models.MusicSummary
		if err := rows.Scan(&m.ID, &m.Name, &m.Artist, &m.Time); err != nil {
			return nil, err
		}
		musics = append(musics, m)
	}
	return musics, rows.Err()
}

func (p *Postgres) GetMusic(ctx context.Context, id uuid.UUID) (*models.Music, error) {
	var m models.Music
	query := `SELECT id, name, artist, time, COALESCE(description, '') FROM t_musics WHERE id = $1`
	err := p.conn.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Artist, &m.Time, &m.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (p *Postgres) CreateMusic(ctx context.Context, m *models.Music) error {
	query := `INSERT INTO t_musics (id, name, artist, time, description) VALUES ($1, $2, $3, $4, $5)`
	_, err := p.conn.Exec(ctx, query, m.ID, m.Name, m.Artist, m.Time, m.Description)
	return err
}

func (p *Postgres) UpdateMusic(ctx context.Context, m *models.Music) error {
	query := `UPDATE t_musics SET name = $1, artist = $2, time = $3, description = $4 WHERE id = $5`
	tag, err := p.conn.Exec(ctx, query, m.Name, m.Artist, m.Time, m.Description, m.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) DeleteMusic(ctx context.Context, id uuid.UUID) error {
	tag, err := p.conn.Exec(ctx, `DELETE FROM t_musics WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) CreateUser(ctx context.Context, u *models.User) error {
	query := `INSERT INTO t_users (id, username, password) VALUES ($1, $2, $3)`
	_, err := p.conn.Exec(ctx, query, u.ID, u.Username, u.Password)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (p *Postgres) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	query := `SELECT id, username, COALESCE(password, '') FROM t_users WHERE id = $1`
	err := p.conn.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	query := `SELECT id, username, COALESCE(password, '') FROM t_users WHERE username = $1`
	err := p.conn.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// DeleteUserCascade, kullanıcının çalma listesi girdilerini ve kullanıcıyı
// tek bir transaction içinde siler. Kaskad store-level bir constraint değil,
// açık iki DELETE ifadesidir; t_playlist üzerinde foreign key yoktur.
func (p *Postgres) DeleteUserCascade(ctx context.Context, id uuid.UUID) error {
	return p.conn.BeginFunc(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM t_playlist WHERE user_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM t_users WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (p *Postgres) ListPlaylist(ctx context.Context, userID uuid.UUID) ([]models.PlaylistItem, error) {
	query := `
        SELECT p.id, m.name, m.artist, m.time
        FROM t_playlist p
        JOIN t_musics m ON p.music_id = m.id
        WHERE p.user_id = $1
    `
	rows, err := p.conn.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.PlaylistItem{}
	for rows.Next() {
		var it models.PlaylistItem
		if err := rows.Scan(&it.ID, &it.MusicName, &it.MusicArtist, &it.MusicTime); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (p *Postgres) AddPlaylistEntry(ctx context.Context, e *models.PlaylistEntry) error {
	query := `INSERT INTO t_playlist (id, user_id, music_id) VALUES ($1, $2, $3)`
	_, err := p.conn.Exec(ctx, query, e.ID, e.UserID, e.MusicID)
	return err
}

// RemovePlaylistEntry, eşleşen girdilerden yalnızca birini siler.
// Çift kayıtlar olduğunda her çağrı tek bir satır kaldırır.
func (p *Postgres) RemovePlaylistEntry(ctx context.Context, userID, musicID uuid.UUID) error {
	query := `
        DELETE FROM t_playlist
        WHERE id = (
            SELECT id FROM t_playlist WHERE user_id = $1 AND music_id = $2 LIMIT 1
        )
    `
	tag, err := p.conn.Exec(ctx, query, userID, musicID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
