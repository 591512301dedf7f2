package handlers_test

import (
	"bytes"
	"context"
	"encoding/gob"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"melodi/handlers"
	"melodi/middleware"
	"melodi/models"
	"melodi/store"
)

func init() {
	// main.go'daki kayıtla aynı; session verisi gob ile kodlanır.
	gob.Register(uuid.UUID{})
}

// memStore, store.Store arayüzünün bellek içi sahtesidir. Handler testleri
// gerçek bir PostgreSQL olmadan tam rota tablosu üzerinden çalışır.
type memStore struct {
	mu       sync.Mutex
	musics   map[uuid.UUID]models.Music
	users    map[uuid.UUID]models.User
	playlist []models.PlaylistEntry
}

func newMemStore() *memStore {
	return &memStore{
		musics: map[uuid.UUID]models.Music{},
		users:  map[uuid.UUID]models.User{},
	}
}

func (s *memStore) ListMusic(ctx context.Context) ([]models.MusicSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.MusicSummary{}
	for _, m := range s.musics {
		out = append(out, models.MusicSummary{ID: m.ID, Name: m.Name, Artist: m.Artist, Time: m.Time})
	}
	return out, nil
}

func (s *memStore) GetMusic(ctx context.Context, id uuid.UUID) (*models.Music, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.musics[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &m, nil
}

func (s *memStore) CreateMusic(ctx context.Context, m *models.Music) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.musics[m.ID] = *m
	return nil
}

func (s *memStore) UpdateMusic(ctx context.Context, m *models.Music) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.musics[m.ID]; !ok {
		return store.ErrNotFound
	}
	s.musics[m.ID] = *m
	return nil
}

func (s *memStore) DeleteMusic(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.musics[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.musics, id)
	return nil
}

func (s *memStore) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return store.ErrConflict
		}
	}
	s.users[u.ID] = *u
	return nil
}

func (s *memStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *memStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

// DeleteUserCascade, Postgres gerçeklemesindeki transaction gibi tek kilit
// altında hem girdileri hem kullanıcıyı siler.
func (s *memStore) DeleteUserCascade(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	kept := s.playlist[:0]
	for _, e := range s.playlist {
		if e.UserID != id {
			kept = append(kept, e)
		}
	}
	s.playlist = kept
	delete(s.users, id)
	return nil
}

func (s *memStore) ListPlaylist(ctx context.Context, userID uuid.UUID) ([]models.PlaylistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.PlaylistItem{}
	for _, e := range s.playlist {
		if e.UserID != userID {
			continue
		}
		// INNER JOIN davranışı: müziği silinmiş girdiler sonuca girmez.
		m, ok := s.musics[e.MusicID]
		if !ok {
			continue
		}
		out = append(out, models.PlaylistItem{ID: e.ID, MusicName: m.Name, MusicArtist: m.Artist, MusicTime: m.Time})
	}
	return out, nil
}

func (s *memStore) AddPlaylistEntry(ctx context.Context, e *models.PlaylistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playlist = append(s.playlist, *e)
	return nil
}

func (s *memStore) RemovePlaylistEntry(ctx context.Context, userID, musicID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.playlist {
		if e.UserID == userID && e.MusicID == musicID {
			s.playlist = append(s.playlist[:i], s.playlist[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// entryCount, belirli bir kullanıcının girdi sayısını döndürür.
func (s *memStore) entryCount(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.playlist {
		if e.UserID == userID {
			n++
		}
	}
	return n
}

// userIDByName, testlerin kullanıcı ID'sine ulaşması için kestirmedir.
func (s *memStore) userIDByName(username string) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u.ID, true
		}
	}
	return uuid.Nil, false
}

// setup, bellek içi store ve session ile tam rota tablosunu kurar.
// Handler globalleri değiştirildiği için testler paralel koşmaz.
func setup(t *testing.T) (*fiber.App, *memStore) {
	t.Helper()

	ms := newMemStore()
	sessionStore := session.New()

	handlers.DB = ms
	middleware.DB = ms
	handlers.Store = sessionStore
	middleware.Store = sessionStore

	app := fiber.New()
	handlers.RegisterRoutes(app)
	return app, ms
}

// doRequest, JSON gövdeli bir isteği uygulamadan geçirir.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerAndLogin, kullanıcı oluşturur, giriş yapar ve session çerezini döndürür.
func registerAndLogin(t *testing.T, app *fiber.App, username, password string) []*http.Cookie {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/create_user",
		map[string]string{"username": username, "password": password}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPost, "/login",
		map[string]string{"username": username, "password": password}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Cookies(), "login session çerezi döndürmeli")
	return resp.Cookies()
}

// createMusic, oturumlu bir istekle müzik ekler ve listeden ID'sini bulur.
func createMusic(t *testing.T, app *fiber.App, cookies []*http.Cookie, name, artist string, duration float64) uuid.UUID {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/api/musics/add",
		map[string]any{"name": name, "artist": artist, "time": duration}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/musics", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []models.MusicSummary
	decodeBody(t, resp, &list)
	for _, m := range list {
		if m.Name == name && m.Artist == artist {
			return m.ID
		}
	}
	t.Fatalf("eklenen müzik listede yok: %s", name)
	return uuid.Nil
}
