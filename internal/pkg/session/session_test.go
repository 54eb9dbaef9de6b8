package session

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapStorage is a fiber.Storage kept in a map, optionally failing reads.
type mapStorage struct {
	mu      sync.Mutex
	data    map[string][]byte
	readErr error
}

func newMapStorage() *mapStorage {
	return &mapStorage{data: map[string][]byte{}}
}

func (m *mapStorage) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.data[key], nil
}

func (m *mapStorage) Set(key string, val []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), val...)
	return nil
}

func (m *mapStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *mapStorage) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = map[string][]byte{}
	return nil
}

func (m *mapStorage) Close() error { return nil }

func (m *mapStorage) failReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

func newTestApp(store *fibersession.Store) *fiber.App {
	app := fiber.New()
	app.Use(New(store))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(ID(c))
	})
	return app
}

func get(t *testing.T, app *fiber.App, cookie *http.Cookie) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestIssuesCookieForNewVisitor(t *testing.T) {
	app := newTestApp(NewSessionStore(Config{}))

	resp, body := get(t, app, nil)

	cookie := findCookie(resp, DefaultCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, cookie.Value, body)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int(Expiration.Seconds()), cookie.MaxAge)
	_, err := uuid.Parse(cookie.Value)
	assert.NoError(t, err)
}

func TestKeepsReturningVisitor(t *testing.T) {
	app := newTestApp(NewSessionStore(Config{}))

	first, id := get(t, app, nil)
	resp, body := get(t, app, findCookie(first, DefaultCookieName))

	assert.Equal(t, id, body)
	refreshed := findCookie(resp, DefaultCookieName)
	require.NotNil(t, refreshed)
	assert.Equal(t, id, refreshed.Value)
}

func TestReplacesUnknownCookie(t *testing.T) {
	app := newTestApp(NewSessionStore(Config{CookieName: "vid"}))

	resp, body := get(t, app, &http.Cookie{Name: "vid", Value: "not-a-session"})

	cookie := findCookie(resp, "vid")
	require.NotNil(t, cookie)
	assert.NotEqual(t, "not-a-session", cookie.Value)
	assert.Equal(t, cookie.Value, body)
}

func TestSecureCookie(t *testing.T) {
	app := newTestApp(NewSessionStore(Config{Secure: true}))

	resp, _ := get(t, app, nil)

	cookie := findCookie(resp, DefaultCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

func TestSessionsSurviveInSharedStorage(t *testing.T) {
	backend := newMapStorage()

	first, id := get(t, newTestApp(NewSessionStore(Config{Storage: backend})), nil)
	// a second app over the same storage, like a restarted server
	_, body := get(t, newTestApp(NewSessionStore(Config{Storage: backend})), findCookie(first, DefaultCookieName))

	assert.Equal(t, id, body)
}

func TestStorageFailureUsesThrowawayScope(t *testing.T) {
	backend := newMapStorage()
	app := newTestApp(NewSessionStore(Config{Storage: backend}))
	first, id := get(t, app, nil)

	backend.failReads(errors.New("connection refused"))
	resp, body := get(t, app, findCookie(first, DefaultCookieName))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body)
	assert.NotEqual(t, id, body)
}

func TestIDOutsideMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("[" + ID(c) + "]")
	})

	_, body := get(t, app, nil)
	assert.Equal(t, "[]", body)
}
