package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/cryptox"
	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/logging"
	"github.com/dmitrijs2005/croissant/internal/server/commands"
	"github.com/dmitrijs2005/croissant/internal/server/models"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/croissant/internal/server/services"
	"github.com/dmitrijs2005/croissant/internal/server/shared/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T, p db.Provider) *Server {
	t.Helper()
	m := repomanager.NewInMemoryRepositoryManager()
	log := logging.New(io.Discard, logging.FormatJSON, "error")
	d := commands.NewDispatcher(
		services.NewAccountService(p, m, cryptox.NewHasher(bcrypt.MinCost)),
		services.NewUserService(p, m),
		services.NewMessageService(p, m),
		commands.AppConfig{Demo: true, Mode: "mock"},
		log,
	)
	s := NewServer("127.0.0.1:0", d, log)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// failingProvider refuses every connection.
type failingProvider struct{ err error }

func (p failingProvider) WithConn(context.Context, func(ctx context.Context, conn dbx.DBTX) error) error {
	return p.err
}

// ─── Health & config ───────────────────────────────────────────────

func TestHealth(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	w := do(t, h, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decodeBody[map[string]any](t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "2024-05-01T10:00:00.000Z", resp["timestamp"])
}

func TestGetConfig(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	w := do(t, h, http.MethodGet, "/api/get_config", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"demo":true,"local_dev":false,"mode":"mock"}`, w.Body.String())
}

func TestGreet(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	w := do(t, h, http.MethodPost, "/api/greet", `{"name":"Ana"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello, Ana! Welcome to Croissant.", decodeBody[string](t, w))
}

// ─── Credentials ───────────────────────────────────────────────────

func TestRegisterAndLogin(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	w := do(t, h, http.MethodPost, "/api/register_user", `{"email":"a@x.com","password":"pw1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeBody[bool](t, w))

	tests := []struct {
		body string
		want bool
	}{
		{`{"email":"a@x.com","password":"pw1"}`, true},
		{`{"email":"a@x.com","password":"wrong"}`, false},
		{`{"email":"b@x.com","password":"pw1"}`, false},
	}
	for _, tt := range tests {
		w := do(t, h, http.MethodPost, "/api/check_login", tt.body)
		require.Equal(t, http.StatusOK, w.Code, tt.body)
		assert.Equal(t, tt.want, decodeBody[bool](t, w), tt.body)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	body := `{"email":"a@x.com","password":"pw1"}`
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/register_user", body).Code)

	w := do(t, h, http.MethodPost, "/api/register_user", body)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Insert error: already exists", decodeBody[errorResponse](t, w).Error)
}

func TestCheckLogin_InvalidPayload(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	for _, body := range []string{``, `{`, `{"password":"pw1"}`} {
		w := do(t, h, http.MethodPost, "/api/check_login", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.NotEmpty(t, decodeBody[errorResponse](t, w).Error)
	}
}

func TestCheckLogin_EmptyPasswordIsFalse(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	require.Equal(t, http.StatusOK,
		do(t, h, http.MethodPost, "/api/register_user", `{"email":"a@x.com","password":"pw1"}`).Code)

	for _, body := range []string{`{"email":"a@x.com","password":""}`, `{"email":"a@x.com"}`} {
		w := do(t, h, http.MethodPost, "/api/check_login", body)
		require.Equal(t, http.StatusOK, w.Code, body)
		assert.False(t, decodeBody[bool](t, w), body)
	}
}

// ─── Users ─────────────────────────────────────────────────────────

func TestUsersLifecycle(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	w := do(t, h, http.MethodGet, "/api/get_users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, h, http.MethodPost, "/api/add_user", `{"name":"Alice","email":"alice@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	alice := decodeBody[models.User](t, w)
	assert.NotZero(t, alice.ID)
	assert.Equal(t, "Alice", alice.Name)

	w = do(t, h, http.MethodPut, "/api/update_user", `{"id":`+itoa(alice.ID)+`,"name":"Alicia","email":"alicia@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.User{ID: alice.ID, Name: "Alicia", Email: "alicia@x.com"}, decodeBody[models.User](t, w))

	w = do(t, h, http.MethodGet, "/api/get_users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]models.User](t, w), 1)

	w = do(t, h, http.MethodDelete, "/api/delete_user", `{"id":`+itoa(alice.ID)+`}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeBody[bool](t, w))

	w = do(t, h, http.MethodDelete, "/api/delete_user", `{"id":`+itoa(alice.ID)+`}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decodeBody[bool](t, w))
}

func TestUpdateUser_NotFound(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	w := do(t, h, http.MethodPut, "/api/update_user", `{"id":99,"name":"Ghost","email":"ghost@x.com"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Update error: not found", decodeBody[errorResponse](t, w).Error)
}

func TestAddUser_Validation(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	w := do(t, h, http.MethodPost, "/api/add_user", `{"name":"Alice","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodDelete, "/api/delete_user", `{"id":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ─── Messages ──────────────────────────────────────────────────────

func TestMessagesLifecycle(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	for _, text := range []string{"A", "B", "C"} {
		body := `{"master_email_address":"a@x.com","department":"sales","text":"` + text + `","content_type":"text/plain"}`
		w := do(t, h, http.MethodPost, "/api/add_message", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, text, decodeBody[models.Message](t, w).Text)
	}

	w := do(t, h, http.MethodGet, "/api/get_messages", "")
	require.Equal(t, http.StatusOK, w.Code)
	msgs := decodeBody[[]models.Message](t, w)
	require.Len(t, msgs, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{msgs[0].Text, msgs[1].Text, msgs[2].Text})

	w = do(t, h, http.MethodDelete, "/api/delete_message", `{"id":`+itoa(msgs[0].ID)+`}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeBody[bool](t, w))
}

// ─── Error mapping ─────────────────────────────────────────────────

func TestConnectionFailureIs503(t *testing.T) {
	p := failingProvider{err: common.ConnectionError(errors.New("refused"))}
	h := newTestServer(t, p).buildRouter()

	w := do(t, h, http.MethodGet, "/api/get_users", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Connection error: refused", decodeBody[errorResponse](t, w).Error)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{common.OpError(common.StageUpdate, common.ErrNotFound), http.StatusNotFound},
		{common.OpError(common.StageInsert, common.ErrAlreadyExists), http.StatusConflict},
		{common.ConfigError(common.ErrMissingSecret), http.StatusServiceUnavailable},
		{common.ConnectionError(errors.New("x")), http.StatusServiceUnavailable},
		{common.VerifyError(errors.New("x")), http.StatusInternalServerError},
		{common.OpError(common.StageQuery, errors.New("x")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

// ─── Middleware ────────────────────────────────────────────────────

func TestRequestID(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	w := do(t, h, http.MethodGet, "/api/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "client-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "client-123", rec.Header().Get("X-Request-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/add_user", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestRecovery(t *testing.T) {
	s := newTestServer(t, db.NewMemoryProvider())
	h := s.recoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeBody[errorResponse](t, w).Error)
}

func TestWrongMethod(t *testing.T) {
	h := newTestServer(t, db.NewMemoryProvider()).buildRouter()

	w := do(t, h, http.MethodGet, "/api/add_user", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

// ─── Run ───────────────────────────────────────────────────────────

func TestRun_StopsOnCancel(t *testing.T) {
	s := newTestServer(t, db.NewMemoryProvider())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s := newTestServer(t, db.NewMemoryProvider())
	s.address = l.Addr().String()

	require.Error(t, s.Run(context.Background()))
}

func itoa(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
