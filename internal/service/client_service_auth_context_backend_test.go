package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/health-vault/internal/adapter"
	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/utils"
	"github.com/MKhiriev/health-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUserStore is an in-memory store.SessionStore.
type memUserStore struct {
	mu   sync.Mutex
	user *models.User
}

func (m *memUserStore) Save(_ context.Context, user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
}

func (m *memUserStore) Load(_ context.Context) (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

func (m *memUserStore) Clear(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
}

// memBackendSessions is an in-memory store.BackendSessionStore.
type memBackendSessions struct {
	mu      sync.Mutex
	session *models.BackendSession
}

func (m *memBackendSessions) Save(_ context.Context, session models.BackendSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &session
	return nil
}

func (m *memBackendSessions) Load(_ context.Context) (models.BackendSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return models.BackendSession{}, false
	}
	return *m.session, true
}

func (m *memBackendSessions) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

func newBackendClient(t *testing.T, serverURL string, sessions *memBackendSessions) adapter.BackendClient {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{HashKey: "testhashkey"}

	client, err := adapter.NewHTTPBackendClient(adapterCfg, appCfg, sessions, logger.Nop())
	require.NoError(t, err)
	return client
}

func TestAuthContext_LogoutThenClose_NextRunStartsSignedOut(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/profiles/u-1", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.Profile{ID: "u-1", FullName: "Priya Sharma", Phone: "9123456780", UserType: "patient"}, http.StatusOK)
	})
	mux.HandleFunc("POST /api/auth/signout", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	demo := &memUserStore{}
	backendSessions := &memBackendSessions{session: &models.BackendSession{
		AccessToken: "tok",
		UserID:      "u-1",
		Email:       "priya@example.com",
		ExpiresAt:   time.Now().Add(time.Hour),
	}}

	auth := NewAuthContext(demo, newBackendClient(t, srv.URL, backendSessions), logger.Nop())
	auth.Init(ctx)
	require.NotNil(t, auth.Snapshot().User)
	assert.Equal(t, "u-1", auth.Snapshot().User.ID)

	auth.Logout(ctx)
	auth.Close()

	_, persisted := backendSessions.Load(ctx)
	assert.False(t, persisted)

	next := NewAuthContext(demo, newBackendClient(t, srv.URL, backendSessions), logger.Nop())
	defer next.Close()
	next.Init(ctx)

	state := next.Snapshot()
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.User)
}
