package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/internal/utils"
	"github.com/MKhiriev/health-vault/models"
	"github.com/go-resty/resty/v2"
)

type httpBackendClient struct {
	client *utils.HTTPClient

	hashKey  string
	sessions store.BackendSessionStore

	mu      sync.Mutex
	loaded  bool
	session *models.BackendSession

	listenersMu sync.Mutex
	listeners   map[int]func(*models.BackendSession)
	nextID      int

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPBackendClient constructs an HTTP/REST implementation of
// [BackendClient]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. sessions persists the current
// session between runs.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, sessions store.BackendSessionStore, logger *logger.Logger) (BackendClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpBackendClient{
		client:    utils.NewBackendHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hashKey:   appCfg.HashKey,
		sessions:  sessions,
		listeners: make(map[int]func(*models.BackendSession)),
		now:       time.Now,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ── session ──────────────────────────────────────────────────────────────────

// GetCurrentSession implements [BackendClient].
func (h *httpBackendClient) GetCurrentSession(ctx context.Context) (*models.BackendSession, error) {
	h.mu.Lock()
	if !h.loaded {
		if stored, ok := h.sessions.Load(ctx); ok {
			h.session = &stored
		}
		h.loaded = true
	}

	if h.session == nil {
		h.mu.Unlock()
		return nil, nil
	}

	if h.session.Expired(h.now()) {
		h.logger.Info().Str("user_id", h.session.UserID).Msg("backend session expired")
		h.session = nil
		h.mu.Unlock()

		if err := h.sessions.Clear(ctx); err != nil {
			h.logger.Err(err).Str("func", "*httpBackendClient.GetCurrentSession").Msg("error clearing expired session")
		}
		h.notify(nil)
		return nil, nil
	}

	current := *h.session
	h.mu.Unlock()

	return &current, nil
}

// OnSessionChange implements [BackendClient].
func (h *httpBackendClient) OnSessionChange(fn func(*models.BackendSession)) func() {
	h.listenersMu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.listenersMu.Unlock()

	return func() {
		h.listenersMu.Lock()
		delete(h.listeners, id)
		h.listenersMu.Unlock()
	}
}

// notify calls every listener with a copy of session. Listeners run on the
// caller's goroutine without any adapter lock held.
func (h *httpBackendClient) notify(session *models.BackendSession) {
	h.listenersMu.Lock()
	fns := make([]func(*models.BackendSession), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.listenersMu.Unlock()

	for _, fn := range fns {
		if session == nil {
			fn(nil)
			continue
		}
		c := *session
		fn(&c)
	}
}

func (h *httpBackendClient) setSession(ctx context.Context, session models.BackendSession) {
	h.mu.Lock()
	h.session = &session
	h.loaded = true
	h.mu.Unlock()

	if err := h.sessions.Save(ctx, session); err != nil {
		h.logger.Err(err).Str("func", "*httpBackendClient.setSession").Msg("error persisting backend session")
	}
	h.notify(&session)
}

func (h *httpBackendClient) dropSession(ctx context.Context) {
	h.mu.Lock()
	h.session = nil
	h.loaded = true
	h.mu.Unlock()

	if err := h.sessions.Clear(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpBackendClient.dropSession").Msg("error clearing backend session")
	}
	h.notify(nil)
}

// renotify re-announces the current session so listeners refetch the profile.
func (h *httpBackendClient) renotify(ctx context.Context) {
	if session, _ := h.GetCurrentSession(ctx); session != nil {
		h.notify(session)
	}
}

func (h *httpBackendClient) token(ctx context.Context) (string, error) {
	session, err := h.GetCurrentSession(ctx)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrNoSession
	}
	return session.AccessToken, nil
}

// ── auth ─────────────────────────────────────────────────────────────────────

// SignUp implements [BackendClient]. It POSTs to /api/auth/signup and, on
// success, stores the bearer token from the Authorization header as the new
// session.
func (h *httpBackendClient) SignUp(ctx context.Context, email, password string, data models.SignUpMetadata) (models.BackendUser, error) {
	var result models.SessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SignUpRequest{Email: email, Password: password, Data: data}).
		SetResult(&result).
		Post("/api/auth/signup")
	if err != nil {
		return models.BackendUser{}, fmt.Errorf("%w: sign up: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BackendUser{}, err
	}

	session, err := sessionFromResponse(resp, result)
	if err != nil {
		return models.BackendUser{}, fmt.Errorf("sign up: %w", err)
	}

	h.setSession(ctx, session)
	return result.User, nil
}

// SignIn implements [BackendClient].
func (h *httpBackendClient) SignIn(ctx context.Context, email, password string) (models.BackendSession, error) {
	var result models.SessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SignInRequest{Email: email, Password: password}).
		SetResult(&result).
		Post("/api/auth/signin")
	if err != nil {
		return models.BackendSession{}, fmt.Errorf("%w: sign in: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BackendSession{}, err
	}

	session, err := sessionFromResponse(resp, result)
	if err != nil {
		return models.BackendSession{}, fmt.Errorf("sign in: %w", err)
	}

	h.setSession(ctx, session)
	return session, nil
}

// SignOut implements [BackendClient]. The local session is dropped before the
// server is told, so a slow or unreachable server never leaves a persisted
// session behind. Without a session it only makes sure nothing is persisted.
func (h *httpBackendClient) SignOut(ctx context.Context) error {
	token, err := h.token(ctx)
	h.dropSession(ctx)
	if err != nil {
		return nil
	}

	resp, reqErr := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Post("/api/auth/signout")
	if reqErr != nil {
		return fmt.Errorf("%w: sign out: %w", ErrUnreachable, reqErr)
	}
	return mapHTTPError(resp)
}

func sessionFromResponse(resp *resty.Response, result models.SessionResponse) (models.BackendSession, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.BackendSession{}, fmt.Errorf("parse bearer token: %w", err)
	}
	if result.User.ID == "" {
		return models.BackendSession{}, fmt.Errorf("response carries no user")
	}

	return models.BackendSession{
		AccessToken: token,
		UserID:      result.User.ID,
		Email:       result.User.Email,
		ExpiresAt:   result.ExpiresAt,
	}, nil
}

// ── profiles ─────────────────────────────────────────────────────────────────

// GetProfile implements [BackendClient].
func (h *httpBackendClient) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	var profile models.Profile

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	resp, err := req.
		SetResult(&profile).
		SetPathParam("id", userID).
		Get("/api/profiles/{id}")
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: get profile: %w", ErrUnreachable, err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// InsertProfile implements [BackendClient]. Listeners are re-notified so a
// profile inserted right after sign-up is picked up.
func (h *httpBackendClient) InsertProfile(ctx context.Context, profile models.Profile) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Post("/api/profiles")
	if err != nil {
		return fmt.Errorf("%w: insert profile: %w", ErrUnreachable, err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return err
	}

	h.renotify(ctx)
	return nil
}

// UpdateProfile implements [BackendClient].
func (h *httpBackendClient) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.Profile, error) {
	var profile models.Profile

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&profile).
		SetPathParam("id", userID).
		Put("/api/profiles/{id}")
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: update profile: %w", ErrUnreachable, err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return models.Profile{}, err
	}

	h.renotify(ctx)
	return profile, nil
}

// ── portal ───────────────────────────────────────────────────────────────────

// SearchDoctors implements [BackendClient]. The directory is public.
func (h *httpBackendClient) SearchDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error) {
	var doctors []models.Doctor

	filter = filter.Normalize()
	params := map[string]string{}
	if filter.Query != "" {
		params["q"] = filter.Query
	}
	if filter.Specialty != "" {
		params["specialty"] = filter.Specialty
	}
	if filter.Location != "" {
		params["location"] = filter.Location
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&doctors).
		Get("/api/doctors")
	if err != nil {
		return nil, fmt.Errorf("%w: search doctors: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return doctors, nil
}

// BookAppointment implements [BackendClient].
func (h *httpBackendClient) BookAppointment(ctx context.Context, request models.BookAppointmentRequest) (models.Appointment, error) {
	var appointment models.Appointment

	body, err := json.Marshal(request)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("encode booking: %w", err)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Appointment{}, err
	}
	if h.hashKey != "" {
		req.SetHeader(utils.HashHeader, utils.HashBytes(body, h.hashKey))
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&appointment).
		Post("/api/appointments")
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%w: book appointment: %w", ErrUnreachable, err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return models.Appointment{}, err
	}

	return appointment, nil
}

// ListAppointments implements [BackendClient].
func (h *httpBackendClient) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&appointments).Get("/api/appointments")
	if err != nil {
		return nil, fmt.Errorf("%w: list appointments: %w", ErrUnreachable, err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return nil, err
	}

	return appointments, nil
}

// CancelAppointment implements [BackendClient].
func (h *httpBackendClient) CancelAppointment(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("id", id).Delete("/api/appointments/{id}")
	if err != nil {
		return fmt.Errorf("%w: cancel appointment: %w", ErrUnreachable, err)
	}

	return h.checkResponse(ctx, resp)
}

// ServerVersion implements [BackendClient].
func (h *httpBackendClient) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("%w: version: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpBackendClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.token(ctx)
	if err != nil {
		return nil, err
	}

	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// checkResponse maps the status and drops the session when the server no
// longer accepts the token.
func (h *httpBackendClient) checkResponse(ctx context.Context, resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err != nil && resp.StatusCode() == 401 {
		h.logger.Warn().Msg("server rejected the session token, signing out locally")
		h.dropSession(ctx)
	}
	return err
}
