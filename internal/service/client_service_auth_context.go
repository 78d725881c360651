package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/health-vault/internal/adapter"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/models"
)

// AuthContext owns the current user. It is built once per client run and
// handed to every page; there is no package-level instance.
//
// The demo path (phone + OTP) keeps its user in the SessionStore. The backend
// path keeps its session in the BackendClient and derives the user from the
// profile row. Writes from either path bump a generation counter so that a
// slower result from the other path cannot overwrite a newer state.
type AuthContext struct {
	sessions store.SessionStore
	backend  adapter.BackendClient
	logger   *logger.Logger

	mu             sync.RWMutex
	user           *models.User
	backendSession *models.BackendSession
	loading        bool
	closed         bool
	generation     uint64

	initOnce           sync.Once
	unsubscribeBackend func()

	subsMu  sync.Mutex
	subs    map[int]func(AuthState)
	nextSub int

	signOuts sync.WaitGroup
}

var _ ClientAuthService = (*AuthContext)(nil)

// signOutWait bounds how long Close waits for a backend sign-out to finish.
const signOutWait = 5 * time.Second

// NewAuthContext constructs an AuthContext in the loading state.
func NewAuthContext(sessions store.SessionStore, backend adapter.BackendClient, logger *logger.Logger) *AuthContext {
	return &AuthContext{
		sessions: sessions,
		backend:  backend,
		logger:   logger,
		loading:  true,
		subs:     make(map[int]func(AuthState)),
	}
}

// Init restores the session:
//  1. a stored demo record wins and the backend is not consulted;
//  2. otherwise the backend session, if any, is turned into a user through
//     its profile;
//  3. loading ends;
//  4. backend session changes are followed until Close.
func (a *AuthContext) Init(ctx context.Context) {
	a.initOnce.Do(func() { a.init(ctx) })
}

func (a *AuthContext) init(ctx context.Context) {
	if user, ok := a.sessions.Load(ctx); ok {
		a.logger.Info().Str("user_id", user.ID).Str("role", user.Role.String()).Msg("restored stored session")
		a.finishLoading(func() { a.user = &user })
	} else {
		a.restoreBackendSession(ctx)
	}

	unsubscribe := a.backend.OnSessionChange(a.handleSessionChange)

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		unsubscribe()
		return
	}
	a.unsubscribeBackend = unsubscribe
	a.mu.Unlock()
}

func (a *AuthContext) restoreBackendSession(ctx context.Context) {
	a.mu.RLock()
	gen := a.generation
	a.mu.RUnlock()

	session, err := a.backend.GetCurrentSession(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "*AuthContext.restoreBackendSession").Msg("error getting backend session")
	}

	var user *models.User
	if session != nil {
		user = a.profileUser(ctx, session.UserID)
	}

	a.finishLoading(func() {
		if a.generation != gen {
			return
		}
		a.backendSession = session
		a.user = user
	})
}

// finishLoading applies apply and clears the loading flag under the lock,
// then publishes. Nothing happens after Close.
func (a *AuthContext) finishLoading(apply func()) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	apply()
	a.loading = false
	a.mu.Unlock()

	a.publish()
}

// handleSessionChange follows the backend session. A nil session signs out
// backend users only; a demo user stays signed in.
func (a *AuthContext) handleSessionChange(session *models.BackendSession) {
	ctx := context.Background()

	if session == nil {
		a.mu.Lock()
		if a.closed {
			a.mu.Unlock()
			return
		}
		a.backendSession = nil
		if a.user != nil && !a.user.IsDemo() {
			a.user = nil
		}
		a.generation++
		a.mu.Unlock()

		a.publish()
		return
	}

	a.mu.RLock()
	gen, closed := a.generation, a.closed
	a.mu.RUnlock()
	if closed {
		return
	}

	user := a.profileUser(ctx, session.UserID)

	a.mu.Lock()
	if a.closed || a.generation != gen {
		a.mu.Unlock()
		return
	}
	wasDemo := a.user != nil && a.user.IsDemo()
	a.backendSession = session
	a.user = user
	a.generation++
	a.mu.Unlock()

	if wasDemo {
		a.sessions.Clear(ctx)
	}
	a.publish()
}

// profileUser fetches the profile of userID and converts it. Failures are
// logged and yield nil.
func (a *AuthContext) profileUser(ctx context.Context, userID string) *models.User {
	profile, err := a.backend.GetProfile(ctx, userID)
	if err != nil {
		a.logger.Err(mapAdapterError(err)).Str("user_id", userID).Msg("error fetching profile")
		return nil
	}

	user, err := profile.ToUser()
	if err != nil {
		a.logger.Err(fmt.Errorf("%w: %w", ErrInvalidProfile, err)).Str("user_id", userID).Msg("profile rejected")
		return nil
	}

	return &user
}

// Login implements ClientAuthService. Only models.DemoOTP is accepted; the
// role comes from models.ClassifyPhone. The backend is not called.
func (a *AuthContext) Login(ctx context.Context, phone, code string) bool {
	if code != models.DemoOTP {
		return false
	}

	user := models.NewDemoUser(phone)

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return false
	}
	a.user = &user
	a.generation++
	a.mu.Unlock()

	a.sessions.Save(ctx, user)
	a.logger.Info().Str("user_id", user.ID).Str("role", user.Role.String()).Msg("demo login")
	a.publish()

	return true
}

// Logout implements ClientAuthService.
func (a *AuthContext) Logout(ctx context.Context) {
	a.mu.Lock()
	a.user = nil
	a.backendSession = nil
	a.generation++
	a.mu.Unlock()

	a.sessions.Clear(ctx)
	a.publish()

	a.signOuts.Add(1)
	go func() {
		defer a.signOuts.Done()
		if err := a.backend.SignOut(context.WithoutCancel(ctx)); err != nil {
			a.logger.Err(err).Str("func", "*AuthContext.Logout").Msg("backend sign out failed")
		}
	}()
}

// SignUp implements ClientAuthService. The profile insert re-announces the
// session, which populates the current user.
func (a *AuthContext) SignUp(ctx context.Context, input SignUpInput) error {
	if input.Password != input.RepeatPassword {
		return ErrPasswordsDoNotMatch
	}
	if _, err := models.ParseRole(input.UserType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	meta := models.SignUpMetadata{FullName: input.FullName, Phone: input.Phone, UserType: input.UserType}

	account, err := a.backend.SignUp(ctx, input.Email, input.Password, meta)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSignUpOnServer, mapAdapterError(err))
	}

	err = a.backend.InsertProfile(ctx, models.Profile{
		ID:       account.ID,
		FullName: input.FullName,
		Phone:    input.Phone,
		UserType: input.UserType,
		Email:    account.Email,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSignUpOnServer, mapAdapterError(err))
	}

	return nil
}

// SignIn implements ClientAuthService.
func (a *AuthContext) SignIn(ctx context.Context, email, password string) error {
	if _, err := a.backend.SignIn(ctx, email, password); err != nil {
		return fmt.Errorf("%w: %w", ErrSignInOnServer, mapAdapterError(err))
	}

	if a.Snapshot().User == nil {
		return fmt.Errorf("%w: %w", ErrSignInOnServer, ErrInvalidProfile)
	}

	return nil
}

// UpdateProfile implements ClientAuthService. Demo users edit their stored
// record; backend users edit the profile row.
func (a *AuthContext) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	state := a.Snapshot()
	if state.User == nil {
		return models.User{}, ErrNotSignedIn
	}
	if update.IsEmpty() {
		return *state.User, nil
	}

	if state.User.IsDemo() {
		user := *state.User
		if update.FullName != nil {
			user.Name = *update.FullName
		}
		if update.Phone != nil {
			user.Phone = *update.Phone
		}
		if update.Email != nil {
			user.Email = *update.Email
		}
		if err := user.Validate(); err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

		a.mu.Lock()
		a.user = &user
		a.generation++
		a.mu.Unlock()

		a.sessions.Save(ctx, user)
		a.publish()
		return user, nil
	}

	profile, err := a.backend.UpdateProfile(ctx, state.User.ID, update)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	user, err := profile.ToUser()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	return user, nil
}

// Snapshot implements ClientAuthService.
func (a *AuthContext) Snapshot() AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()

	state := AuthState{IsLoading: a.loading}
	if a.user != nil {
		u := *a.user
		state.User = &u
	}
	if a.backendSession != nil {
		s := *a.backendSession
		state.BackendSession = &s
	}

	return state
}

// IsLoading reports whether initialization is still running.
func (a *AuthContext) IsLoading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

// Subscribe implements ClientAuthService.
func (a *AuthContext) Subscribe(fn func(AuthState)) func() {
	a.subsMu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	a.subsMu.Unlock()

	return func() {
		a.subsMu.Lock()
		delete(a.subs, id)
		a.subsMu.Unlock()
	}
}

func (a *AuthContext) publish() {
	state := a.Snapshot()

	a.subsMu.Lock()
	fns := make([]func(AuthState), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.subsMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// Close implements ClientAuthService.
func (a *AuthContext) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	unsubscribe := a.unsubscribeBackend
	a.unsubscribeBackend = nil
	a.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}

	a.subsMu.Lock()
	clear(a.subs)
	a.subsMu.Unlock()

	a.waitSignOuts(signOutWait)
}

// waitSignOuts blocks until background sign-outs have returned or timeout
// passes.
func (a *AuthContext) waitSignOuts(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		a.signOuts.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		a.logger.Warn().Dur("timeout", timeout).Msg("backend sign out still running on close")
	}
}
