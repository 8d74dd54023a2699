package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/standup/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/logging"
	"github.com/dmitrijs2005/standup/internal/models"
)

type SessionState string

const (
	StateLoading       SessionState = "loading"
	StateAnonymous     SessionState = "anonymous"
	StateGuest         SessionState = "guest"
	StateAuthenticated SessionState = "authenticated"
)

// Session is a point-in-time view of the identity session. Authenticating
// is set while a sign-in is in flight; Identity is set only when
// authenticated.
type Session struct {
	State          SessionState
	Authenticating bool
	Identity       *models.Identity
}

// Authenticator exchanges a provider token for a server session.
type Authenticator interface {
	SignIn(ctx context.Context, provider, providerToken string) (*models.Identity, error)
	SignOut(ctx context.Context) error
	SetTokens(access, refresh string)
	Tokens() (access, refresh string)
}

// ProviderTokenSource obtains an access token from an identity provider.
type ProviderTokenSource interface {
	Token(ctx context.Context, provider string) (string, error)
}

type SessionService interface {
	Init(ctx context.Context) (Session, error)
	SignIn(ctx context.Context, provider string) (Session, error)
	SignOut(ctx context.Context) error
	StartGuest(ctx context.Context) error
	State() Session
	Subscribe(fn func(Session)) (dispose func())
	PersistTokens(ctx context.Context, access, refresh string) error
}

type sessionService struct {
	repo      metadata.Repository
	auth      Authenticator
	providers ProviderTokenSource
	logger    logging.Logger

	mu        sync.Mutex
	session   Session
	listeners map[int]func(Session)
	nextID    int
}

func NewSessionService(repo metadata.Repository, auth Authenticator, providers ProviderTokenSource, l logging.Logger) SessionService {
	return &sessionService{
		repo:      repo,
		auth:      auth,
		providers: providers,
		logger:    l.With("module", "session"),
		session:   Session{State: StateLoading},
		listeners: map[int]func(Session){},
	}
}

func (s *sessionService) State() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySession(s.session)
}

func copySession(in Session) Session {
	if in.Identity != nil {
		id := *in.Identity
		in.Identity = &id
	}
	return in
}

func (s *sessionService) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	cur := copySession(s.session)
	s.mu.Unlock()

	fn(cur)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// set replaces the session and notifies listeners.
func (s *sessionService) set(next Session) {
	s.mu.Lock()
	fns := s.storeLocked(next)
	s.mu.Unlock()
	notify(fns, next)
}

// storeLocked replaces the session and returns the listeners to notify.
// s.mu must be held.
func (s *sessionService) storeLocked(next Session) []func(Session) {
	s.session = next
	fns := make([]func(Session), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	return fns
}

func notify(fns []func(Session), next Session) {
	for _, fn := range fns {
		fn(copySession(next))
	}
}

// Init restores the session from local storage: a persisted signed-in
// identity wins, then the guest flag, otherwise anonymous.
func (s *sessionService) Init(ctx context.Context) (Session, error) {
	identity, access, refresh, err := s.loadPersisted(ctx)
	if err != nil {
		s.set(Session{State: StateAnonymous})
		return s.State(), err
	}
	if identity != nil && refresh != "" {
		s.auth.SetTokens(access, refresh)
		s.set(Session{State: StateAuthenticated, Identity: identity})
		return s.State(), nil
	}

	guest, err := s.repo.Get(ctx, metadata.KeyGuestMode)
	if err != nil {
		s.set(Session{State: StateAnonymous})
		return s.State(), err
	}
	if string(guest) == "true" {
		s.set(Session{State: StateGuest})
	} else {
		s.set(Session{State: StateAnonymous})
	}
	return s.State(), nil
}

func (s *sessionService) loadPersisted(ctx context.Context) (*models.Identity, string, string, error) {
	raw, err := s.repo.Get(ctx, metadata.KeyIdentity)
	if err != nil || len(raw) == 0 {
		return nil, "", "", err
	}
	var identity models.Identity
	if err := json.Unmarshal(raw, &identity); err != nil || identity.ID == "" {
		s.logger.Warn(ctx, "ignoring malformed persisted identity", "error", err)
		return nil, "", "", nil
	}

	access, err := s.repo.Get(ctx, metadata.KeyAccessToken)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.repo.Get(ctx, metadata.KeyRefreshToken)
	if err != nil {
		return nil, "", "", err
	}
	return &identity, string(access), string(refresh), nil
}

// SignIn runs the provider flow and exchanges its token with the server. On
// failure the Authenticating flag is cleared and the error wraps
// ErrSignInFailed.
func (s *sessionService) SignIn(ctx context.Context, provider string) (Session, error) {
	s.mu.Lock()
	attempt := s.session
	switch {
	case attempt.Authenticating:
		s.mu.Unlock()
		return copySession(attempt), ErrSignInInProgress
	case attempt.State == StateAuthenticated:
		s.mu.Unlock()
		return copySession(attempt), ErrAlreadySignedIn
	}
	attempt.Authenticating = true
	fns := s.storeLocked(attempt)
	s.mu.Unlock()
	notify(fns, attempt)

	// A failed attempt keeps whatever the session became meanwhile, e.g.
	// guest mode started while the provider flow was open.
	fail := func(err error) (Session, error) {
		s.mu.Lock()
		restored := s.session
		restored.Authenticating = false
		fns := s.storeLocked(restored)
		s.mu.Unlock()
		notify(fns, restored)

		s.logger.Warn(ctx, "sign-in failed", "provider", provider, "error", err)
		return copySession(restored), fmt.Errorf("%w: %w", ErrSignInFailed, err)
	}

	if !common.IsKnownProvider(provider) {
		return fail(fmt.Errorf("%w: %q", common.ErrUnknownProvider, provider))
	}

	token, err := s.providers.Token(ctx, provider)
	if err != nil {
		return fail(err)
	}

	identity, err := s.auth.SignIn(ctx, provider, token)
	if err != nil {
		return fail(err)
	}

	if err := s.persist(ctx, identity); err != nil {
		s.logger.Warn(ctx, "session not persisted", "error", err)
	}

	next := Session{State: StateAuthenticated, Identity: identity}
	s.set(next)
	return copySession(next), nil
}

func (s *sessionService) persist(ctx context.Context, identity *models.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, metadata.KeyIdentity, raw); err != nil {
		return err
	}
	access, refresh := s.auth.Tokens()
	if err := s.PersistTokens(ctx, access, refresh); err != nil {
		return err
	}
	return s.repo.Delete(ctx, metadata.KeyGuestMode)
}

// PersistTokens stores a token pair, e.g. after a transparent refresh.
func (s *sessionService) PersistTokens(ctx context.Context, access, refresh string) error {
	if err := s.repo.Set(ctx, metadata.KeyAccessToken, []byte(access)); err != nil {
		return err
	}
	return s.repo.Set(ctx, metadata.KeyRefreshToken, []byte(refresh))
}

// SignOut revokes the server session and forgets the persisted identity.
// Local entries are kept.
func (s *sessionService) SignOut(ctx context.Context) error {
	if s.State().State != StateAuthenticated {
		return nil
	}

	if err := s.auth.SignOut(ctx); err != nil {
		s.logger.Warn(ctx, "server sign-out failed", "error", err)
	}

	err := s.repo.Delete(ctx, metadata.KeyIdentity, metadata.KeyAccessToken, metadata.KeyRefreshToken)
	s.set(Session{State: StateAnonymous})
	return err
}

// StartGuest enters local-only guest mode and remembers it across restarts.
func (s *sessionService) StartGuest(ctx context.Context) error {
	cur := s.State()
	if cur.State == StateAuthenticated {
		return ErrAlreadySignedIn
	}
	if err := s.repo.Set(ctx, metadata.KeyGuestMode, []byte("true")); err != nil {
		return err
	}
	s.set(Session{State: StateGuest, Authenticating: cur.Authenticating})
	return nil
}
