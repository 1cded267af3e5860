package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/jask/navshell/internal/database"
	"github.com/jask/navshell/internal/database/repository"
	"github.com/jask/navshell/internal/logx"
	"github.com/jask/navshell/internal/secrets"
	"github.com/jask/navshell/internal/state"
)

const tokenIssuer = "navshell"

var (
	ErrNoSession          = errors.New("no session")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrUserExists         = errors.New("name already taken")
	ErrInvalidName        = errors.New("name must be 2-32 letters, digits, '-' or '_'")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrRateLimited        = errors.New("too many attempts, try again shortly")
)

// SecretStore is the subset of the secrets store the auth service needs.
type SecretStore interface {
	Put(name, value string) error
	Get(name string) (string, error)
	Delete(name string) error
}

// AuthService restores, creates and ends local sessions. The session id is
// carried in a signed token kept in the secret store; the session row is
// the source of truth for revocation and expiry.
type AuthService struct {
	Users    *repository.UserRepo
	Sessions *repository.SessionRepo
	Secrets  SecretStore
	TTL      time.Duration
	// HashCost is the bcrypt cost used at sign up.
	HashCost int
	Now      func() time.Time

	key     []byte
	limiter *rate.Limiter
}

// NewAuthService wires the service. An empty secret makes it generate a
// signing key once and keep it in the secret store.
func NewAuthService(users *repository.UserRepo, sessions *repository.SessionRepo, store SecretStore, secret string, ttl time.Duration) (*AuthService, error) {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	key, err := signingKey(store, secret)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		Users:    users,
		Sessions: sessions,
		Secrets:  store,
		TTL:      ttl,
		HashCost: bcrypt.DefaultCost,
		Now:      database.Now,
		key:      key,
		limiter:  rate.NewLimiter(rate.Every(2*time.Second), 5),
	}, nil
}

func signingKey(store SecretStore, secret string) ([]byte, error) {
	if s := strings.TrimSpace(secret); s != "" {
		return []byte(s), nil
	}
	existing, err := store.Get(secrets.SigningKey)
	if err == nil && existing != "" {
		return []byte(existing), nil
	}
	if err != nil && !errors.Is(err, secrets.ErrNotFound) {
		return nil, fmt.Errorf("load signing key: %w", err)
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	generated := hex.EncodeToString(buf)
	if err := store.Put(secrets.SigningKey, generated); err != nil {
		return nil, fmt.Errorf("store signing key: %w", err)
	}
	return []byte(generated), nil
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return database.Now()
}

// Authenticate restores the user of the stored session.
func (s *AuthService) Authenticate(ctx context.Context) (*state.User, error) {
	raw, err := s.Secrets.Get(secrets.SessionToken)
	if errors.Is(err, secrets.ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}
	claims, err := s.parse(raw)
	if err != nil {
		s.forgetToken()
		return nil, fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	if !claims.VerifyExpiresAt(s.now(), true) {
		s.forgetToken()
		return nil, ErrSessionExpired
	}
	sess, err := s.Sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil || !sess.Active(s.now()) {
		s.forgetToken()
		return nil, ErrSessionExpired
	}
	u, err := s.Users.Get(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u == nil {
		s.forgetToken()
		return nil, ErrNoSession
	}
	logx.Debug("session restored", "user_id", u.ID, "session_id", sess.ID)
	return toStateUser(u), nil
}

// Login checks credentials and starts a session.
func (s *AuthService) Login(ctx context.Context, name, password string) (*state.User, error) {
	if !s.limiter.Allow() {
		return nil, ErrRateLimited
	}
	u, err := s.Users.ByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.startSession(ctx, u.ID); err != nil {
		return nil, err
	}
	logx.Info("logged in", "user_id", u.ID)
	return toStateUser(u), nil
}

// SignUp creates an account and starts a session for it.
func (s *AuthService) SignUp(ctx context.Context, name, password string) (*state.User, error) {
	name = strings.TrimSpace(name)
	if !validName(name) {
		return nil, ErrInvalidName
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}
	existing, err := s.Users.ByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}
	cost := s.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := repository.User{ID: uuid.NewString(), Name: name, PasswordHash: string(hash), CreatedAt: s.now()}
	if err := s.Users.Insert(ctx, u); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if err := s.startSession(ctx, u.ID); err != nil {
		return nil, err
	}
	logx.Info("signed up", "user_id", u.ID)
	return toStateUser(&u), nil
}

// Logout revokes the stored session and forgets its token. Without a
// stored session it does nothing.
func (s *AuthService) Logout(ctx context.Context) error {
	raw, err := s.Secrets.Get(secrets.SessionToken)
	if errors.Is(err, secrets.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if claims, err := s.parse(raw); err == nil {
		if err := s.Sessions.Revoke(ctx, claims.ID, s.now()); err != nil {
			return fmt.Errorf("revoke session: %w", err)
		}
	}
	if err := s.Secrets.Delete(secrets.SessionToken); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	logx.Info("logged out")
	return nil
}

func (s *AuthService) startSession(ctx context.Context, userID string) error {
	now := s.now()
	sess := repository.Session{ID: uuid.NewString(), UserID: userID, CreatedAt: now, ExpiresAt: now.Add(s.TTL)}
	if err := s.Sessions.Insert(ctx, sess); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	claims := jwt.RegisteredClaims{
		ID:        sess.ID,
		Subject:   userID,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	if err := s.Secrets.Put(secrets.SessionToken, signed); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	return nil
}

// parse checks the signature only; expiry is checked against s.now.
func (s *AuthService) parse(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation(), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Issuer != tokenIssuer || claims.ID == "" {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

func (s *AuthService) forgetToken() {
	if err := s.Secrets.Delete(secrets.SessionToken); err != nil {
		logx.Warn("drop stale session token failed", "error", err.Error())
	}
}

func validName(name string) bool {
	n := len([]rune(name))
	if n < 2 || n > 32 {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

func toStateUser(u *repository.User) *state.User {
	out := &state.User{ID: u.ID, Name: u.Name}
	if u.AvatarURL != nil {
		out.AvatarURL = *u.AvatarURL
	}
	return out
}
