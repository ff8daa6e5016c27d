package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"

	"github.com/bearcourt/bear-court-api/config"
	"github.com/bearcourt/bear-court-api/models"
)

// tokenTTL is how long an anonymous identity stays valid. Participants are
// anonymous, so an expired token simply means a fresh identity next visit.
const tokenTTL = 365 * 24 * time.Hour

var authenticator auth.Authenticator
var cache store.Cache
var tokenSecret []byte

// Middleware authenticates the anonymous bearer token and stashes the caller's
// identity in the request context
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		// websocket clients cannot set headers, they pass the token as a query param
		if r.Header.Get("Authorization") == "" {
			if token := r.URL.Query().Get("token"); token != "" {
				r.Header.Set("Authorization", "Bearer "+token)
			}
		}

		user, err := authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), user.ID())))
	})
}

// CreateAnonymousToken mints a stable anonymous identity: a uuid subject
// wrapped in a signed JWT. The token is also primed into the bearer cache so
// the first authenticated request skips the signature check.
func CreateAnonymousToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	uid := uuid.New().String()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tokenSecret)
	if err != nil {
		config.ErrorKindStatus("anonymous sign-in failed", string(models.ErrIdentityUnavailable),
			http.StatusInternalServerError, w, err)
		return
	}

	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Append(tokenStrategy, signed, auth.NewDefaultUser(uid, uid, nil, nil), r)

	b, err := json.Marshal(models.TokenResponse{Token: signed, UID: uid})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

// SetupGoGuardian sets up the go-guardian middleware. Tokens verified against
// the JWT signature on a cache miss, so identities survive process restarts.
func SetupGoGuardian(conf *config.Config) {
	tokenSecret = []byte(conf.TokenSecret)
	if len(tokenSecret) == 0 {
		// dev fallback; identities will not survive a restart without a configured secret
		tokenSecret = []byte(uuid.New().String())
		zap.S().Warn("TOKEN_SECRET is not set, generated an ephemeral signing secret")
	}

	authenticator = auth.New()
	cache = store.NewFIFO(context.Background(), 24*time.Hour)
	tokenStrategy := bearer.New(verifyToken, cache)
	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
}

// verifyToken is the cache-miss path: parse and verify the JWT, then hand the
// subject back as the authenticated identity
func verifyToken(ctx context.Context, r *http.Request, token string) (auth.Info, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return tokenSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return auth.NewDefaultUser(claims.Subject, claims.Subject, nil, nil), nil
}
