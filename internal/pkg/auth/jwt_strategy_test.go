package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewJWTStrategy_Defaults(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if strategy == nil {
		t.Fatal("expected strategy instance")
	}
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
	if strategy.now == nil {
		t.Fatal("expected default clock")
	}
}

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{Issuer: "attivita", Audience: "attivita-api"})
	token, err := strategy.IssueToken("user-42")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("unexpected user id: %q", userID)
	}
}

func TestJWTStrategy_ClaimCarriesIdentity(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{Issuer: "attivita", Audience: "attivita-api"})
	token, err := strategy.IssueToken("user-7")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, &userClaims{})
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	claims, ok := parsed.Claims.(*userClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if claims.UserID != "user-7" {
		t.Fatalf("expected idUser claim user-7, got %q", claims.UserID)
	}
	if claims.Issuer != "attivita" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "attivita-api" {
		t.Fatalf("unexpected audience %v", claims.Audience)
	}
}

func TestJWTStrategy_ExpiresAfterTTL(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := issuedAt
	strategy := NewJWTStrategy("secret", Options{
		Issuer:   "attivita",
		Audience: "attivita-api",
		Now:      func() time.Time { return clock },
	})

	token, err := strategy.IssueToken("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	clock = issuedAt.Add(59 * time.Minute)
	if _, err := strategy.ParseToken(token); err != nil {
		t.Fatalf("expected token valid before expiry, got %v", err)
	}

	clock = issuedAt.Add(time.Hour + time.Minute)
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestJWTStrategy_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret", Options{Issuer: "attivita", Audience: "attivita-api"})
	verifier := NewJWTStrategy("other-secret", Options{Issuer: "attivita", Audience: "attivita-api"})

	token, err := issuer.IssueToken("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_RejectsWrongIssuerOrAudience(t *testing.T) {
	issuer := NewJWTStrategy("secret", Options{Issuer: "someone-else", Audience: "attivita-api"})
	verifier := NewJWTStrategy("secret", Options{Issuer: "attivita", Audience: "attivita-api"})

	token, err := issuer.IssueToken("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}

	issuer = NewJWTStrategy("secret", Options{Issuer: "attivita", Audience: "another-api"})
	token, err = issuer.IssueToken("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong audience, got %v", err)
	}
}

func TestJWTStrategy_RejectsGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{Issuer: "attivita", Audience: "attivita-api"})
	if _, err := strategy.ParseToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_RejectsMissingIdentityClaim(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{Issuer: "attivita", Audience: "attivita-api"})
	now := time.Now()
	claims := userClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "attivita",
			Audience:  jwt.ClaimStrings{"attivita-api"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_Name(t *testing.T) {
	if got := NewJWTStrategy("secret", Options{}).Name(); got != "jwt" {
		t.Fatalf("unexpected name %q", got)
	}
}
