package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/attivita/internal/domain/errors"
	pkgAuth "github.com/polkiloo/attivita/internal/pkg/auth"
	testhelpers "github.com/polkiloo/attivita/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID string) (string, error) {
			return "token-" + userID, nil
		},
		ParseFn: func(token string) (string, error) {
			const prefix = "token-"
			if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
				return "", pkgAuth.ErrInvalidToken
			}
			return token[len(prefix):], nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, err := uc.Register(ctx, "alice@uni.it", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected user to have identity assigned")
	}
	stored, err := repo.GetByEmail(ctx, "alice@uni.it")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterDuplicateEmailCreatesTwoIdentities(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	first, err := uc.Register(ctx, "bob@uni.it", "secret")
	if err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	second, err := uc.Register(ctx, "bob@uni.it", "secret")
	if err != nil {
		t.Fatalf("unexpected error on second register: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct identities, got %q twice", first.ID)
	}
}

func TestAuthUseCaseRegisterEmptyCredentials(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, err := uc.Register(ctx, "", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty email, got %v", err)
	}
	if _, err := uc.Register(ctx, "carol@uni.it", ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty password, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, err := uc.Register(ctx, "carol@uni.it", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, token, err := uc.Authenticate(ctx, "carol@uni.it", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-"+user.ID {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseAuthenticateFailuresIndistinguishable(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, err := uc.Register(ctx, "dave@uni.it", "right"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPassword := uc.Authenticate(ctx, "dave@uni.it", "wrong")
	_, _, unknownEmail := uc.Authenticate(ctx, "ghost@uni.it", "whatever")

	if !errors.Is(wrongPassword, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("expected indistinguishable failures, got %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestAuthUseCaseAuthenticateRepositoryFailure(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Err = errors.New("boom")
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	if _, _, err := uc.Authenticate(context.Background(), "any@uni.it", "pass"); err == nil || errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected storage error to pass through, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	id, err := uc.ParseToken("token-user-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != "user-42" {
		t.Fatalf("expected id user-42, got %q", id)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if _, err := uc.ParseToken("bad"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseGetByID(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, err := uc.Register(ctx, "erin@uni.it", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	fetched, err := uc.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if fetched.Email != "erin@uni.it" {
		t.Fatalf("unexpected email %q", fetched.Email)
	}

	if _, err := uc.GetByID(ctx, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
