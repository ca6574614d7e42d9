package services

import (
	"testing"

	intconfig "backend/internal/config"

	"golang.org/x/crypto/bcrypt"
)

func TestAdminLoginPlainPassword(t *testing.T) {
	svc := AuthService{Env: intconfig.Env{
		AdminUser: "admin",
		AdminPass: "secret",
		JWTSecret: "test-secret",
	}}

	token, ok, err := svc.Login("admin", "secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if !ok || token == "" {
		t.Fatalf("expected success with token, got ok=%v token=%q", ok, token)
	}

	if _, ok, _ := svc.Login("admin", "wrong"); ok {
		t.Fatalf("wrong password accepted")
	}
	if _, ok, _ := svc.Login("root", "secret"); ok {
		t.Fatalf("wrong username accepted")
	}
}

func TestAdminLoginBcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}

	svc := AuthService{Env: intconfig.Env{
		AdminUser:     "admin",
		AdminPass:     "ignored-when-hash-set",
		AdminPassHash: string(hash),
		JWTSecret:     "test-secret",
	}}

	if _, ok, err := svc.Login("admin", "hunter2"); err != nil || !ok {
		t.Fatalf("hash login failed: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := svc.Login("admin", "ignored-when-hash-set"); ok {
		t.Fatalf("plain password accepted despite configured hash")
	}
}

func TestAdminLoginFailsClosedWithoutPassword(t *testing.T) {
	svc := AuthService{Env: intconfig.Env{AdminUser: "admin", JWTSecret: "test-secret"}}
	if _, ok, _ := svc.Login("admin", ""); ok {
		t.Fatalf("empty configured password must never authenticate")
	}
}
