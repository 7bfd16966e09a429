package pasetotoken

import (
	"testing"

	"github.com/google/uuid"
)

func newLocalManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		Mode:     ModeLocal,
		Issuer:   "inkwell-identity",
		Audience: "inkwell-api",
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestIssueAndVerifyLocal(t *testing.T) {
	m := newLocalManager(t)

	accountID := uuid.New()
	sessionID := uuid.New()

	token, err := m.IssueAccess(accountID, &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.AccountID != accountID {
		t.Errorf("account id = %s, want %s", claims.AccountID, accountID)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("session id = %v, want %s", claims.SessionID, sessionID)
	}
	if claims.IsExpired() {
		t.Error("fresh token reported expired")
	}
	if claims.TokenID == "" {
		t.Error("missing jti")
	}
}

func TestIssueAndVerifyPublic(t *testing.T) {
	m, err := New(Config{
		Mode:     ModePublic,
		Issuer:   "inkwell-identity",
		Audience: "inkwell-api",
	}, NewPublicKeys())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	accountID := uuid.New()
	token, err := m.IssueAccess(accountID, nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.AccountID != accountID {
		t.Errorf("account id = %s, want %s", claims.AccountID, accountID)
	}
	if claims.SessionID != nil {
		t.Errorf("session id = %v, want nil", claims.SessionID)
	}
}

func TestVerifyForeignToken(t *testing.T) {
	issuer := newLocalManager(t)
	verifier := newLocalManager(t) // different symmetric key

	token, err := issuer.IssueAccess(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("token minted under another key verified")
	}
}

func TestVerifyGarbage(t *testing.T) {
	m := newLocalManager(t)
	if _, err := m.Verify("v4.local.not-a-token"); err == nil {
		t.Fatal("garbage token verified")
	}
}

func TestNewConfigValidation(t *testing.T) {
	keys := NewLocalKeys()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "mode mismatch", cfg: Config{Mode: ModePublic, Issuer: "i", Audience: "a"}},
		{name: "missing issuer", cfg: Config{Mode: ModeLocal, Audience: "a"}},
		{name: "missing audience", cfg: Config{Mode: ModeLocal, Issuer: "i"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg, keys); err == nil {
				t.Fatal("expected config error")
			}
		})
	}
}

func TestLoadKeysValidation(t *testing.T) {
	tests := []struct {
		name string
		in   KeyStrings
	}{
		{name: "unknown mode", in: KeyStrings{Mode: "v2"}},
		{name: "local without key", in: KeyStrings{Mode: ModeLocal}},
		{name: "public without keys", in: KeyStrings{Mode: ModePublic}},
		{name: "bad symmetric hex", in: KeyStrings{Mode: ModeLocal, SymmetricHex: "zz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeys(tt.in); err == nil {
				t.Fatal("expected key error")
			}
		})
	}
}
