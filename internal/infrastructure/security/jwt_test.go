package security

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")

	access, refresh, err := tm.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	uid, err := tm.ValidateAccessToken(access)
	if err != nil || uid != "user-123" {
		t.Fatalf("ValidateAccessToken: uid=%q err=%v", uid, err)
	}
	uid, err = tm.ValidateRefreshToken(refresh)
	if err != nil || uid != "user-123" {
		t.Fatalf("ValidateRefreshToken: uid=%q err=%v", uid, err)
	}
}

func TestTokenTypeAndSecretMismatch(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")
	access, refresh, err := tm.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// refresh-токен подписан другим секретом и с другим type
	if _, err := tm.ValidateAccessToken(refresh); err == nil {
		t.Fatalf("refresh token accepted as access")
	}
	if _, err := tm.ValidateRefreshToken(access); err == nil {
		t.Fatalf("access token accepted as refresh")
	}

	other := NewTokenManager("wrong", "wrong")
	if _, err := other.ValidateAccessToken(access); err == nil {
		t.Fatalf("token accepted with wrong secret")
	}
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("password stored in plain text")
	}
	if err := h.Compare(hash, "secret123"); err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatalf("Compare accepted wrong password")
	}
}
