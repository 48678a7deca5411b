package session

import (
	"encoding/base64"
	"testing"
	"time"
)

func tokenWithPayload(t *testing.T, payload string) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".signature"
}

func TestDecodeClaims(t *testing.T) {
	token := tokenWithPayload(t, `{"sub":"user-7","userType":"poster","email":"p@example.com"}`)
	claims, err := DecodeClaims(token)
	if err != nil {
		t.Fatalf("decode claims: %v", err)
	}
	if claims.Sub != "user-7" {
		t.Fatalf("expected sub user-7, got %q", claims.Sub)
	}
	if claims.UserType != UserTypePoster {
		t.Fatalf("expected poster userType, got %q", claims.UserType)
	}
}

func TestDecodeClaimsPaddedSegment(t *testing.T) {
	// Some issuers emit padded base64; the decoder must tolerate it.
	body := base64.URLEncoding.EncodeToString([]byte(`{"sub":"u1","userType":"seeker"}`))
	token := "header." + body + ".sig"
	claims, err := DecodeClaims(token)
	if err != nil {
		t.Fatalf("decode padded claims: %v", err)
	}
	if claims.UserType != UserTypeSeeker {
		t.Fatalf("expected seeker userType, got %q", claims.UserType)
	}
}

func TestDecodeClaimsRejectsMalformed(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "a.b", "a.!!!.c"} {
		if _, err := DecodeClaims(token); err == nil {
			t.Fatalf("expected error for token %q", token)
		}
	}
}

func TestClaimsExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if (Claims{Exp: now.Unix() - 1}).Expired(now) != true {
		t.Fatal("expected past exp to be expired")
	}
	if (Claims{Exp: now.Unix() + 60}).Expired(now) {
		t.Fatal("expected future exp to not be expired")
	}
	if (Claims{}).Expired(now) {
		t.Fatal("expected missing exp to never expire")
	}
}
