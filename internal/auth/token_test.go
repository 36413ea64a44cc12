package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestCodec(t *testing.T, lifetime time.Duration) *Codec {
	t.Helper()
	c, err := NewCodec([]byte("super-secret"), lifetime)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}
	return c
}

func TestNewCodec_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewCodec(nil, time.Hour)
	if !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestIssueAndValidate_Success(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, time.Hour)

	tok, err := c.Issue("alice@x.com", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := c.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.Login != "alice@x.com" {
		t.Fatalf("login mismatch: got %q", claims.Login)
	}
	if claims.Role != "user" {
		t.Fatalf("role mismatch: got %q", claims.Role)
	}
	if claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time) {
		t.Fatalf("expected expiry in the future, got %v", claims.ExpiresAt)
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	// Issue with a lifetime already in the past.
	c := &Codec{secret: []byte("super-secret"), lifetime: -time.Minute}

	tok, err := c.Issue("u1", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = c.Validate(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired must collapse into ErrInvalidToken, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := newTestCodec(t, time.Hour)
	tok, err := issuer.Issue("u2", "admin")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	other, err := NewCodec([]byte("some-other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}

	_, err = other.Validate(tok)
	if !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("bad signature must collapse into ErrInvalidToken, got %v", err)
	}
}

func TestValidate_TamperedToken(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, time.Hour)
	tok, err := c.Issue("u3", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip one character of the payload.
	b := []byte(tok)
	mid := len(b) / 2
	if b[mid] == 'a' {
		b[mid] = 'b'
	} else {
		b[mid] = 'a'
	}

	_, err = c.Validate(string(b))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected a token error, got %v", err)
	}
}

func TestValidate_MalformedString(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, time.Hour)

	_, err := c.Validate("not.a.token")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestIssue_TokensDifferAcrossTime(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, time.Hour)

	tok1, err := c.Issue("u4", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Expiry has second granularity; step past it.
	time.Sleep(1100 * time.Millisecond)

	tok2, err := c.Issue("u4", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if tok1 == tok2 {
		t.Fatalf("tokens issued at different times must differ")
	}
}
