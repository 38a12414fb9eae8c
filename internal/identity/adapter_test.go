package identity

import (
	"testing"
	"time"

	pkgerrors "github.com/fitnexus/fitnexus-backend/pkg/errors"
	"github.com/golang-jwt/jwt/v5"
)

func mintCredential(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("issuer-side-secret"))
	if err != nil {
		t.Fatalf("signing test credential: %v", err)
	}
	return signed
}

func TestDecodeExtractsProfileClaims(t *testing.T) {
	adapter := NewTokenAdapter()
	credential := mintCredential(t, jwt.MapClaims{
		"sub":     "108234567890",
		"name":    "Nexus Athlete",
		"email":   "athlete@nexus.fit",
		"picture": "https://i.pravatar.cc/150?u=nexus",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	claims, err := adapter.Decode(credential)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if claims.Subject != "108234567890" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
	if claims.Name != "Nexus Athlete" || claims.Email != "athlete@nexus.fit" {
		t.Fatalf("profile claims not extracted: %+v", claims)
	}
	if claims.PictureURL == "" {
		t.Fatal("picture claim not extracted")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	adapter := NewTokenAdapter()

	for _, credential := range []string{"", "   ", "not-a-jwt", "a.b"} {
		_, err := adapter.Decode(credential)
		if err == nil {
			t.Fatalf("expected error for credential %q", credential)
		}
		if pkgerrors.As(err).Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected unauthorized code, got %v", err)
		}
	}
}

func TestDecodeRejectsMissingSubject(t *testing.T) {
	adapter := NewTokenAdapter()
	credential := mintCredential(t, jwt.MapClaims{"name": "No Subject"})

	if _, err := adapter.Decode(credential); err == nil {
		t.Fatal("expected error for credential without subject")
	}
}
