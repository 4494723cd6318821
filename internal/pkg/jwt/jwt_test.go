package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test_secret_key_32_characters_min", time.Hour)

	token, err := svc.GenerateToken(42, "GYM_OWNER")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 || claims.Role != "GYM_OWNER" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := New("test_secret_key_32_characters_min", -time.Minute)

	token, err := svc.GenerateToken(1, "MEMBER")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expired token should not validate")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := New("secret_a_32_characters_long_min!", time.Hour).GenerateToken(1, "MEMBER")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New("secret_b_32_characters_long_min!", time.Hour).ValidateToken(token); err == nil {
		t.Error("token signed with a different secret should not validate")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := New("x", time.Hour).ValidateToken("not.a.token"); err == nil {
		t.Error("garbage should not validate")
	}
}
