package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	jwtsvc "gymhub/internal/pkg/jwt"
)

func testService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(NewRepository(db), jwtsvc.New("test_secret_key_32_characters_min", time.Hour))
}

func TestRegisterForcesMemberRole(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	// Role in the body is ignored on the public endpoint.
	resp, err := svc.Register(ctx, &RegisterRequest{
		Email: "sneaky@example.com", Password: "password123", Name: "Sneaky", Role: "SUPER_ADMIN",
	}, false)
	if err != nil {
		t.Fatal(err)
	}
	if resp.User.Role != RoleMember {
		t.Errorf("role = %v, want MEMBER", resp.User.Role)
	}

	// The admin path honors it.
	resp, err = svc.Register(ctx, &RegisterRequest{
		Email: "owner@example.com", Password: "password123", Name: "Owner", Role: "GYM_OWNER",
	}, true)
	if err != nil {
		t.Fatal(err)
	}
	if resp.User.Role != RoleGymOwner {
		t.Errorf("role = %v, want GYM_OWNER", resp.User.Role)
	}

	if _, err := svc.Register(ctx, &RegisterRequest{
		Email: "bad@example.com", Password: "password123", Name: "Bad", Role: "WIZARD",
	}, true); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}

func TestRegisterNormalizesAndDeduplicatesEmail(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterRequest{
		Email: "User@Example.COM", Password: "password123", Name: "First",
	}, false); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(ctx, &RegisterRequest{
		Email: " user@example.com ", Password: "password123", Name: "Second",
	}, false); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterRequest{
		Email: "user@example.com", Password: "password123", Name: "User",
	}, false); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Login(ctx, &LoginRequest{Email: "user@example.com", Password: "password123"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Error("login should issue a token")
	}

	if _, err := svc.Login(ctx, &LoginRequest{Email: "user@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, &LoginRequest{Email: "ghost@example.com", Password: "password123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}
