package services

import (
	"errors"
	"testing"
	"time"

	"github.com/bobo-app/bobo-backend/internal/config"
	"github.com/bobo-app/bobo-backend/internal/dto"
	"github.com/bobo-app/bobo-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// All pool connections must share the single in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Baby{},
		&models.Milestone{},
		&models.LoggedMilestone{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "password123"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("Register() did not issue a token pair")
	}
	if resp.User.Username != "alice" {
		t.Errorf("Register() username = %q, want %q", resp.User.Username, "alice")
	}

	login, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "password123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if login.AccessToken == "" {
		t.Error("Login() did not issue an access token")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())

	if _, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "password123"}); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "different456"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate Register() error = %v, want ErrUsernameTaken", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())

	if _, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "password123"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong password", dto.LoginRequest{Username: "alice", Password: "wrongwrong"}},
		{"unknown user", dto.LoginRequest{Username: "nobody", Password: "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(&tt.req)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestRefreshRotation(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())

	reg, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "password123"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if refreshed.RefreshToken == reg.RefreshToken {
		t.Error("Refresh() did not rotate the refresh token")
	}

	// The presented token is revoked on use.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("reused Refresh() error = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())

	reg, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "password123"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: reg.RefreshToken}); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Refresh() after logout error = %v, want ErrInvalidToken", err)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	reg, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "password123"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	userID := reg.User.ID

	baby := models.Baby{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        "Maya",
		DateOfBirth: time.Now().AddDate(-1, 0, 0),
	}
	if err := db.Create(&baby).Error; err != nil {
		t.Fatalf("failed to create baby: %v", err)
	}
	milestone := models.Milestone{ID: uuid.New(), Month: 12, Area: "Gross Motor", Description: "Pulls up to stand"}
	if err := db.Create(&milestone).Error; err != nil {
		t.Fatalf("failed to create milestone: %v", err)
	}
	logged := models.LoggedMilestone{ID: uuid.New(), BabyID: baby.ID, MilestoneID: milestone.ID}
	if err := db.Create(&logged).Error; err != nil {
		t.Fatalf("failed to create logged milestone: %v", err)
	}

	if err := svc.DeleteAccount(userID); err != nil {
		t.Fatalf("DeleteAccount() error = %v", err)
	}

	var count int64
	db.Model(&models.User{}).Where("id = ?", userID).Count(&count)
	if count != 0 {
		t.Error("user row survived account deletion")
	}
	db.Model(&models.Baby{}).Where("user_id = ?", userID).Count(&count)
	if count != 0 {
		t.Error("baby rows survived account deletion")
	}
	db.Model(&models.LoggedMilestone{}).Where("baby_id = ?", baby.ID).Count(&count)
	if count != 0 {
		t.Error("logged milestone rows survived account deletion")
	}
	db.Model(&models.RefreshToken{}).Where("user_id = ?", userID).Count(&count)
	if count != 0 {
		t.Error("refresh tokens survived account deletion")
	}

	if err := svc.DeleteAccount(userID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("second DeleteAccount() error = %v, want ErrUserNotFound", err)
	}
}
