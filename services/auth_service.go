package services

import (
	"context"
	"errors"
	"fmt"
	"photomagnet_server/lib"
	"photomagnet_server/repository"
	"photomagnet_server/structs"
	"photomagnet_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var DefaultParams = &structs.ArgonParams{
	Memory:  64 * 1024, // 64 MB
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

var (
	ErrInvalidSetupKey = fmt.Errorf("%w: invalid setup key", lib.ErrForbidden)
	ErrInvalidResetKey = fmt.Errorf("%w: invalid reset key", lib.ErrForbidden)
)

type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	admins       repository.AdminRepository
	stockService *StockService
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, admins repository.AdminRepository, stockService *StockService) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		admins:       admins,
		stockService: stockService,
	}
}

// Login checks the admin credentials and issues an access token. Unknown
// emails and wrong passwords both yield lib.ErrInvalidCredentials.
func (as *AuthService) Login(ctx context.Context, req *structs.LoginRequest) (*structs.LoginResponse, error) {
	startTime := time.Now()

	admin, err := as.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if lib.IsNotFound(err) {
			as.logger.Debug("Admin not found during login attempt", gecho.Field("email", req.Email))
			return nil, lib.ErrInvalidCredentials
		}
		as.logger.Error("Unexpected database error during login", gecho.Field("error", err))
		return nil, err
	}

	valid, err := as.VerifyPassword(req.Password, admin.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("admin_id", admin.Id),
		)
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt", gecho.Field("email", req.Email))
		return nil, lib.ErrInvalidCredentials
	}

	token, expiresAt, err := as.GenerateAccessToken(admin)
	if err != nil {
		as.logger.Error("Failed to generate access token", gecho.Field("error", err), gecho.Field("admin_id", admin.Id))
		return nil, err
	}

	as.logger.Debug("Admin logged in successfully",
		gecho.Field("admin_id", admin.Id),
		gecho.Field("elapsed_time_ms", time.Since(startTime).Milliseconds()),
	)

	return &structs.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin: structs.AdminInfo{
			Id:    admin.Id,
			Email: admin.Email,
		},
	}, nil
}

// HashPassword hashes a plain-text password with argon2id
func (as *AuthService) HashPassword(password string, p *structs.ArgonParams) (string, error) {
	return lib.EncodeArgon2Hash(password, p)
}

// VerifyPassword verifies a plain-text password against a hashed password
func (as *AuthService) VerifyPassword(password, hashedPassword string) (bool, error) {
	return lib.VerifyArgon2Hash(password, hashedPassword)
}

// GenerateAccessToken generates a JWT access token for the given admin
func (as *AuthService) GenerateAccessToken(admin *tables.Admin) (string, time.Time, error) {
	now := time.Now()
	exp := as.GetAccessTokenExpiration(now)

	claims := &structs.AuthClaims{
		Sub:   admin.Id,
		Email: admin.Email,
		Role:  structs.RoleAdmin,
		Iat:   now,
		Exp:   exp,
		Jti:   uuid.New(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.Sub.String(),
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   claims.Iat.Unix(),
		"exp":   claims.Exp.Unix(),
		"jti":   claims.Jti.String(),
	})

	signed, err := token.SignedString([]byte(as.GetAccessTokenSecret()))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// GetAccessTokenExpiration returns the expiration time for a token issued at now
func (as *AuthService) GetAccessTokenExpiration(now time.Time) time.Time {
	return now.Add(as.cfg.Auth.AccessTokenExpiry)
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}

// Setup creates the bootstrap admin when it does not exist yet and seeds the
// default stock rows.
func (as *AuthService) Setup(ctx context.Context, setupKey string) (*structs.SetupResult, error) {
	if !lib.SecureCompareString(setupKey, as.cfg.Setup.SetupKey) {
		as.logger.Warn("Setup attempted with an invalid key")
		return nil, ErrInvalidSetupKey
	}

	email, password := as.cfg.Setup.AdminEmail, as.cfg.Setup.AdminPassword
	if email == "" || password == "" {
		return nil, lib.Validationf("ADMIN_EMAIL and ADMIN_PASSWORD must be configured")
	}

	result := &structs.SetupResult{AdminEmail: email}

	_, err := as.admins.FindByEmail(ctx, email)
	switch {
	case err == nil:
		as.logger.Info("Admin already exists, skipping creation", gecho.Field("email", email))
	case errors.Is(err, lib.ErrNotFound):
		hash, err := as.HashPassword(password, DefaultParams)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}

		_, err = as.admins.Create(ctx, &tables.Admin{
			Id:           uuid.New(),
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			return nil, fmt.Errorf("create admin: %w", err)
		}
		result.AdminCreated = true
		as.logger.Info("Admin created", gecho.Field("email", email))
	default:
		return nil, fmt.Errorf("find admin: %w", err)
	}

	created, err := as.stockService.Seed(ctx, as.cfg.Setup.DefaultStock)
	if err != nil {
		return nil, err
	}
	result.StockCreated = created

	return result, nil
}

// ResetStock deletes every stock row. Setup recreates them.
func (as *AuthService) ResetStock(ctx context.Context, resetKey string) (int, error) {
	if !lib.SecureCompareString(resetKey, as.cfg.Setup.ResetStockKey) {
		as.logger.Warn("Stock reset attempted with an invalid key")
		return 0, ErrInvalidResetKey
	}

	return as.stockService.Reset(ctx)
}
