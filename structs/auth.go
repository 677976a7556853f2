package structs

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the only role issued in access tokens.
const RoleAdmin = "admin"

type ArgonParams struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

type AuthClaims struct {
	Sub   uuid.UUID `json:"sub"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Iat   time.Time `json:"iat"`
	Exp   time.Time `json:"exp"`
	Jti   uuid.UUID `json:"jti"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Admin     AdminInfo `json:"admin"`
}

type AdminInfo struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type SetupRequest struct {
	SetupKey string `json:"setupKey" validate:"required"`
}

type SetupResult struct {
	AdminCreated bool   `json:"adminCreated"`
	AdminEmail   string `json:"adminEmail"`
	StockCreated int    `json:"stockCreated"`
}

type ResetStockRequest struct {
	ResetKey string `json:"resetKey" validate:"required"`
}
