package request_models

import "encoding/json"

type SignUpRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	ProfileImg string `json:"profileimg"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required"`
	ProfileImg string `json:"profileimg"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AddUserRequest is the admin-side creation payload. Roles arrive as a string,
// a JSON-encoded string, or an array depending on the client; normalization
// happens in the service.
type AddUserRequest struct {
	Email      string          `json:"email" binding:"required,email"`
	Name       string          `json:"name" binding:"required"`
	Password   string          `json:"password" binding:"required,min=6"`
	Roles      json.RawMessage `json:"roles"`
	ProfileImg string          `json:"profileimg"`
}

type UpdateStatusRequest struct {
	IsBlocked *bool `json:"isBlock" binding:"required"`
}
