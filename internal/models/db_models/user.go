package db_models

import (
	"github.com/lib/pq"
)

type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "LOCAL"
	AuthProviderGoogle AuthProvider = "GOOGLE"
)

type User struct {
	BaseModel
	Name         string         `json:"name"`
	Email        string         `gorm:"uniqueIndex" json:"email"`
	PasswordHash string         `json:"-"` // empty for federated accounts
	Roles        pq.StringArray `gorm:"type:text[]" json:"roles"`
	IsBlocked    bool           `gorm:"default:false" json:"is_blocked"`
	ProfileImg   string         `json:"profileimg"`
	AuthProvider AuthProvider   `gorm:"default:LOCAL" json:"auth_provider"`

	Trips    []Trip    `json:"-"`
	Payments []Payment `json:"-"`
}
