package utils

import (
	"encoding/json"
	"strings"
)

const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleCustomer   = "CUSTOMER"
)

var validRoles = map[string]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
	RoleCustomer:   true,
}

// NormalizeRoles accepts the role field as clients actually send it: a JSON
// array, a bare string, or a JSON-array-encoded-as-string, and returns a
// deduplicated validated role set.
func NormalizeRoles(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return []string{RoleCustomer}, nil
	}

	var roles []string
	if err := json.Unmarshal(raw, &roles); err != nil {
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, ErrInvalidRole
		}
		// A string payload may itself be a JSON array.
		var nested []string
		if err := json.Unmarshal([]byte(single), &nested); err == nil {
			roles = nested
		} else {
			roles = []string{single}
		}
	}

	seen := make(map[string]bool)
	var out []string
	for _, role := range roles {
		role = strings.ToUpper(strings.TrimSpace(role))
		if role == "" {
			continue
		}
		if !validRoles[role] {
			return nil, ErrInvalidRole
		}
		if !seen[role] {
			seen[role] = true
			out = append(out, role)
		}
	}
	if len(out) == 0 {
		return []string{RoleCustomer}, nil
	}
	return out, nil
}

func HasAnyRole(have []string, want ...string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
