package response_models

type UserSummary struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Roles      []string `json:"roles"`
	ProfileImg string   `json:"profileimg,omitempty"`
	IsBlocked  bool     `json:"is_blocked"`
}

type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         UserSummary `json:"user"`
}

type UserListResponse struct {
	Users      []UserSummary `json:"users"`
	TotalPages int64         `json:"totalPages"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
}
