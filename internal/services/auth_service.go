package services

import (
	"context"
	"errors"
	"log"
	"math"
	"os"

	"gorm.io/gorm"

	"tripvisito/internal/models/db_models"
	"tripvisito/internal/models/request_models"
	"tripvisito/internal/models/response_models"
	"tripvisito/internal/repositories"
	"tripvisito/pkg/utils"
)

type AuthServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserSummary, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GoogleLogin(ctx context.Context, request request_models.GoogleLoginRequest) (*response_models.LoginResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	GetProfile(ctx context.Context, userID string) (*response_models.UserSummary, error)
	AddUser(ctx context.Context, request request_models.AddUserRequest) (*response_models.UserSummary, error)
	ListUsers(ctx context.Context, page, limit int) (*response_models.UserListResponse, error)
	UpdateUserStatus(ctx context.Context, userID string, isBlocked bool) (*response_models.UserSummary, error)
	DeleteUser(ctx context.Context, userID string) error
	EnsureSuperAdmin(ctx context.Context) error
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{userRepo: userRepo}
}

func userSummary(user *db_models.User) *response_models.UserSummary {
	return &response_models.UserSummary{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		Roles:      user.Roles,
		ProfileImg: user.ProfileImg,
		IsBlocked:  user.IsBlocked,
	}
}

func (a *AuthService) issueTokens(user *db_models.User) (*response_models.LoginResponse, error) {
	accessToken, err := utils.CreateAccessToken(user.ID, user.Roles, user.Email, user.Name)
	if err != nil {
		return nil, utils.ErrTokenInvalid
	}
	refreshToken, err := utils.CreateRefreshToken(user.ID)
	if err != nil {
		return nil, utils.ErrTokenInvalid
	}
	return &response_models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *userSummary(user),
	}, nil
}

func (a *AuthService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserSummary, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Roles:        []string{utils.RoleCustomer},
		ProfileImg:   request.ProfileImg,
		AuthProvider: db_models.AuthProviderLocal,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		// A concurrent registration can slip past the lookup; the unique
		// index reports it as a conflict, not a server fault.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}
	return userSummary(newUser), nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if user.IsBlocked {
		return nil, utils.ErrUserBlocked
	}

	return a.issueTokens(user)
}

// GoogleLogin upserts the federated account: create with defaults when the
// email is unknown, otherwise refresh name/avatar/provider in place. The block
// flag is enforced after the upsert so a blocked user stays current but locked
// out.
func (a *AuthService) GoogleLogin(ctx context.Context, request request_models.GoogleLoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		user = &db_models.User{
			Name:         request.Name,
			Email:        request.Email,
			Roles:        []string{utils.RoleCustomer},
			ProfileImg:   request.ProfileImg,
			AuthProvider: db_models.AuthProviderGoogle,
		}
		if err := a.userRepo.Insert(ctx, user); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		user.Name = request.Name
		user.ProfileImg = request.ProfileImg
		user.AuthProvider = db_models.AuthProviderGoogle
		if err := a.userRepo.Update(ctx, user); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	if user.IsBlocked {
		return nil, utils.ErrUserBlocked
	}

	return a.issueTokens(user)
}

func (a *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := a.userRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil || user.IsBlocked {
		return "", utils.ErrTokenInvalid
	}

	accessToken, err := utils.CreateAccessToken(user.ID, user.Roles, user.Email, user.Name)
	if err != nil {
		return "", utils.ErrTokenInvalid
	}
	return accessToken, nil
}

func (a *AuthService) GetProfile(ctx context.Context, userID string) (*response_models.UserSummary, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return userSummary(user), nil
}

func (a *AuthService) AddUser(ctx context.Context, request request_models.AddUserRequest) (*response_models.UserSummary, error) {
	roles, err := utils.NormalizeRoles(request.Roles)
	if err != nil {
		return nil, err
	}

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Roles:        roles,
		ProfileImg:   request.ProfileImg,
		AuthProvider: db_models.AuthProviderLocal,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}
	return userSummary(newUser), nil
}

func (a *AuthService) ListUsers(ctx context.Context, page, limit int) (*response_models.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	users, total, err := a.userRepo.List(ctx, page, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, *userSummary(&users[i]))
	}

	return &response_models.UserListResponse{
		Users:      summaries,
		TotalPages: int64(math.Ceil(float64(total) / float64(limit))),
		TotalCount: total,
		Page:       page,
	}, nil
}

func (a *AuthService) UpdateUserStatus(ctx context.Context, userID string, isBlocked bool) (*response_models.UserSummary, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	if utils.HasAnyRole(user.Roles, utils.RoleAdmin, utils.RoleSuperAdmin) {
		return nil, utils.ErrProtectedUser
	}

	user.IsBlocked = isBlocked
	if err := a.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return userSummary(user), nil
}

func (a *AuthService) DeleteUser(ctx context.Context, userID string) error {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	if utils.HasAnyRole(user.Roles, utils.RoleAdmin, utils.RoleSuperAdmin) {
		return utils.ErrProtectedUser
	}

	if err := a.userRepo.Delete(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// EnsureSuperAdmin is the startup reconciliation step: exactly one account
// holding the SUPERADMIN role must exist, provisioned from env credentials.
func (a *AuthService) EnsureSuperAdmin(ctx context.Context) error {
	existing, err := a.userRepo.FindByRole(ctx, utils.RoleSuperAdmin)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		log.Println("Super admin already exists")
		return nil
	}

	email := os.Getenv("SUPERADMIN_EMAIL")
	password := os.Getenv("SUPERADMIN_PASSWORD")
	name := os.Getenv("SUPERADMIN_NAME")
	if email == "" || password == "" {
		return utils.ErrInvalidInput
	}
	if name == "" {
		name = "Super Admin"
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	admin := &db_models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Roles:        []string{utils.RoleSuperAdmin},
		AuthProvider: db_models.AuthProviderLocal,
	}
	if err := a.userRepo.Insert(ctx, admin); err != nil {
		return utils.ErrDatabaseError
	}

	log.Println("Super admin account created")
	return nil
}
