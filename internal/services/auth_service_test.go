package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripvisito/internal/models/request_models"
	"tripvisito/pkg/utils"
)

func newAuthServiceForTest(t *testing.T) (AuthServiceInterface, *fakeUserRepo) {
	t.Setenv("JWT_SECRET", "test-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")
	t.Setenv("BCRYPT_ROUNDS", "4")

	repo := newFakeUserRepo()
	return NewAuthService(repo), repo
}

func signUp(t *testing.T, authService AuthServiceInterface, email string) {
	t.Helper()
	_, err := authService.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    email,
		Name:     "Jo",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	authService, repo := newAuthServiceForTest(t)
	signUp(t, authService, "jo@example.com")

	_, err := authService.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    "jo@example.com",
		Name:     "Someone Else",
		Password: "another-pass",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	assert.Equal(t, 1, repo.inserts)
}

func TestCreateAccountRaceOnUniqueIndexIsConflict(t *testing.T) {
	authService, repo := newAuthServiceForTest(t)

	// A concurrent registration lands between the email lookup and the
	// insert; the unique index rejects ours.
	repo.insertErr = gorm.ErrDuplicatedKey

	_, err := authService.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    "jo@example.com",
		Name:     "Jo",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	_, err = authService.AddUser(context.Background(), request_models.AddUserRequest{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: "s3cret-pass",
		Roles:    []byte(`["ADMIN"]`),
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	authService, repo := newAuthServiceForTest(t)
	signUp(t, authService, "jo@example.com")

	login, err := authService.Login(context.Background(), request_models.LoginRequest{
		Email:    "jo@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)
	assert.Equal(t, []string{utils.RoleCustomer}, login.User.Roles)

	_, err = authService.Login(context.Background(), request_models.LoginRequest{
		Email:    "jo@example.com",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = authService.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	user, _ := repo.FindByEmail(context.Background(), "jo@example.com")
	user.IsBlocked = true

	_, err = authService.Login(context.Background(), request_models.LoginRequest{
		Email:    "jo@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, utils.ErrUserBlocked)
}

func TestGoogleLoginUpserts(t *testing.T) {
	authService, repo := newAuthServiceForTest(t)

	login, err := authService.GoogleLogin(context.Background(), request_models.GoogleLoginRequest{
		Email: "jo@example.com",
		Name:  "Jo",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.inserts)
	assert.NotEmpty(t, login.AccessToken)

	// Second login with a changed profile updates in place, no new row.
	login, err = authService.GoogleLogin(context.Background(), request_models.GoogleLoginRequest{
		Email:      "jo@example.com",
		Name:       "Joanna",
		ProfileImg: "https://img.example/jo.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.inserts)
	assert.Equal(t, "Joanna", login.User.Name)

	user, _ := repo.FindByEmail(context.Background(), "jo@example.com")
	user.IsBlocked = true

	_, err = authService.GoogleLogin(context.Background(), request_models.GoogleLoginRequest{
		Email: "jo@example.com",
		Name:  "Joanna",
	})
	assert.ErrorIs(t, err, utils.ErrUserBlocked)
}

func TestRefreshAccessToken(t *testing.T) {
	authService, repo := newAuthServiceForTest(t)
	signUp(t, authService, "jo@example.com")

	login, err := authService.Login(context.Background(), request_models.LoginRequest{
		Email:    "jo@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	accessToken, err := authService.RefreshAccessToken(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	_, err = authService.RefreshAccessToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, utils.ErrTokenInvalid)

	// A blocked user's refresh token stops working.
	user, _ := repo.FindByEmail(context.Background(), "jo@example.com")
	user.IsBlocked = true

	_, err = authService.RefreshAccessToken(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, utils.ErrTokenInvalid)
}

func TestAdminAccountsAreProtected(t *testing.T) {
	authService, repo := newAuthServiceForTest(t)

	admin, err := authService.AddUser(context.Background(), request_models.AddUserRequest{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: "admin-pass",
		Roles:    []byte(`["ADMIN"]`),
	})
	require.NoError(t, err)

	_, err = authService.UpdateUserStatus(context.Background(), admin.ID, true)
	assert.ErrorIs(t, err, utils.ErrProtectedUser)

	err = authService.DeleteUser(context.Background(), admin.ID)
	assert.ErrorIs(t, err, utils.ErrProtectedUser)
	assert.Equal(t, 1, repo.inserts)
}

func TestUpdateAndDeleteCustomer(t *testing.T) {
	authService, _ := newAuthServiceForTest(t)
	signUp(t, authService, "jo@example.com")

	profile, err := authService.Login(context.Background(), request_models.LoginRequest{
		Email:    "jo@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	updated, err := authService.UpdateUserStatus(context.Background(), profile.User.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsBlocked)

	require.NoError(t, authService.DeleteUser(context.Background(), profile.User.ID))

	_, err = authService.GetProfile(context.Background(), profile.User.ID)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)

	err = authService.DeleteUser(context.Background(), profile.User.ID)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestEnsureSuperAdminIsIdempotent(t *testing.T) {
	authService, repo := newAuthServiceForTest(t)
	t.Setenv("SUPERADMIN_EMAIL", "root@example.com")
	t.Setenv("SUPERADMIN_PASSWORD", "root-pass")

	require.NoError(t, authService.EnsureSuperAdmin(context.Background()))
	require.NoError(t, authService.EnsureSuperAdmin(context.Background()))
	assert.Equal(t, 1, repo.inserts)

	admin, err := repo.FindByRole(context.Background(), utils.RoleSuperAdmin)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "root@example.com", admin.Email)
}
