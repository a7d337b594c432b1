package service

import (
	"testing"
	"time"

	"uninest-housing-api/internal/models"
	"uninest-housing-api/internal/repository"
	"uninest-housing-api/pkg/utils"

	"github.com/stretchr/testify/require"
)

func init() {
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.Register("ada", "ada@example.com", "secret123", models.RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, models.RoleStudent, resp.User.Role)

	claims, err := utils.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, claims.UserID)
	require.Equal(t, models.RoleStudent, claims.Role)

	login, err := env.auth.Login("ada", "secret123")
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, login.User.ID)

	_, err = env.auth.Login("ada", "wrong-password")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = env.auth.Login("nobody", "secret123")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register("ada", "ada@example.com", "secret123", models.RoleStudent)
	require.NoError(t, err)

	_, err = env.auth.Register("ada", "other@example.com", "secret123", models.RoleStudent)
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register("ada", "ada@example.com", "secret123", models.RoleStudent)
	require.NoError(t, err)

	_, err = env.auth.Register("ada2", "ada@example.com", "secret123", models.RoleStudent)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register("ada", "ada@example.com", "secret123", models.Role("superuser"))
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestRefreshAndLogout(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.Register("ada", "ada@example.com", "secret123", models.RoleStudent)
	require.NoError(t, err)

	accessToken, err := env.auth.RefreshAccessToken(resp.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)

	require.NoError(t, env.auth.Logout(resp.RefreshToken))

	_, err = env.auth.RefreshAccessToken(resp.RefreshToken)
	require.Error(t, err)
}

func TestRegisterLinksExistingResident(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateResident(t, "Ada", "Lovelace", "ada@example.com", nil)

	resp, err := env.auth.Register("ada", "ada@example.com", "secret123", models.RoleStudent)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, env.db.First(&user, resp.User.ID).Error)
	require.NotNil(t, user.ResidentID)
}

func TestMyRoom(t *testing.T) {
	env := newTestEnv(t)
	building := env.mustCreateBuilding(t, "North Hall", 1)
	room := env.mustCreateRoom(t, building.ID, "101", 1)

	resp, err := env.auth.Register("ada", "ada@example.com", "secret123", models.RoleStudent)
	require.NoError(t, err)

	// No resident record shares the account's email yet
	_, err = env.residents.MyRoom(resp.User.ID)
	require.ErrorIs(t, err, repository.ErrResidentNotFound)

	// Unhoused resident: the lookup links the account but reports no room
	ada := env.mustCreateResident(t, "Ada", "Lovelace", "ada@example.com", nil)
	_, err = env.residents.MyRoom(resp.User.ID)
	require.ErrorIs(t, err, ErrNotHoused)

	var user models.User
	require.NoError(t, env.db.First(&user, resp.User.ID).Error)
	require.NotNil(t, user.ResidentID)
	require.Equal(t, ada.ID, *user.ResidentID)

	_, err = env.residents.AssignRoom(ada.ID, room.ID, adminID)
	require.NoError(t, err)

	myRoom, err := env.residents.MyRoom(resp.User.ID)
	require.NoError(t, err)
	require.Equal(t, "101", myRoom.RoomNumber)
	require.Equal(t, "North Hall", myRoom.BuildingName)
	require.True(t, myRoom.IsOccupied)
}
