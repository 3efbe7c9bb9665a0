package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicograef/jotti/internal/client/gateway"
	"github.com/nicograef/jotti/internal/client/models"
	"github.com/nicograef/jotti/internal/validation"
)

const usersJSON = `{"users":[
	{"id":1,"name":"Anna Schmidt","username":"anna","role":"admin","status":"active","createdAt":"2025-01-01T10:00:00Z"},
	{"id":2,"name":"Bernd Meier","username":"bernd","role":"service","status":"inactive","createdAt":"2025-02-01T10:00:00Z"}
]}`

func TestUserService_GetAllUsers(t *testing.T) {
	fp := newFakePoster(map[string]string{"admin/get-all-users": usersJSON})

	users, err := NewUserService(fp).GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bernd", users[1].Username)
	assert.Equal(t, models.StatusInactive, users[1].Status)
	assert.Equal(t, map[string]any{}, fp.last().body)
}

func TestUserService_GetAllUsers_BadItemIsShapeError(t *testing.T) {
	fp := newFakePoster(map[string]string{"admin/get-all-users": `{"users":[{"id":1,"name":"Anna Schmidt","username":"Anna!","role":"admin","status":"active","createdAt":"2025-01-01T10:00:00Z"}]}`})

	_, err := NewUserService(fp).GetAllUsers(context.Background())
	var se *gateway.ResponseShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "admin/get-all-users", se.Endpoint)
}

func TestUserService_GetAllUsers_BadDateIsShapeError(t *testing.T) {
	fp := newFakePoster(map[string]string{"admin/get-all-users": `{"users":[{"id":1,"name":"Anna Schmidt","username":"anna","role":"admin","status":"active","createdAt":"yesterday"}]}`})

	_, err := NewUserService(fp).GetAllUsers(context.Background())
	require.ErrorIs(t, err, gateway.ErrResponseShape)
}

func TestUserService_CreateUser(t *testing.T) {
	fp := newFakePoster(map[string]string{"admin/create-user": `{"id":5,"onetimePassword":"042133"}`})

	created, err := NewUserService(fp).CreateUser(context.Background(), CreateUserRequest{
		Name:     "Carla Weiß",
		Username: "carlaweiss",
		Role:     models.RoleService,
	})
	require.NoError(t, err)
	assert.Equal(t, CreatedUser{ID: 5, OnetimePassword: "042133"}, created)
	assert.Equal(t, "admin/create-user", fp.last().endpoint)
	assert.Equal(t, "service", fp.last().body["role"])
}

func TestUserService_CreateUser_Invalid(t *testing.T) {
	fp := newFakePoster(nil)

	_, err := NewUserService(fp).CreateUser(context.Background(), CreateUserRequest{
		Name:     "Carla Weiß",
		Username: "carla weiss",
		Role:     "chef",
	})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("Username"))
	assert.True(t, verr.Has("Role"))
	assert.Empty(t, fp.calls)
}

func TestUserService_UpdateUser(t *testing.T) {
	fp := newFakePoster(nil)
	svc := NewUserService(fp)

	require.NoError(t, svc.UpdateUser(context.Background(), UpdateUserRequest{ID: 2, Name: "Bernd Meier", Username: "bernd", Role: models.RoleAdmin}))
	assert.Equal(t, "admin/update-user", fp.last().endpoint)
	assert.False(t, fp.last().withOut)

	require.Error(t, svc.UpdateUser(context.Background(), UpdateUserRequest{Name: "Bernd Meier", Username: "bernd", Role: models.RoleAdmin}))
	assert.Len(t, fp.calls, 1)
}

func TestUserService_ActivateDeactivate(t *testing.T) {
	fp := newFakePoster(nil)
	svc := NewUserService(fp)
	ctx := context.Background()

	require.NoError(t, svc.ActivateUser(ctx, 3))
	assert.Equal(t, postCall{endpoint: "admin/activate-user", body: map[string]any{"id": float64(3)}}, fp.last())

	require.NoError(t, svc.DeactivateUser(ctx, 3))
	assert.Equal(t, "admin/deactivate-user", fp.last().endpoint)

	require.Error(t, svc.ActivateUser(ctx, 0))
	require.Error(t, svc.DeactivateUser(ctx, -1))
	assert.Len(t, fp.calls, 2)
}

func TestUserService_ResetPassword(t *testing.T) {
	fp := newFakePoster(map[string]string{"admin/reset-password": `{"onetimePassword":"777111"}`})

	otp, err := NewUserService(fp).ResetPassword(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "777111", otp)

	fp.responses["admin/reset-password"] = `{"onetimePassword":"77"}`
	_, err = NewUserService(fp).ResetPassword(context.Background(), 4)
	require.ErrorIs(t, err, gateway.ErrResponseShape)
}
