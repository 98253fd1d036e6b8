package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUser_DefaultsToStudentRole(t *testing.T) {
	service := NewUserService(NewStubUserRepository())

	created, err := service.CreateUser(context.Background(), User{
		Username:    "ahmed",
		DisplayName: "Ahmed",
	})

	assert.NoError(t, err)
	assert.Equal(t, RoleStudent, created.Role)
	assert.NotEmpty(t, created.Uid)
	assert.NotZero(t, created.Id)
}

func TestCreateUser_RejectsUnknownRole(t *testing.T) {
	service := NewUserService(NewStubUserRepository())

	_, err := service.CreateUser(context.Background(), User{
		Username:    "x",
		DisplayName: "X",
		Role:        Role("admin"),
	})

	assert.ErrorIs(t, err, ErrUserDataInvalid)
}

func TestGetCurrentUser(t *testing.T) {
	repo := NewStubUserRepository()
	service := NewUserService(repo)

	created, err := service.CreateUser(context.Background(), User{
		Username:    "sheikh",
		DisplayName: "Sheikh Ibrahim",
		Role:        RoleSheikh,
	})
	assert.NoError(t, err)

	ctx := WithUser(context.Background(), created)
	got, err := service.GetCurrentUser(ctx)
	assert.NoError(t, err)
	assert.Equal(t, created.Id, got.Id)
	assert.Equal(t, RoleSheikh, got.Role)
}

func TestGetCurrentUser_NoUserInContext(t *testing.T) {
	service := NewUserService(NewStubUserRepository())

	_, err := service.GetCurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNoUser)
}
