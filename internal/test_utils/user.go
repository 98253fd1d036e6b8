package test_utils

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wirdtrack/wirdtrack/pkg/user"
)

// SeedUsers inserts one sheikh and one student and returns them with their
// assigned ids.
func SeedUsers(t *testing.T, db *pgxpool.Pool) (sheikh user.User, student user.User) {
	t.Helper()

	sheikh = user.User{
		Uid:         "test-sheikh-uid",
		Username:    "test_sheikh",
		DisplayName: "Test Sheikh",
		Role:        user.RoleSheikh,
		Settings:    user.Settings{Timezone: "Africa/Cairo"},
	}
	student = user.User{
		Uid:         "test-student-uid",
		Username:    "test_student",
		DisplayName: "Test Student",
		Role:        user.RoleStudent,
		Settings:    user.Settings{Timezone: "Africa/Cairo"},
	}

	repo := user.NewUserRepo(db)
	sheikhId, err := repo.CreateUser(context.Background(), sheikh)
	if err != nil {
		t.Fatalf("failed to seed sheikh: %v", err)
	}
	sheikh.Id = sheikhId
	studentId, err := repo.CreateUser(context.Background(), student)
	if err != nil {
		t.Fatalf("failed to seed student: %v", err)
	}
	student.Id = studentId
	return sheikh, student
}
