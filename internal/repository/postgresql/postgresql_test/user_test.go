package postgresql_test

import (
	"context"
	"testing"

	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/shiftops/workforce-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func createTestUser(t *testing.T, repo user.Repository, username, email, role string) user.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123!"), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashStr := string(hash)

	created, err := repo.Create(context.Background(), user.User{
		Name:         username,
		Username:     username,
		Email:        email,
		PasswordHash: &hashStr,
		Role:         role,
		Status:       user.StatusActive,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	return created
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	repo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	created := createTestUser(t, repo, "alice", "alice@example.com", user.RoleEmployee)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, user.StatusActive, byID.Status)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	repo := postgresql.NewUserRepository(db)

	createTestUser(t, repo, "bob", "bob@example.com", user.RoleEmployee)

	_, err := repo.Create(context.Background(), user.User{
		Name:     "Bob Again",
		Username: "bob2",
		Email:    "bob@example.com",
		Role:     user.RoleEmployee,
		Status:   user.StatusActive,
	})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestUserRepository_Attributes(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	repo := postgresql.NewUserRepository(db)
	masters := postgresql.NewMasterRepository(db)
	ctx := context.Background()

	created := createTestUser(t, repo, "carol", "carol@example.com", user.RoleEmployee)

	forklift, err := masters.CreateAttribute(ctx, masterAttribute("Forklift", user.AttrQualification))
	require.NoError(t, err)
	welding, err := masters.CreateAttribute(ctx, masterAttribute("Welding", user.AttrSkill))
	require.NoError(t, err)

	require.NoError(t, repo.AddAttributes(ctx, created.ID, user.AttrQualification, []int64{forklift.ID}))
	require.NoError(t, repo.AddAttributes(ctx, created.ID, user.AttrSkill, []int64{welding.ID}))

	loaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Qualifications, 1)
	assert.Equal(t, "Forklift", loaded.Qualifications[0].Name)
	require.Len(t, loaded.Skills, 1)

	require.NoError(t, repo.RemoveAttributes(ctx, created.ID, user.AttrSkill, []int64{welding.ID}))
	ids, err := repo.AttributeIDs(ctx, created.ID, user.AttrSkill)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestUserRepository_SearchActive(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	repo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, repo, "daniel", "daniel@example.com", user.RoleEmployee)
	inactive := createTestUser(t, repo, "daniela", "daniela@example.com", user.RoleEmployee)

	inactive.Status = user.StatusInactive
	require.NoError(t, repo.Update(ctx, inactive))

	matches, err := repo.SearchActive(ctx, "dani")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "daniel", matches[0].Username)
}
