package postgresql_test

import (
	"context"
	"testing"

	"github.com/shiftops/workforce-backend-go/internal/domain/master"
	"github.com/shiftops/workforce-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func masterAttribute(name, kind string) master.Attribute {
	return master.Attribute{Name: name, Kind: kind}
}

func TestMasterRepository_Locations(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	repo := postgresql.NewMasterRepository(db)
	ctx := context.Background()

	created, err := repo.CreateLocation(ctx, master.Location{Name: "Warehouse A", Rate: master.RateDouble})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = repo.CreateLocation(ctx, master.Location{Name: "Warehouse A", Rate: master.RateNormal})
	assert.ErrorIs(t, err, master.ErrDuplicateName)

	created.Rate = master.RateNormal
	require.NoError(t, repo.UpdateLocation(ctx, created))

	loaded, err := repo.GetLocation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, master.RateNormal, loaded.Rate)

	require.NoError(t, repo.DeleteLocation(ctx, created.ID))
	assert.ErrorIs(t, repo.DeleteLocation(ctx, created.ID), master.ErrNotFound)
}

func TestMasterRepository_Templates(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	repo := postgresql.NewMasterRepository(db)
	ctx := context.Background()

	created, err := repo.CreateTemplate(ctx, master.Template{
		Title:   "Invoice columns",
		Type:    "excel",
		Columns: []string{"date", "username", "hours", "cost"},
	})
	require.NoError(t, err)

	loaded, err := repo.GetTemplate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "username", "hours", "cost"}, loaded.Columns)

	_, err = repo.GetTemplate(ctx, created.ID+1000)
	assert.ErrorIs(t, err, master.ErrNotFound)
}

func TestMasterRepository_AttributeKinds(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	repo := postgresql.NewMasterRepository(db)
	ctx := context.Background()

	_, err := repo.CreateAttribute(ctx, masterAttribute("German", "language"))
	require.NoError(t, err)

	listed, err := repo.ListAttributes(ctx, "language")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "German", listed[0].Name)

	_, err = repo.ListAttributes(ctx, "favorite_color")
	assert.ErrorIs(t, err, master.ErrUnknownKind)
}
