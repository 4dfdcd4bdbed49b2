package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bakerydir/internal/bakery/domain"
	"bakerydir/internal/bakery/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Bakery{}))
	return db
}

func TestGormBakeryRepository_FindAllOrderedByName(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&[]domain.Bakery{
		{Name: "Crumb & Crust", City: "Lisbon"},
		{Name: "Aroma", City: "Porto"},
		{Name: "Brioche House", City: "Braga"},
	}).Error)

	repo := repository.NewGormBakeryRepository(db)
	bakeries, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bakeries, 3)
	assert.Equal(t, "Aroma", bakeries[0].Name)
	assert.Equal(t, "Brioche House", bakeries[1].Name)
	assert.Equal(t, "Crumb & Crust", bakeries[2].Name)
}

func TestGormBakeryRepository_FindAllEmpty(t *testing.T) {
	repo := repository.NewGormBakeryRepository(openTestDB(t))

	bakeries, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bakeries)
}
