package repositories_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

func setupRepo(t *testing.T) *repositories.GORMProductRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	_ = db.Migrator().DropTable(&models.Product{})
	assert.NoError(t, db.AutoMigrate(&models.Product{}))
	return repositories.NewGORMProductRepository(db)
}

func TestGORMProductRepository_CreateAssignsID(t *testing.T) {
	repo := setupRepo(t)

	product := models.Product{Name: "Laptop", Price: 1200.00, Availability: true}
	assert.NoError(t, repo.Create(&product))
	assert.NotZero(t, product.ID)

	fetched, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", fetched.Name)
	assert.Equal(t, 1200.00, fetched.Price)
	assert.True(t, fetched.Availability)
}

func TestGORMProductRepository_GetAllNewestFirst(t *testing.T) {
	repo := setupRepo(t)

	older := models.Product{Name: "Keyboard", Price: 75.00, Availability: true}
	newer := models.Product{Name: "Mouse", Price: 25.00, Availability: true}
	assert.NoError(t, repo.Create(&older))
	assert.NoError(t, repo.Create(&newer))

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, newer.ID, products[0].ID)
	assert.Equal(t, older.ID, products[1].ID)
}

func TestGORMProductRepository_GetByIDNotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByID(12345)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, repositories.ErrProductNotFound))
}

func TestGORMProductRepository_UpdatePersistsZeroValues(t *testing.T) {
	repo := setupRepo(t)

	product := models.Product{Name: "Monitor", Price: 200.00, Availability: true}
	assert.NoError(t, repo.Create(&product))

	product.Availability = false
	product.Price = 150.00
	assert.NoError(t, repo.Update(&product))

	fetched, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.False(t, fetched.Availability)
	assert.Equal(t, 150.00, fetched.Price)
}

func TestGORMProductRepository_DeleteRemovesRecord(t *testing.T) {
	repo := setupRepo(t)

	product := models.Product{Name: "Webcam", Price: 45.00, Availability: true}
	assert.NoError(t, repo.Create(&product))

	assert.NoError(t, repo.Delete(product.ID))

	_, err := repo.GetByID(product.ID)
	assert.True(t, errors.Is(err, repositories.ErrProductNotFound))

	err = repo.Delete(product.ID)
	assert.True(t, errors.Is(err, repositories.ErrProductNotFound))
}

func TestGORMProductRepository_NilDBIsStoreUnavailable(t *testing.T) {
	repo := repositories.NewGORMProductRepository(nil)

	_, err := repo.GetAll()
	assert.True(t, errors.Is(err, repositories.ErrStoreUnavailable))

	_, err = repo.GetByID(1)
	assert.True(t, errors.Is(err, repositories.ErrStoreUnavailable))

	err = repo.Create(&models.Product{Name: "X", Price: 1})
	assert.True(t, errors.Is(err, repositories.ErrStoreUnavailable))

	err = repo.Update(&models.Product{ID: 1, Name: "X", Price: 1})
	assert.True(t, errors.Is(err, repositories.ErrStoreUnavailable))

	err = repo.Delete(1)
	assert.True(t, errors.Is(err, repositories.ErrStoreUnavailable))
}
