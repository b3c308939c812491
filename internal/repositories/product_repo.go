package repositories

import (
	"errors"

	"katalog/internal/models"
)

// ErrProductNotFound is returned when a product id has no matching
// record. Handlers match it with errors.Is to produce a 404; any other
// repository error is a storage failure.
var ErrProductNotFound = errors.New("product not found")

// ErrStoreUnavailable is returned when the database connection was
// never established. The process keeps serving requests in that state;
// every storage operation fails with this error until the store is
// reachable again.
var ErrStoreUnavailable = errors.New("store unavailable")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
