package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"
	"katalog/internal/validation"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with their validation
// rules. The rule lists are evaluated in order before each handler;
// their counts are part of the API contract.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	idRule := validation.Rule{
		Field: "id", Location: validation.InParams,
		Check: validation.IsInt, Message: "invalid id",
	}
	bodyRules := []validation.Rule{
		{Field: "name", Location: validation.InBody, Check: validation.NotEmpty, Message: "name is required"},
		{Field: "price", Location: validation.InBody, Check: validation.Present, Message: "price is required"},
		{Field: "price", Location: validation.InBody, Check: validation.IsNumeric, Message: "price must be a number"},
		{Field: "price", Location: validation.InBody, Check: validation.GreaterThan(0), Message: "price must be > 0"},
	}
	updateRules := append([]validation.Rule{idRule}, bodyRules...)
	updateRules = append(updateRules, validation.Rule{
		Field: "availability", Location: validation.InBody,
		Check: validation.IsBool, Message: "availability must be a boolean",
	})

	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:id", validation.New(idRule), h.HandleGetByID)
	productRoutes.Post("/", validation.New(bodyRules...), h.HandleCreate)
	productRoutes.Put("/:id", validation.New(updateRules...), h.HandleUpdate)
	// PATCH is a pure availability toggle; the payload is ignored and
	// only the id is validated.
	productRoutes.Patch("/:id", validation.New(idRule), h.HandleToggleAvailability)
	productRoutes.Delete("/:id", validation.New(idRule), h.HandleDelete)
}

// HandleList retrieves all products, newest first.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return storageError(c, "listing products", err)
	}
	return c.JSON(fiber.Map{"data": products})
}

// HandleGetByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return storageError(c, "getting product", err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleCreate creates a new product from the validated body fields.
// Availability is not part of the create payload and defaults to true.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	body := validation.Body(c)
	product := models.Product{
		Name:         body["name"].(string),
		Price:        body["price"].(float64),
		Availability: true,
	}
	if err := h.service.CreateProduct(&product); err != nil {
		return storageError(c, "creating product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": product})
}

// HandleUpdate replaces all mutable fields of an existing product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return storageError(c, "getting product", err)
	}

	body := validation.Body(c)
	product.Name = body["name"].(string)
	product.Price = body["price"].(float64)
	product.Availability = body["availability"].(bool)

	if err := h.service.UpdateProduct(product); err != nil {
		return storageError(c, "updating product", err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleToggleAvailability flips the availability flag of a product.
func (h *ProductHandler) HandleToggleAvailability(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	product, err := h.service.ToggleAvailability(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return storageError(c, "toggling product availability", err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleDelete permanently removes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.service.DeleteProduct(id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return storageError(c, "deleting product", err)
	}
	return c.JSON(fiber.Map{"data": "Product deleted"})
}

// paramID returns the id path parameter. The validation middleware has
// already guaranteed integer format, but ids outside the uint range
// (negatives included) can never match a record, so ok reports whether
// a lookup is worth attempting.
func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Product not found",
	})
}

// storageError logs the underlying failure and answers with an opaque
// 500. Storage failures are never detailed to the caller.
func storageError(c *fiber.Ctx, op string, err error) error {
	log.Printf("Error %s: %v", op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}
