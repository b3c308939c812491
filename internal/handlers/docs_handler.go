package handlers

import "github.com/gofiber/fiber/v2"

// HandleDocs serves an OpenAPI 3 description of the product API.
func HandleDocs(c *fiber.Ctx) error {
	productSchema := fiber.Map{
		"type": "object",
		"properties": fiber.Map{
			"id":           fiber.Map{"type": "integer", "readOnly": true},
			"name":         fiber.Map{"type": "string"},
			"price":        fiber.Map{"type": "number", "minimum": 0, "exclusiveMinimum": true},
			"availability": fiber.Map{"type": "boolean", "default": true},
		},
	}
	dataResponse := func(description string) fiber.Map {
		return fiber.Map{"description": description}
	}

	return c.JSON(fiber.Map{
		"openapi": "3.0.3",
		"info": fiber.Map{
			"title":   "katalog",
			"version": "1.0.0",
		},
		"components": fiber.Map{
			"schemas": fiber.Map{"Product": productSchema},
		},
		"paths": fiber.Map{
			"/api/products": fiber.Map{
				"get":  fiber.Map{"summary": "List products, newest first", "responses": fiber.Map{"200": dataResponse("product list")}},
				"post": fiber.Map{"summary": "Create a product", "responses": fiber.Map{"201": dataResponse("created product"), "400": dataResponse("validation errors")}},
			},
			"/api/products/{id}": fiber.Map{
				"get":    fiber.Map{"summary": "Get a product", "responses": fiber.Map{"200": dataResponse("product"), "400": dataResponse("invalid id"), "404": dataResponse("not found")}},
				"put":    fiber.Map{"summary": "Replace a product", "responses": fiber.Map{"200": dataResponse("updated product"), "400": dataResponse("validation errors"), "404": dataResponse("not found")}},
				"patch":  fiber.Map{"summary": "Toggle product availability", "responses": fiber.Map{"200": dataResponse("updated product"), "400": dataResponse("invalid id"), "404": dataResponse("not found")}},
				"delete": fiber.Map{"summary": "Delete a product", "responses": fiber.Map{"200": dataResponse("confirmation"), "400": dataResponse("invalid id"), "404": dataResponse("not found")}},
			},
		},
	})
}
