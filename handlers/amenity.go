package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kxxnxr13/web-inmobiliaria/models"
	"github.com/kxxnxr13/web-inmobiliaria/store"
)

type AmenityController struct {
	store *store.Amenities
}

func NewAmenityController(s *store.Amenities) *AmenityController {
	return &AmenityController{store: s}
}

// ListAmenities is the public catalog view: active entries only, optionally
// narrowed to one category.
func (ac *AmenityController) ListAmenities(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		cat := models.AmenityCategory(category)
		if !cat.Valid() {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown amenity category"})
		}
		return c.JSON(http.StatusOK, ac.store.ByCategory(cat))
	}
	return c.JSON(http.StatusOK, ac.store.Active())
}

// ListAllAmenities is the management view, including deactivated entries.
func (ac *AmenityController) ListAllAmenities(c echo.Context) error {
	return c.JSON(http.StatusOK, ac.store.All())
}

func (ac *AmenityController) CreateAmenity(c echo.Context) error {
	var input models.AmenityInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name, icon and category are required"})
	}
	if !input.Category.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown amenity category"})
	}

	amenity := ac.store.Create(input)
	return c.JSON(http.StatusCreated, amenity)
}

func (ac *AmenityController) UpdateAmenity(c echo.Context) error {
	var patch models.AmenityPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown amenity category"})
	}

	amenity, ok := ac.store.Update(c.Param("id"), patch)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Amenity not found"})
	}
	return c.JSON(http.StatusOK, amenity)
}

func (ac *AmenityController) DeleteAmenity(c echo.Context) error {
	ac.store.Delete(c.Param("id"))
	return c.JSON(http.StatusOK, map[string]string{"message": "Amenity deleted successfully"})
}

func (ac *AmenityController) ToggleAmenity(c echo.Context) error {
	amenity, ok := ac.store.Toggle(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Amenity not found"})
	}
	return c.JSON(http.StatusOK, amenity)
}
