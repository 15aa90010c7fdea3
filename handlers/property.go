package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kxxnxr13/web-inmobiliaria/models"
	"github.com/kxxnxr13/web-inmobiliaria/query"
	"github.com/kxxnxr13/web-inmobiliaria/store"
)

type PropertyController struct {
	store *store.Properties
}

func NewPropertyController(s *store.Properties) *PropertyController {
	return &PropertyController{store: s}
}

// ListProperties runs the public listings pipeline over the available view:
// filter criteria AND-combine, the sort is stable and pages are fixed at six
// listings. Changing any criterion is expected to come in with page=1.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	f := query.Filter{
		Term:         c.QueryParam("q"),
		Type:         models.ListingType(c.QueryParam("type")),
		PropertyType: c.QueryParam("property_type"),
		PriceRange:   c.QueryParam("price_range"),
		Bedrooms:     c.QueryParam("bedrooms"),
		Bathrooms:    c.QueryParam("bathrooms"),
		AreaRange:    c.QueryParam("area_range"),
		Sort:         query.Sort(c.QueryParam("sort")),
	}

	page := 1
	if p := c.QueryParam("page"); p != "" {
		if num, err := strconv.Atoi(p); err == nil && num > 0 {
			page = num
		}
	}

	filtered := query.Apply(pc.store.Available(), f)
	return c.JSON(http.StatusOK, query.Paginate(filtered, page, query.DefaultPageSize))
}

func (pc *PropertyController) GetFeatured(c echo.Context) error {
	return c.JSON(http.StatusOK, pc.store.Featured())
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	property, ok := pc.store.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}
	return c.JSON(http.StatusOK, property)
}

// ListManaged returns the properties visible in the calling admin's
// management view: shared ones plus their own. The super-admin sees all.
func (pc *PropertyController) ListManaged(c echo.Context) error {
	if c.Get("user_role") == models.RoleSuperAdmin {
		return c.JSON(http.StatusOK, pc.store.All())
	}
	adminID, _ := c.Get("user_id").(string)
	return c.JSON(http.StatusOK, pc.store.ByAdmin(adminID))
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	var input models.PropertyInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if input.Status == "" {
		input.Status = models.StatusAvailable
	}
	property := pc.store.Create(input)
	return c.JSON(http.StatusCreated, property)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	id := c.Param("id")
	existing, ok := pc.store.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}
	if !pc.canManage(c, existing) {
		return c.JSON(http.StatusForbidden, map[string]string{
			"error": "You are not authorized to manage this property",
		})
	}

	var patch models.PropertyPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	property, _ := pc.store.Update(id, patch)
	return c.JSON(http.StatusOK, property)
}

// DeleteProperty is idempotent at the boundary: deleting an id that is
// already gone still answers success.
func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	id := c.Param("id")
	if existing, ok := pc.store.Get(id); ok {
		if !pc.canManage(c, existing) {
			return c.JSON(http.StatusForbidden, map[string]string{
				"error": "You are not authorized to manage this property",
			})
		}
		pc.store.Delete(id)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

func (pc *PropertyController) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	existing, ok := pc.store.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}
	if !pc.canManage(c, existing) {
		return c.JSON(http.StatusForbidden, map[string]string{
			"error": "You are not authorized to manage this property",
		})
	}

	var req struct {
		Status models.Status `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	property, _ := pc.store.SetStatus(id, req.Status)
	return c.JSON(http.StatusOK, property)
}

// canManage reports whether the caller may manage the property. Shared
// properties and the super-admin always pass.
func (pc *PropertyController) canManage(c echo.Context, property models.Property) bool {
	if c.Get("user_role") == models.RoleSuperAdmin {
		return true
	}
	adminID, _ := c.Get("user_id").(string)
	return property.Owner.ManageableBy(adminID)
}
