// controllers/additional_service.go
package controllers

import (
	"hotelpro-backend/forms"
	"hotelpro-backend/models"
	"hotelpro-backend/query"
	"hotelpro-backend/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceInput is the JSON body for creating an additional service.
type ServiceInput struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Category    *models.ServiceCategory `json:"category"`
	UnitPrice   float64                 `json:"unitPrice"`
	Unit        *models.ServiceUnit     `json:"unit"`
	MinQuantity *int                    `json:"minQuantity"`
	MaxQuantity *int                    `json:"maxQuantity"`
	IsActive    *bool                   `json:"isActive"`
}

func (in ServiceInput) apply(d *forms.ServiceDraft) {
	d.Name = in.Name
	d.Description = in.Description
	d.UnitPrice = in.UnitPrice
	if in.Category != nil {
		d.Category = *in.Category
	}
	if in.Unit != nil {
		d.Unit = *in.Unit
	}
	if in.MinQuantity != nil {
		d.MinQuantity = *in.MinQuantity
	}
	if in.MaxQuantity != nil {
		d.MaxQuantity = *in.MaxQuantity
	}
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
}

// UpdateServiceInput changes only the fields that are present.
type UpdateServiceInput struct {
	Name        *string                 `json:"name"`
	Description *string                 `json:"description"`
	Category    *models.ServiceCategory `json:"category"`
	UnitPrice   *float64                `json:"unitPrice"`
	Unit        *models.ServiceUnit     `json:"unit"`
	MinQuantity *int                    `json:"minQuantity"`
	MaxQuantity *int                    `json:"maxQuantity"`
	IsActive    *bool                   `json:"isActive"`
}

func (in UpdateServiceInput) apply(d *forms.ServiceDraft) {
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Category != nil {
		d.Category = *in.Category
	}
	if in.UnitPrice != nil {
		d.UnitPrice = *in.UnitPrice
	}
	if in.Unit != nil {
		d.Unit = *in.Unit
	}
	if in.MinQuantity != nil {
		d.MinQuantity = *in.MinQuantity
	}
	if in.MaxQuantity != nil {
		d.MaxQuantity = *in.MaxQuantity
	}
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
}

func (h *Handler) GetServices(c *gin.Context) {
	status, err := query.ParseStatusFilter(c.Query("status"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
		return
	}
	category, err := query.ParseCategoryFilter(c.Query("category"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category filter")
		return
	}

	view := h.serviceForm().List(query.ServiceFilter{
		Search:   c.Query("search"),
		Status:   status,
		Category: category,
	})
	c.JSON(http.StatusOK, view)
}

func (h *Handler) GetServiceStats(c *gin.Context) {
	c.JSON(http.StatusOK, query.ServiceStatistics(h.store.Snapshot().AdditionalServices))
}

// GetServiceOptions lists the categories and units a service can use.
func (h *Handler) GetServiceOptions(c *gin.Context) {
	type category struct {
		Value models.ServiceCategory `json:"value"`
		Label string                 `json:"label"`
	}
	categories := make([]category, 0, len(models.ServiceCategories()))
	for _, cat := range models.ServiceCategories() {
		categories = append(categories, category{Value: cat, Label: cat.Label()})
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"units":      models.ServiceUnits(),
		"defaults":   forms.DefaultServiceDraft(),
	})
}

func (h *Handler) GetService(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	f := h.serviceForm()
	if err := f.OpenView(id); err != nil {
		h.respondError(c, err, "Service not found", "Failed to retrieve service")
		return
	}
	a, _ := f.Selected()
	c.JSON(http.StatusOK, query.ServiceRows([]models.AdditionalService{a})[0])
}

func (h *Handler) CreateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	f := h.serviceForm()
	if err := f.OpenCreate(); err != nil {
		h.respondError(c, err, "", "Failed to create service")
		return
	}
	input.apply(&f.Draft)

	service, err := f.Submit(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "", "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	f := h.serviceForm()
	if err := f.OpenEdit(id); err != nil {
		h.respondError(c, err, "Service not found", "Failed to update service")
		return
	}
	input.apply(&f.Draft)

	service, err := f.Submit(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Service not found", "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *Handler) ToggleService(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	service, err := h.serviceForm().ToggleActive(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Service not found", "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService requires ?confirm=true.
func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	ok = confirmed(c)
	removed, err := h.serviceForm().Delete(c.Request.Context(), id, func(models.AdditionalService) bool { return ok })
	if err != nil {
		h.respondError(c, err, "Service not found", "Failed to delete service")
		return
	}
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Deletion must be confirmed")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
