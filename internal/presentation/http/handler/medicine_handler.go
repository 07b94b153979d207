package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/pharmacy-api/internal/application/service"
	"github.com/sangkips/pharmacy-api/internal/domain/repository"
	"github.com/sangkips/pharmacy-api/internal/presentation/http/dto/request"
	"github.com/sangkips/pharmacy-api/internal/presentation/http/dto/response"
)

// MedicineHandler handles medicine-related HTTP requests
type MedicineHandler struct {
	inventoryService *service.InventoryService
}

// NewMedicineHandler creates a new medicine handler
func NewMedicineHandler(inventoryService *service.InventoryService) *MedicineHandler {
	return &MedicineHandler{inventoryService: inventoryService}
}

// List returns all medicines with derived expiry and stock state
// @Summary List medicines
// @Tags medicines
// @Produce json
// @Param search query string false "Name or brand substring"
// @Param category query string false "Category filter"
// @Success 200 {object} response.APIResponse
// @Router /medicines [get]
func (h *MedicineHandler) List(c *gin.Context) {
	var req request.MedicineFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, err := h.inventoryService.ListMedicines(c.Request.Context(), &repository.MedicineFilterParams{
		Search:   req.Search,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Medicines retrieved", items)
}

// ListSellable returns medicines with stock on hand, for the sale form
func (h *MedicineHandler) ListSellable(c *gin.Context) {
	medicines, err := h.inventoryService.ListSellable(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Medicines retrieved", medicines)
}

// Get returns a single medicine
func (h *MedicineHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	medicine, err := h.inventoryService.GetMedicine(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Medicine retrieved", medicine)
}

// Create adds a new medicine
// @Summary Create medicine
// @Tags medicines
// @Accept json
// @Produce json
// @Param request body request.CreateMedicineRequest true "Medicine data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /medicines [post]
func (h *MedicineHandler) Create(c *gin.Context) {
	var req request.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.MedicineInput{
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		CostPrice:   req.CostPrice,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.ExpiryDate != nil {
		input.ExpiryDate = parseDateParam(*req.ExpiryDate)
	}

	medicine, err := h.inventoryService.CreateMedicine(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Medicine created successfully", medicine)
}

// Update modifies an existing medicine
func (h *MedicineHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	var req request.UpdateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateMedicineInput{
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		CostPrice:   req.CostPrice,
		Quantity:    req.Quantity,
		ClearExpiry: req.ClearExpiry,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.ExpiryDate != nil {
		input.ExpiryDate = parseDateParam(*req.ExpiryDate)
	}

	medicine, err := h.inventoryService.UpdateMedicine(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Medicine updated successfully", medicine)
}

// Delete removes a medicine
func (h *MedicineHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	if err := h.inventoryService.DeleteMedicine(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Medicine deleted successfully", nil)
}
