package api

import (
	"net/http"

	"carflow/internal/domain/inquiry"
	reqdto "carflow/internal/handler/dto/request"
	resdto "carflow/internal/handler/dto/response"
	"carflow/internal/handler/middleware"
	"carflow/internal/pkg/errs"
	"carflow/internal/usecase/commands"
	"carflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InquiryHandler struct {
	inquiryCommands commands.InquiryCommands
	inquiryQueries  queries.InquiryQueries
	userQueries     queries.UserQueries
}

func NewInquiryHandler(inquiryCommands commands.InquiryCommands, inquiryQueries queries.InquiryQueries, userQueries queries.UserQueries) *InquiryHandler {
	return &InquiryHandler{
		inquiryCommands: inquiryCommands,
		inquiryQueries:  inquiryQueries,
		userQueries:     userQueries,
	}
}

// @Summary Create cash inquiry
// @Description Register a cash purchase inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCashInquiryRequest true "Cash inquiry"
// @Success 201 {object} resdto.CreateInquiryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /inquiries/cash [post]
func (h *InquiryHandler) CreateCash(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateCashInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.inquiryCommands.CreateCash(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary Create installment inquiry
// @Description Register an installment inquiry; a credit check runs before creation
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInstallmentInquiryRequest true "Installment inquiry"
// @Success 201 {object} resdto.CreateInquiryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /inquiries/installment [post]
func (h *InquiryHandler) CreateInstallment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateInstallmentInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.inquiryCommands.CreateInstallment(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary List inquiries
// @Description List inquiries visible to the caller
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param kind query string false "Filter by kind (cash|installment)"
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.InquiryListResponse
// @Router /inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	filter := queries.ListFilter{
		Kind:   c.Query("kind"),
		Status: c.Query("status"),
	}

	items, err := h.inquiryQueries.List(c.Request.Context(), actor, filter, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInquiryListItems(items))
}

// @Summary Get inquiry
// @Description Get inquiry detail by ID
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} resdto.InquiryResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inquiries/{id} [get]
func (h *InquiryHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry ID"})
		return
	}

	view, err := h.inquiryQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInquiryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		case errs.Is(err, queries.ErrInquiryAccess):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInquiryView(view))
}

// @Summary Change inquiry status
// @Description Move an inquiry along its status lifecycle
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param request body reqdto.SetStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /inquiries/{id}/status [patch]
func (h *InquiryHandler) SetStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry ID"})
		return
	}

	var req reqdto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.inquiryCommands.SetStatus(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Assign expert
// @Description Assign an expert to an inquiry, explicitly or via round-robin
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param request body reqdto.AssignExpertRequest true "Expert (omit for round-robin)"
// @Success 200 {object} resdto.AssignExpertResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /inquiries/{id}/assign [post]
func (h *InquiryHandler) Assign(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry ID"})
		return
	}

	var req reqdto.AssignExpertRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	expertID, err := h.inquiryCommands.AssignExpert(c.Request.Context(), actor, id, req.ExpertID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AssignExpertResponse{ExpertID: expertID})
}

// @Summary Record down payment
// @Description Record the requested down payment on a cash inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param request body reqdto.SetDownPaymentRequest true "Amount"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /inquiries/{id}/down-payment [post]
func (h *InquiryHandler) SetDownPayment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry ID"})
		return
	}

	var req reqdto.SetDownPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.inquiryCommands.SetDownPayment(c.Request.Context(), actor, id, req.Amount); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List experts
// @Description List active experts in assignment order
// @Tags experts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ExpertResponse
// @Router /experts [get]
func (h *InquiryHandler) ListExperts(c *gin.Context) {
	views, err := h.userQueries.ListExperts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpertViews(views))
}

// respondCommandError maps usecase errors to HTTP codes. Comparison goes
// through errs.Is because the commands layer attaches sentinels with Mark.
func (h *InquiryHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInquiryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
	case errs.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errs.Is(err, commands.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized for this operation"})
	case errs.Is(err, commands.ErrNotAnExpert):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Assignee is not an active expert"})
	case errs.Is(err, commands.ErrNoExpertsAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": "No experts available for assignment"})
	case errs.Is(err, commands.ErrInvalidTransition), errs.Is(err, inquiry.ErrAlreadyAssigned):
		c.JSON(http.StatusConflict, gin.H{"error": "Illegal status transition"})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
