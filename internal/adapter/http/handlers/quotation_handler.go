package handlers

import (
	"errors"
	"net/http"

	request "hrx_backoffice/internal/adapter/http/dto/request"
	response "hrx_backoffice/internal/adapter/http/dto/response"
	"hrx_backoffice/internal/usecase"
	"hrx_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for supplier quotations.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) RequestQuotation(c *gin.Context) {
	var payload request.RequestQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.RequestQuotation(c.Request.Context(), c.Param("id"), payload.SupplierID, payload.EquipmentItemIDs)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(quotation))
}

func (h *QuotationHandler) SubmitQuotation(c *gin.Context) {
	var payload request.SubmitQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.SubmitQuotation(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) AcceptQuotation(c *gin.Context) {
	id := c.Param("id")

	aggregates, err := h.usecase.AcceptQuotation(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quotation, err := h.usecase.GetQuotation(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AcceptQuotationResponse{
		Quotation:  response.FromQuotation(quotation),
		Aggregates: response.FromAggregates(aggregates),
	})
}

func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	quotation, err := h.usecase.RejectQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	quotation, err := h.usecase.GetQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) ListByProject(c *gin.Context) {
	quotations, err := h.usecase.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(quotations))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidSupplierID),
		errors.Is(err, usecase.ErrNoEquipmentItems),
		errors.Is(err, usecase.ErrInvalidQuotationPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEquipmentItemNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_ITEM_NOT_FOUND", "Equipment line item does not belong to this project", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotPending):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_PENDING", "Quotation already submitted or closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotSubmitted):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_SUBMITTED", "Quotation is not awaiting a decision", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationTerminal):
		return pkg.NewDomainErrorSimple("QUOTATION_CLOSED", "Quotation already reached a final status", http.StatusConflict)
	case errors.Is(err, usecase.ErrEquipmentAlreadyQuoted):
		return pkg.NewDomainErrorSimple("EQUIPMENT_ALREADY_QUOTED", "An equipment line was already resolved by another quotation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
