package handlers

import (
	"errors"
	"net/http"

	request "hrx_backoffice/internal/adapter/http/dto/request"
	response "hrx_backoffice/internal/adapter/http/dto/response"
	"hrx_backoffice/internal/domain/matching"
	"hrx_backoffice/internal/domain/pricing"
	"hrx_backoffice/internal/usecase"
	"hrx_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
)

// ProjectHandler handles HTTP requests for event projects: creation,
// line items, cost recalculation and team suggestions.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.CreateProject(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) AddTeamMember(c *gin.Context) {
	var payload request.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	projectID := c.Param("id")
	aggregates, err := h.usecase.AddTeamMember(c.Request.Context(), projectID, payload.ToEntity(projectID))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAggregates(aggregates))
}

func (h *ProjectHandler) SetTeamMemberRate(c *gin.Context) {
	var payload request.SetTeamMemberRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	aggregates, err := h.usecase.SetTeamMemberRate(c.Request.Context(), c.Param("id"), c.Param("memberId"), payload.RateCents())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAggregates(aggregates))
}

func (h *ProjectHandler) AddEquipment(c *gin.Context) {
	var payload request.AddEquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	projectID := c.Param("id")
	aggregates, err := h.usecase.AddEquipment(c.Request.Context(), projectID, payload.ToEntity(projectID))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAggregates(aggregates))
}

func (h *ProjectHandler) Recalculate(c *gin.Context) {
	aggregates, err := h.usecase.Recalculate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAggregates(aggregates))
}

func (h *ProjectHandler) SuggestProfessionals(c *gin.Context) {
	var query request.SuggestProfessionalsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	criteria := matching.Criteria{
		RequiredCategories: query.Categories,
		MaxDistanceKm:      query.MaxDistanceKm,
		MinScore:           query.MinScore,
		Limit:              query.Limit,
	}

	suggestions, err := h.usecase.SuggestProfessionals(c.Request.Context(), c.Param("id"), criteria)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSuggestions(suggestions))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidClientOrEventName),
		errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidMargin):
		return pkg.NewDomainErrorSimple("INVALID_MARGIN", "Margin must be between 0% and 100%", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrNegativeAmount):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Line items must not carry negative amounts", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTeamMemberNotFound):
		return pkg.NewDomainErrorSimple("TEAM_MEMBER_NOT_FOUND", "Team member not found for this project", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectMissingLocation):
		return pkg.NewDomainErrorSimple("PROJECT_MISSING_LOCATION", "Project has no venue coordinates", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
