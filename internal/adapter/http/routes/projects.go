package routes

import (
	"hrx_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
)

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, quotationHandler *handlers.QuotationHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:id", projectHandler.GetProject)
		projects.POST("/:id/recalculate", projectHandler.Recalculate)

		projects.POST("/:id/team", projectHandler.AddTeamMember)
		projects.PATCH("/:id/team/:memberId/rate", projectHandler.SetTeamMemberRate)
		projects.POST("/:id/equipment", projectHandler.AddEquipment)

		projects.GET("/:id/suggested-professionals", projectHandler.SuggestProfessionals)

		projects.POST("/:id/quotations", quotationHandler.RequestQuotation)
		projects.GET("/:id/quotations", quotationHandler.ListByProject)
	}
}
