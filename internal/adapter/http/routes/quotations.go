package routes

import (
	"hrx_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
)

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.PATCH("/:id/submit", quotationHandler.SubmitQuotation)
		quotations.PATCH("/:id/accept", quotationHandler.AcceptQuotation)
		quotations.PATCH("/:id/reject", quotationHandler.RejectQuotation)
	}
}
