package routes

import (
	"hvacworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathQuotes    = "/quotes"
	PathSnapshots = "/snapshots"
	PathPayments  = "/payments"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	quoteHandler *handlers.QuoteHandler,
	snapshotHandler *handlers.SnapshotHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.Get)
		catalog.GET("/search", catalogHandler.Search)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateDraft)
		quotes.GET("/:id", quoteHandler.GetDraft)
		quotes.DELETE("/:id", quoteHandler.DiscardDraft)
		quotes.PATCH("/:id", quoteHandler.UpdateKnobs)
		quotes.POST("/:id/items", quoteHandler.AddLineItem)
		quotes.PATCH("/:id/items/:item_id", quoteHandler.UpdateLineItem)
		quotes.DELETE("/:id/items/:item_id", quoteHandler.RemoveLineItem)
		quotes.POST("/:id/snapshot", snapshotHandler.Save)
	}

	snapshots := rg.Group(PathSnapshots)
	{
		snapshots.GET("/:id", snapshotHandler.GetByID)
		snapshots.PATCH("/approve", snapshotHandler.Approve)
		snapshots.PATCH("/reject", snapshotHandler.Reject)
		snapshots.PATCH("/cancel", snapshotHandler.Cancel)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:snapshot_id", paymentHandler.CreateBySnapshotID)
		payments.GET("/:snapshot_id", paymentHandler.GetBySnapshotID)
	}
}
