package routes

import (
	"elo_drinks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathItems  = "/items"
	PathDrafts = "/drafts"
)

func addCatalogRoutes(rg *gin.RouterGroup, itemHandler *handlers.ItemHandler, authed, admin gin.HandlerFunc) {
	items := rg.Group(PathItems)
	{
		items.GET("", itemHandler.ListItems)
		items.GET("/grouped", itemHandler.ListGroupedItems)
		items.GET("/:id", itemHandler.GetItem)

		// Catalog writes are restricted to administrators.
		items.POST("", authed, admin, itemHandler.CreateItem)
		items.PUT("/:id", authed, admin, itemHandler.UpdateItem)
		items.PATCH("/:id/availability", authed, admin, itemHandler.SetItemAvailability)
	}
}

func addDraftRoutes(rg *gin.RouterGroup, draftHandler *handlers.DraftHandler) {
	drafts := rg.Group(PathDrafts + "/:session_id")
	{
		drafts.GET("", draftHandler.GetDraft)
		drafts.POST("/event-type", draftHandler.SetEventType)
		drafts.POST("/event-info", draftHandler.SetEventInfoField)
		drafts.POST("/alcoholic-drinks/toggle", draftHandler.ToggleAlcoholicDrink)
		drafts.POST("/non-alcoholic-drinks/toggle", draftHandler.ToggleNonAlcoholicDrink)
		drafts.POST("/other-beverages/quantity", draftHandler.SetOtherBeverageQuantity)
		drafts.POST("/shots/quantity", draftHandler.SetShotQuantity)
		drafts.POST("/staff/quantity", draftHandler.SetStaffQuantity)
		drafts.POST("/structure", draftHandler.SelectStructure)
		drafts.POST("/navigate", draftHandler.Navigate)
		drafts.POST("/submit", draftHandler.SubmitDraft)
		drafts.DELETE("", draftHandler.DiscardDraft)
	}
}
