package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-pos/config"
	"restaurant-pos/services"
	"restaurant-pos/store"
)

var (
	draftService   *services.DraftService
	invoiceService *services.InvoiceService
	productStore   store.ProductStore
	corrector      services.Corrector
)

// Setup wires the handlers to the MongoDB-backed stores. Called once from
// main after the database connection is up.
func Setup() {
	drafts := store.NewMongoDraftStore(config.DraftCollection)
	invoices := store.NewMongoInvoiceStore(config.InvoiceCollection)

	draftService = services.NewDraftService(drafts)
	invoiceService = services.NewInvoiceService(invoices, drafts)
	productStore = store.NewMongoProductStore(config.ProductCollection)

	if groq := services.NewGroqClientFromEnv(); groq != nil {
		corrector = services.NewGuardedCorrector(groq)
	}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
