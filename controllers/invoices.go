package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-pos/models"
	"restaurant-pos/services"
	"restaurant-pos/store"
)

func CreateInvoice(c *gin.Context) {
	var input models.InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := invoiceService.Finalize(c.Request.Context(), input)
	if err != nil {
		var invalidItem *services.InvalidItemError
		switch {
		case errors.As(err, &invalidItem),
			errors.Is(err, services.ErrNoItems),
			errors.Is(err, services.ErrInvalidTotal):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDuplicateInvoice):
			c.JSON(http.StatusConflict, gin.H{"error": "Invoice ID already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "invoice": invoice})
}

func ListInvoices(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	skip, _ := strconv.ParseInt(c.Query("skip"), 10, 64)

	invoices, err := invoiceService.List(c.Request.Context(), limit, skip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "invoices": invoices})
}

func GetInvoice(c *gin.Context) {
	invoice, err := invoiceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": invoice})
}

func DeleteInvoice(c *gin.Context) {
	err := invoiceService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
