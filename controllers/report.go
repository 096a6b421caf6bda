package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"restaurant-pos/config"
)

// Dashboard returns today's totals, a 7-day revenue series and the
// top-selling items, all computed server-side with aggregation pipelines.
func Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	now := time.Now()
	dayStart := now.Truncate(24 * time.Hour)
	weekStart := dayStart.AddDate(0, 0, -6)

	var today struct {
		Count   int     `bson:"count" json:"count"`
		Revenue float64 `bson:"revenue" json:"revenue"`
	}
	cursor, err := config.InvoiceCollection.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": dayStart}}},
		{"$group": bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total"},
		}},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if cursor.Next(ctx) {
		_ = cursor.Decode(&today)
	}
	cursor.Close(ctx)

	type dailyRow struct {
		Date    string  `bson:"_id" json:"date"`
		Count   int     `bson:"count" json:"count"`
		Revenue float64 `bson:"revenue" json:"revenue"`
	}
	daily := []dailyRow{}
	cursor, err = config.InvoiceCollection.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": weekStart}}},
		{"$group": bson.M{
			"_id":     bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total"},
		}},
		{"$sort": bson.M{"_id": 1}},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if err := cursor.All(ctx, &daily); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	type topRow struct {
		Name   string  `bson:"_id" json:"name"`
		Qty    float64 `bson:"qty" json:"qty"`
		Amount float64 `bson:"amount" json:"amount"`
	}
	topItems := []topRow{}
	cursor, err = config.InvoiceCollection.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": weekStart}}},
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":    "$items.name",
			"qty":    bson.M{"$sum": "$items.qty"},
			"amount": bson.M{"$sum": bson.M{"$multiply": bson.A{"$items.price", "$items.qty"}}},
		}},
		{"$sort": bson.M{"qty": -1}},
		{"$limit": 5},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if err := cursor.All(ctx, &topItems); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"today":    today,
		"daily":    daily,
		"topItems": topItems,
	})
}
