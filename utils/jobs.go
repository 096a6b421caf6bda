package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"restaurant-pos/config"
	"restaurant-pos/models"
)

// SweepOrphanDrafts retries the best-effort draft cleanup that finalize
// performs. An invoice records its sourceDraftId; if the draft it retired
// still exists (the inline delete failed), it is removed here so the table
// frees up without staff intervention.
func SweepOrphanDrafts() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	since := time.Now().Add(-24 * time.Hour)
	filter := bson.M{
		"sourceDraftId": bson.M{"$nin": bson.A{"", nil}},
		"created_at":    bson.M{"$gte": since},
	}

	cursor, err := config.InvoiceCollection.Find(ctx, filter)
	if err != nil {
		log.Printf("draft sweep: %v", err)
		return
	}
	defer cursor.Close(ctx)

	removed := 0
	for cursor.Next(ctx) {
		var invoice models.Invoice
		if err := cursor.Decode(&invoice); err != nil {
			continue
		}
		result, err := config.DraftCollection.DeleteOne(ctx, bson.M{"draftId": invoice.SourceDraftID})
		if err != nil {
			log.Printf("draft sweep: delete %s: %v", invoice.SourceDraftID, err)
			continue
		}
		if result.DeletedCount > 0 {
			removed++
			log.Printf("draft sweep: removed orphan draft %s (invoice %s)", invoice.SourceDraftID, invoice.InvoiceID)
		}
	}
	if removed > 0 {
		log.Printf("draft sweep: removed %d orphan drafts", removed)
	}
}

// SendDailySalesReport aggregates today's invoices and mails a short
// summary to REPORT_EMAIL. Skipped silently when no recipient is set.
func SendDailySalesReport() {
	to := os.Getenv("REPORT_EMAIL")
	if to == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dayStart := time.Now().Truncate(24 * time.Hour)
	pipeline := []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": dayStart}}},
		{"$group": bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total"},
		}},
	}

	cursor, err := config.InvoiceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("daily report: %v", err)
		return
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Count   int     `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		log.Printf("daily report: %v", err)
		return
	}

	count, revenue := 0, 0.0
	if len(rows) > 0 {
		count, revenue = rows[0].Count, rows[0].Revenue
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Sales for %s\n\n", dayStart.Format("2006-01-02"))
	fmt.Fprintf(&body, "Invoices: %d\n", count)
	fmt.Fprintf(&body, "Revenue:  %.2f\n", revenue)

	if err := SendEmail(to, "Daily sales report", body.String()); err != nil {
		log.Printf("daily report: send failed: %v", err)
		return
	}
	log.Printf("daily report: sent to %s", to)
}
