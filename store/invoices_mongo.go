package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"restaurant-pos/models"
)

type MongoInvoiceStore struct {
	col *mongo.Collection
}

func NewMongoInvoiceStore(col *mongo.Collection) *MongoInvoiceStore {
	return &MongoInvoiceStore{col: col}
}

func (s *MongoInvoiceStore) List(ctx context.Context, limit, skip int64) ([]models.Invoice, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	invoices := []models.Invoice{}
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *MongoInvoiceStore) FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.col.FindOne(ctx, bson.M{"invoiceId": invoiceID}).Decode(&invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (s *MongoInvoiceStore) Insert(ctx context.Context, invoice *models.Invoice) error {
	_, err := s.col.InsertOne(ctx, invoice)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

func (s *MongoInvoiceStore) Delete(ctx context.Context, invoiceID string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"invoiceId": invoiceID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoProductStore struct {
	col *mongo.Collection
}

func NewMongoProductStore(col *mongo.Collection) *MongoProductStore {
	return &MongoProductStore{col: col}
}

func (s *MongoProductStore) List(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
