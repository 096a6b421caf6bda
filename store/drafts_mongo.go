package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"restaurant-pos/models"
)

type MongoDraftStore struct {
	col *mongo.Collection
}

func NewMongoDraftStore(col *mongo.Collection) *MongoDraftStore {
	return &MongoDraftStore{col: col}
}

func (s *MongoDraftStore) List(ctx context.Context) ([]models.Draft, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	drafts := []models.Draft{}
	if err := cursor.All(ctx, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (s *MongoDraftStore) FindByID(ctx context.Context, draftID string) (*models.Draft, error) {
	var draft models.Draft
	err := s.col.FindOne(ctx, bson.M{"draftId": draftID}).Decode(&draft)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &draft, nil
}

func (s *MongoDraftStore) FindByTable(ctx context.Context, tableNumber, excludeID string) (*models.Draft, error) {
	filter := bson.M{"tableNumber": tableNumber}
	if excludeID != "" {
		filter["draftId"] = bson.M{"$ne": excludeID}
	}

	var draft models.Draft
	err := s.col.FindOne(ctx, filter).Decode(&draft)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &draft, nil
}

func (s *MongoDraftStore) Insert(ctx context.Context, draft *models.Draft) error {
	_, err := s.col.InsertOne(ctx, draft)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

func (s *MongoDraftStore) Update(ctx context.Context, draft *models.Draft) error {
	update := bson.M{"$set": bson.M{
		"tableNumber":   draft.TableNumber,
		"text":          draft.Text,
		"customerName":  draft.CustomerName,
		"customerPhone": draft.CustomerPhone,
		"lines":         draft.Lines,
		"updated_at":    draft.UpdatedAt,
	}}
	result, err := s.col.UpdateOne(ctx, bson.M{"draftId": draft.DraftID}, update)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoDraftStore) Delete(ctx context.Context, draftID string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"draftId": draftID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
