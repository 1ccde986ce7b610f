package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arjun/infographic-ai/backend/internal/models"
)

// MongoStore handles infographic document CRUD in MongoDB.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("infographics")}
}

func (s *MongoStore) Insert(ctx context.Context, doc *models.Infographic) (string, error) {
	doc.CreatedAt = time.Now()
	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("mongo insert: %w", err)
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (s *MongoStore) ListByUser(ctx context.Context, userID string) ([]models.Infographic, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.Infographic
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*models.Infographic, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid id: %w", err)
	}
	var doc models.Infographic
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// AppendVersion records an edit: the superseded image key goes into the
// version history and the new key becomes current.
func (s *MongoStore) AppendVersion(ctx context.Context, id string, version models.ImageVersion, newImageKey string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	_, err = s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{"versions": version},
		"$set":  bson.M{"image_object_key": newImageKey},
	})
	return err
}

// SetVideoKey stores the object key of a finished animation.
func (s *MongoStore) SetVideoKey(ctx context.Context, id, key string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	_, err = s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"video_object_key": key},
	})
	return err
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
