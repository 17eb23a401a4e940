package workflow

import (
	"context"

	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/app/models"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WorkflowMongoRepository struct {
	Collection *mongo.Collection
}

func NewWorkflowMongoRepository(db *mongo.Client, dbName string) contracts.WorkflowRepository {
	return &WorkflowMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWorkflows),
	}
}

// SaveSnapshot upserts the latest state of a workflow instance, one document
// per workflow id.
func (repo *WorkflowMongoRepository) SaveSnapshot(ctx context.Context, record *models.WorkflowRecord) error {
	filter := bson.M{"workflow_id": record.WorkflowID}
	update := bson.M{"$set": record}
	opts := options.Update().SetUpsert(true)

	_, err := repo.Collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *WorkflowMongoRepository) FindByPractitioner(ctx context.Context, practitionerID string) ([]models.WorkflowRecord, error) {
	filter := bson.M{"practitioner_id": practitionerID}
	opts := options.Find().SetSort(bson.M{"updated_at": -1})

	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.WorkflowRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
