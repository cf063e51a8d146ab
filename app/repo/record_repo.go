package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/endayshebocah/tckokuo/app/model"
)

const recordCollection = "records"

type RecordRepository interface {
	FindAll(ctx context.Context) ([]model.TrainingRecord, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.TrainingRecord, error)
	FindByName(ctx context.Context, name string) ([]model.TrainingRecord, error)
	FindByCreatedRange(ctx context.Context, start, end time.Time) ([]model.TrainingRecord, error)
	Insert(ctx context.Context, rec *model.TrainingRecord) error
	Patch(ctx context.Context, id primitive.ObjectID, set bson.M) error
	SetDeleted(ctx context.Context, id primitive.ObjectID, deleted bool, by string) error
	DeletePermanent(ctx context.Context, id primitive.ObjectID) error
	BulkDelete(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	MergeFieldValue(ctx context.Context, field, incorrect, correct string) (int64, error)
}

type RecordRepo struct {
	coll *mongo.Collection
}

func NewRecordRepo(mongoDB *mongo.Database) *RecordRepo {
	return &RecordRepo{coll: mongoDB.Collection(recordCollection)}
}

// FindAll returns every record, deleted ones included; callers partition with
// the lifecycle helpers.
func (r *RecordRepo) FindAll(ctx context.Context) ([]model.TrainingRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var records []model.TrainingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RecordRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.TrainingRecord, error) {
	var rec model.TrainingRecord
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecordRepo) FindByName(ctx context.Context, name string) ([]model.TrainingRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"name": name, "isDeleted": bson.M{"$ne": true}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var records []model.TrainingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RecordRepo) FindByCreatedRange(ctx context.Context, start, end time.Time) ([]model.TrainingRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{
		"createdAt": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return nil, err
	}
	var records []model.TrainingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RecordRepo) Insert(ctx context.Context, rec *model.TrainingRecord) error {
	rec.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return err
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RecordRepo) Patch(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now()
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

func (r *RecordRepo) SetDeleted(ctx context.Context, id primitive.ObjectID, deleted bool, by string) error {
	return r.Patch(ctx, id, bson.M{"isDeleted": deleted, "lastUpdatedBy": by})
}

func (r *RecordRepo) DeletePermanent(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// BulkDelete removes the given records in one BulkWrite round trip.
func (r *RecordRepo) BulkDelete(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	models := make([]mongo.WriteModel, 0, len(ids))
	for _, id := range ids {
		models = append(models, mongo.NewDeleteOneModel().SetFilter(bson.M{"_id": id}))
	}
	res, err := r.coll.BulkWrite(ctx, models)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// MergeFieldValue relabels every occurrence of a master-data value in one
// UpdateMany.
func (r *RecordRepo) MergeFieldValue(ctx context.Context, field, incorrect, correct string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{field: incorrect},
		bson.M{"$set": bson.M{field: correct, "updatedAt": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
