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

const complaintCollection = "complaints"

type ComplaintRepository interface {
	FindAll(ctx context.Context) ([]model.Complaint, error)
	FindByTrainee(ctx context.Context, name string) ([]model.Complaint, error)
	Insert(ctx context.Context, c *model.Complaint) error
	Patch(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ComplaintRepo struct {
	coll *mongo.Collection
}

func NewComplaintRepo(mongoDB *mongo.Database) *ComplaintRepo {
	return &ComplaintRepo{coll: mongoDB.Collection(complaintCollection)}
}

func (r *ComplaintRepo) FindAll(ctx context.Context) ([]model.Complaint, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var complaints []model.Complaint
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintRepo) FindByTrainee(ctx context.Context, name string) ([]model.Complaint, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"traineeName": name})
	if err != nil {
		return nil, err
	}
	var complaints []model.Complaint
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintRepo) Insert(ctx context.Context, c *model.Complaint) error {
	c.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ComplaintRepo) Patch(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now()
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

func (r *ComplaintRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
