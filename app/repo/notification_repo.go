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

const notificationCollection = "notifications"

type NotificationRepository interface {
	Insert(ctx context.Context, n *model.ActivityNotification) error
	FindRecent(ctx context.Context, since time.Time) ([]model.ActivityNotification, error)
}

type NotificationRepo struct {
	coll *mongo.Collection
}

func NewNotificationRepo(mongoDB *mongo.Database) *NotificationRepo {
	return &NotificationRepo{coll: mongoDB.Collection(notificationCollection)}
}

func (r *NotificationRepo) Insert(ctx context.Context, n *model.ActivityNotification) error {
	n.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, n)
	if err != nil {
		return err
	}
	n.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *NotificationRepo) FindRecent(ctx context.Context, since time.Time) ([]model.ActivityNotification, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"createdAt": bson.M{"$gte": since}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var notifications []model.ActivityNotification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
