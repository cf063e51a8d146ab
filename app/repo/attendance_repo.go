package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/endayshebocah/tckokuo/app/model"
)

const attendanceCollection = "attendance"

type AttendanceRepository interface {
	InsertMany(ctx context.Context, entries []model.AttendanceEntry) error
	FindByParticipant(ctx context.Context, participantID string) ([]model.AttendanceEntry, error)
	FindByDateRange(ctx context.Context, start, end time.Time, location string) ([]model.AttendanceEntry, error)
}

type AttendanceRepo struct {
	coll *mongo.Collection
}

func NewAttendanceRepo(mongoDB *mongo.Database) *AttendanceRepo {
	return &AttendanceRepo{coll: mongoDB.Collection(attendanceCollection)}
}

// InsertMany writes one sheet submission in a single batch.
func (r *AttendanceRepo) InsertMany(ctx context.Context, entries []model.AttendanceEntry) error {
	docs := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, e)
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *AttendanceRepo) FindByParticipant(ctx context.Context, participantID string) ([]model.AttendanceEntry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"participantId": participantID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var entries []model.AttendanceEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *AttendanceRepo) FindByDateRange(ctx context.Context, start, end time.Time, location string) ([]model.AttendanceEntry, error) {
	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	if location != "" {
		filter["location"] = location
	}
	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var entries []model.AttendanceEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
