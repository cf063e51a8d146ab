package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/endayshebocah/tckokuo/app/model"
)

const (
	optionCollection = "options"
	optionDocID      = "dropdownOptions"
)

type OptionRepository interface {
	Get(ctx context.Context) (*model.DropdownOptions, error)
	AddValue(ctx context.Context, field, value string) error
	RemoveValue(ctx context.Context, field, value string) error
}

type OptionRepo struct {
	coll *mongo.Collection
}

func NewOptionRepo(mongoDB *mongo.Database) *OptionRepo {
	return &OptionRepo{coll: mongoDB.Collection(optionCollection)}
}

// Get reads the shared options document, creating an empty one on first use.
func (r *OptionRepo) Get(ctx context.Context) (*model.DropdownOptions, error) {
	var opts model.DropdownOptions
	err := r.coll.FindOne(ctx, bson.M{"_id": optionDocID}).Decode(&opts)
	if err == mongo.ErrNoDocuments {
		_, err = r.coll.UpdateOne(ctx, bson.M{"_id": optionDocID},
			bson.M{"$setOnInsert": bson.M{
				model.OptionFieldBranch:           []string{},
				model.OptionFieldTrainingLocation: []string{},
			}},
			options.Update().SetUpsert(true))
		if err != nil {
			return nil, err
		}
		return &model.DropdownOptions{
			BranchList:           []string{},
			TrainingLocationList: []string{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &opts, nil
}

// AddValue appends without duplicating.
func (r *OptionRepo) AddValue(ctx context.Context, field, value string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": optionDocID},
		bson.M{"$addToSet": bson.M{field: value}},
		options.Update().SetUpsert(true))
	return err
}

func (r *OptionRepo) RemoveValue(ctx context.Context, field, value string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": optionDocID},
		bson.M{"$pull": bson.M{field: value}})
	return err
}
