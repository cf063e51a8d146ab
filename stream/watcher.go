package stream

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// watchedCollections are the stores whose changes clients care about.
var watchedCollections = []string{
	"records",
	"complaints",
	"attendance",
	"notifications",
	"options",
}

// Watcher tails the change stream of each watched collection and forwards
// {collection, op} events to the hub.
type Watcher struct {
	db  *mongo.Database
	hub *Hub
}

func NewWatcher(db *mongo.Database, hub *Hub) *Watcher {
	return &Watcher{db: db, hub: hub}
}

// Run blocks until ctx is done. Each collection gets its own tail; a broken
// stream is reopened after a short pause.
func (w *Watcher) Run(ctx context.Context) {
	for _, name := range watchedCollections {
		go w.watchCollection(ctx, name)
	}
	<-ctx.Done()
}

func (w *Watcher) watchCollection(ctx context.Context, name string) {
	for {
		if ctx.Err() != nil {
			return
		}
		if err := w.tail(ctx, name); err != nil {
			log.Printf("Change stream for %s ended: %v", name, err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (w *Watcher) tail(ctx context.Context, name string) error {
	cs, err := w.db.Collection(name).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return err
	}
	defer cs.Close(ctx)

	for cs.Next(ctx) {
		var change struct {
			OperationType string `bson:"operationType"`
		}
		if err := bson.Unmarshal(cs.Current, &change); err != nil {
			continue
		}
		w.hub.Broadcast(Event{Collection: name, Op: change.OperationType})
	}
	return cs.Err()
}
