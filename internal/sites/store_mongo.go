package sites

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	pdb "workhours/internal/platform/db"
)

type siteDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d siteDoc) toModel() Site {
	return Site{ID: d.ID, Name: d.Name, CreatedAt: d.CreatedAt.UTC(), UpdatedAt: d.UpdatedAt.UTC()}
}

type MongoStore struct{ coll *mongo.Collection }

func NewMongoStore(mdb *mongo.Database) *MongoStore {
	return &MongoStore{coll: mdb.Collection(pdb.SitesCollection)}
}

// FindOrCreate is one upsert that only writes on insert, so an existing site
// is returned untouched.
func (s *MongoStore) FindOrCreate(ctx context.Context, newID, name string, now time.Time) (Site, bool, error) {
	update := bson.M{"$setOnInsert": bson.M{"_id": newID, "name": name, "createdAt": now, "updatedAt": now}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc siteDoc
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		err = s.coll.FindOneAndUpdate(ctx, bson.M{"name": name}, update, opts).Decode(&doc)
		if err == nil || !mongo.IsDuplicateKeyError(err) {
			break
		}
	}
	if err != nil {
		return Site{}, false, err
	}
	return doc.toModel(), doc.ID == newID, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Site, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []siteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Site, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
