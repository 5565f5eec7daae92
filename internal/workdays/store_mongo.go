package workdays

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	pdb "workhours/internal/platform/db"
)

type workDayDoc struct {
	ID         string    `bson:"_id"`
	DateString string    `bson:"dateString"`
	StartTime  string    `bson:"startTime"`
	EndTime    string    `bson:"endTime"`
	NetHours   float64   `bson:"netHours"`
	Site       *string   `bson:"site,omitempty"`
	Note       *string   `bson:"note,omitempty"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

func (d workDayDoc) toModel() WorkDay {
	return WorkDay{
		ID:         d.ID,
		DateString: d.DateString,
		StartTime:  d.StartTime,
		EndTime:    d.EndTime,
		NetHours:   d.NetHours,
		Site:       d.Site,
		Note:       d.Note,
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}
}

type MongoStore struct{ coll *mongo.Collection }

func NewMongoStore(mdb *mongo.Database) *MongoStore {
	return &MongoStore{coll: mdb.Collection(pdb.WorkdaysCollection)}
}

// replaceDoc builds an update that overwrites every field of f; absent
// optional fields are unset.
func replaceDoc(f Fields, now time.Time) bson.M {
	set := bson.M{
		"dateString": f.DateString,
		"startTime":  f.StartTime,
		"endTime":    f.EndTime,
		"netHours":   f.NetHours,
		"updatedAt":  now,
	}
	unset := bson.M{}
	if f.Site != nil {
		set["site"] = *f.Site
	} else {
		unset["site"] = ""
	}
	if f.Note != nil {
		set["note"] = *f.Note
	} else {
		unset["note"] = ""
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

func (s *MongoStore) Upsert(ctx context.Context, newID string, f Fields, now time.Time) (WorkDay, bool, error) {
	update := replaceDoc(f, now)
	update["$setOnInsert"] = bson.M{"_id": newID, "createdAt": now}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc workDayDoc
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		err = s.coll.FindOneAndUpdate(ctx, bson.M{"dateString": f.DateString}, update, opts).Decode(&doc)
		if err == nil || !mongo.IsDuplicateKeyError(err) {
			break
		}
	}
	if err != nil {
		return WorkDay{}, false, err
	}
	return doc.toModel(), doc.ID == newID, nil
}

func (s *MongoStore) Update(ctx context.Context, id string, f Fields, now time.Time) (WorkDay, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc workDayDoc
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, replaceDoc(f, now), opts).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return WorkDay{}, ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return WorkDay{}, ErrDuplicateDate
	case err != nil:
		return WorkDay{}, err
	}
	return doc.toModel(), nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoStore) List(ctx context.Context) ([]WorkDay, error) {
	return s.find(ctx, bson.M{}, -1)
}

func (s *MongoStore) ListRange(ctx context.Context, from, to string) ([]WorkDay, error) {
	return s.find(ctx, bson.M{"dateString": bson.M{"$gte": from, "$lte": to}}, 1)
}

func (s *MongoStore) find(ctx context.Context, filter bson.M, order int) ([]WorkDay, error) {
	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "dateString", Value: order}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []workDayDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]WorkDay, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}
