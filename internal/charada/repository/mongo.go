package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/charadas/charadas-api/internal/charada"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores riddles in one collection keyed by _id (the decimal ID)
// and the counter as a single document in a control collection.
type MongoRepo struct {
	col     *mongo.Collection
	control *mongo.Collection
}

func NewMongoRepo(col, control *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col, control: control}
}

func (m *MongoRepo) List(ctx context.Context) ([]*charada.Charada, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find charadas: %w", err)
	}
	defer cur.Close(ctx)
	out := []*charada.Charada{}
	for cur.Next(ctx) {
		var c charada.Charada
		if err := cur.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode charada: %w", err)
		}
		out = append(out, &c)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate charadas: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) Get(ctx context.Context, key string) (*charada.Charada, error) {
	var c charada.Charada
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find charada %s: %w", key, err)
	}
	return &c, nil
}

func (m *MongoRepo) Insert(ctx context.Context, c *charada.Charada) error {
	_, err := m.col.InsertOne(ctx, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert charada %s: %w", c.Key, ErrDuplicate)
		}
		return fmt.Errorf("insert charada %s: %w", c.Key, err)
	}
	return nil
}

func (m *MongoRepo) Update(ctx context.Context, key, pergunta, resposta string) error {
	set := bson.M{"pergunta": pergunta, "resposta": resposta}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": key}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update charada %s: %w", key, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Delete(ctx context.Context, key string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return fmt.Errorf("delete charada %s: %w", key, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// NextID uses a single $inc so concurrent creates never observe the same value.
func (m *MongoRepo) NextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var c charada.Counter
	err := m.control.FindOneAndUpdate(ctx, bson.M{"_id": charada.CounterKey}, bson.M{"$inc": bson.M{"id": 1}}, opts).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("increment counter: %w", err)
	}
	return c.ID, nil
}

func (m *MongoRepo) CurrentID(ctx context.Context) (int64, error) {
	var c charada.Counter
	err := m.control.FindOne(ctx, bson.M{"_id": charada.CounterKey}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("read counter: %w", err)
	}
	return c.ID, nil
}

// RaiseCounter relies on $max so a concurrent $inc is never rolled back.
func (m *MongoRepo) RaiseCounter(ctx context.Context, id int64) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var c charada.Counter
	err := m.control.FindOneAndUpdate(ctx, bson.M{"_id": charada.CounterKey}, bson.M{"$max": bson.M{"id": id}}, opts).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("raise counter: %w", err)
	}
	return c.ID, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}
