package repository

import (
	"context"
	"testing"

	"github.com/charadas/charadas-api/internal/charada"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func charadaDoc(id int64, pergunta, resposta string) bson.D {
	return bson.D{
		{Key: "_id", Value: charada.KeyFor(id)},
		{Key: "id", Value: id},
		{Key: "pergunta", Value: pergunta},
		{Key: "resposta", Value: resposta},
	}
}

func TestMongoRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("get found", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "charadas.charadas", mtest.FirstBatch, charadaDoc(6, "Q", "A")))

		got, err := repo.Get(ctx, "6")
		require.NoError(mt, err)
		require.Equal(mt, "6", got.Key)
		require.Equal(mt, int64(6), got.ID)
		require.Equal(mt, "Q", got.Pergunta)
		require.Equal(mt, "A", got.Resposta)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "charadas.charadas", mtest.FirstBatch))

		_, err := repo.Get(ctx, "99")
		require.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "charadas.charadas", mtest.FirstBatch,
			charadaDoc(1, "q1", "a1"),
			charadaDoc(2, "q2", "a2"),
		))

		list, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		require.Equal(mt, "q2", list[1].Pergunta)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.Update(ctx, "99", "q", "a")
		require.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("update existing", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		require.NoError(mt, repo.Update(ctx, "1", "q", "a"))
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		require.NoError(mt, repo.Delete(ctx, "1"))
		require.ErrorIs(mt, repo.Delete(ctx, "1"), ErrNotFound)
	})

	mt.Run("next id", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, mt.Coll)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{{Key: "_id", Value: charada.CounterKey}, {Key: "id", Value: int64(6)}}},
		})

		id, err := repo.NextID(ctx)
		require.NoError(mt, err)
		require.Equal(mt, int64(6), id)
	})

	mt.Run("raise counter", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, mt.Coll)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{{Key: "_id", Value: charada.CounterKey}, {Key: "id", Value: int64(9)}}},
		})

		id, err := repo.RaiseCounter(ctx, 4)
		require.NoError(mt, err)
		require.Equal(mt, int64(9), id)

		// the update must use $max, never $set
		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		update, ok := started.Command.Lookup("update").DocumentOK()
		require.True(mt, ok)
		_, err = update.LookupErr("$max")
		require.NoError(mt, err)
		_, err = update.LookupErr("$set")
		require.Error(mt, err)
	})

	mt.Run("insert duplicate key", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		err := repo.Insert(ctx, charada.New(6, "q", "a"))
		require.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("current id unseeded", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "charadas.controle_id", mtest.FirstBatch))

		id, err := repo.CurrentID(ctx)
		require.NoError(mt, err)
		require.Zero(mt, id)
	})

	mt.Run("store error is wrapped", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "boom",
		}))

		err := repo.Insert(ctx, charada.New(1, "q", "a"))
		require.Error(mt, err)
		require.NotErrorIs(mt, err, ErrNotFound)
		require.NotErrorIs(mt, err, ErrDuplicate)
		require.Contains(mt, err.Error(), "insert charada 1")
	})
}
