package tennis_test

import (
	"context"
	"testing"
	"time"

	"github.com/lhclub/recordkeeper/internal/database"
	"github.com/lhclub/recordkeeper/internal/kv"
	"github.com/lhclub/recordkeeper/internal/tennis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runForEachStore(t *testing.T, fn func(t *testing.T, store tennis.RecordStore)) {
	t.Helper()

	t.Run("remote", func(t *testing.T) {
		db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
		require.NoError(t, err)
		defer teardown()
		fn(t, tennis.NewStore(db))
	})

	t.Run("fallback", func(t *testing.T) {
		db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
		require.NoError(t, err)
		defer teardown()
		fn(t, tennis.NewFallbackStore(kv.New(db)))
	})
}

func TestRecordStoreAppendsInCreationOrder(t *testing.T) {
	runForEachStore(t, func(t *testing.T, store tennis.RecordStore) {
		ctx := context.Background()
		base := time.Now().Truncate(time.Second)

		first := tennis.Record{ID: "r1", Player1: "A", Player2: "B", Player3: "C", Player4: "D",
			ScoreLeft: 6, ScoreRight: 3, CreatedAt: base}
		second := tennis.Record{ID: "r2", Player1: "E", Player2: "F", Player3: "G", Player4: "H",
			ScoreLeft: 2, ScoreRight: 6, CreatedAt: base.Add(time.Minute)}

		require.NoError(t, store.Insert(ctx, first))
		require.NoError(t, store.Insert(ctx, second))

		records, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "r1", records[0].ID)
		assert.Equal(t, "r2", records[1].ID)
		assert.Equal(t, 6, records[0].ScoreLeft)
		assert.Equal(t, base.Unix(), records[0].CreatedAt.Unix())
	})
}

func TestRecordStoreNeverOverwrites(t *testing.T) {
	runForEachStore(t, func(t *testing.T, store tennis.RecordStore) {
		ctx := context.Background()
		rec := tennis.Record{ID: "r1", Player1: "A", Player2: "B", Player3: "C", Player4: "D", CreatedAt: time.Now()}

		require.NoError(t, store.Insert(ctx, rec))
		rec.ID = "r2"
		require.NoError(t, store.Insert(ctx, rec))

		records, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}
