package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonaken-game/bonaken/internal/game/rule"
)

func newTestStore(t *testing.T) *StatsStore {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStatsStore(client)
}

func TestStatsStore_RecordResult(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	// Unknown player reads as nil, not an error.
	stats, err := store.GetStats(ctx, "ada")
	require.NoError(t, err)
	assert.Nil(t, stats)

	require.NoError(t, store.RecordResult(ctx, "ada", rule.StatusEruit))
	stats, err = store.GetStats(ctx, "ada")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.TotalGames)
	assert.Equal(t, 1, stats.Escaped)
	assert.Equal(t, scoreEscaped, stats.Score)
	assert.Equal(t, 1, stats.CurrentStreak)

	// A bust breaks the streak and costs points.
	require.NoError(t, store.RecordResult(ctx, "ada", rule.StatusErin))
	stats, err = store.GetStats(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalGames)
	assert.Equal(t, 1, stats.Busted)
	assert.Equal(t, scoreEscaped+scoreBusted, stats.Score)
	assert.Equal(t, -1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.MaxWinStreak)

	// Surviving an ended game counts but is neither win nor loss.
	require.NoError(t, store.RecordResult(ctx, "ada", rule.StatusWip))
	stats, err = store.GetStats(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Survived)
}

func TestStatsStore_ScoreFloorsAtZero(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordResult(ctx, "bob", rule.StatusErin))
	require.NoError(t, store.RecordResult(ctx, "bob", rule.StatusErin))

	stats, err := store.GetStats(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Score)
}

func TestStatsStore_NicknameCaseInsensitive(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordResult(ctx, "Ada", rule.StatusEruit))
	stats, err := store.GetStats(ctx, "ada")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.TotalGames)
}

func TestStatsStore_Leaderboard(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordResult(ctx, "ada", rule.StatusEruit))
	require.NoError(t, store.RecordResult(ctx, "ada", rule.StatusEruit))
	require.NoError(t, store.RecordResult(ctx, "bob", rule.StatusEruit))
	require.NoError(t, store.RecordResult(ctx, "eve", rule.StatusErin))

	entries, err := store.GetLeaderboard(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "ada", entries[0].Nickname)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2*scoreEscaped, entries[0].Score)
	assert.Equal(t, "bob", entries[1].Nickname)
	assert.InDelta(t, 100.0, entries[0].WinRate, 0.01)

	// Paging.
	entries, err = store.GetLeaderboard(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Rank)
	assert.Equal(t, "bob", entries[0].Nickname)
}

func TestStatsStore_PlayerRank(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	rank, err := store.GetPlayerRank(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), rank)

	require.NoError(t, store.RecordResult(ctx, "ada", rule.StatusEruit))
	require.NoError(t, store.RecordResult(ctx, "bob", rule.StatusErin))

	rank, err = store.GetPlayerRank(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rank)
}
