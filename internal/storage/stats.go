// Package storage persists player statistics and the leaderboard in
// Redis. Game state itself never touches storage; tables live and die
// in memory.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bonaken-game/bonaken/internal/game/rule"
)

const (
	playerStatsKey = "player:stats:"
	leaderboardKey = "leaderboard:score"

	// Score changes per final ladder status.
	scoreEscaped  = 20  // climbed out before the game closed
	scoreBusted   = -10 // bought the round one time too many
	scoreSurvived = 5   // still on the ladder when the game ended
)

// PlayerStats is a player's lifetime record, keyed by nickname.
type PlayerStats struct {
	Nickname string `json:"nickname"`

	TotalGames int `json:"total_games"`
	Escaped    int `json:"escaped"`  // games finished eruit
	Busted     int `json:"busted"`   // games finished erin
	Survived   int `json:"survived"` // games that ended around them

	Score         int `json:"score"`
	CurrentStreak int `json:"current_streak"` // positive escapes, negative busts
	MaxWinStreak  int `json:"max_win_streak"`

	LastPlayedAt int64 `json:"last_played_at"`
	CreatedAt    int64 `json:"created_at"`
}

// LeaderboardEntry is one row of the score ranking.
type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	Nickname string  `json:"nickname"`
	Score    int     `json:"score"`
	Escaped  int     `json:"escaped"`
	WinRate  float64 `json:"win_rate"`
}

// StatsStore reads and writes player records in Redis.
type StatsStore struct {
	client *redis.Client
}

// NewStatsStore wraps a Redis client.
func NewStatsStore(client *redis.Client) *StatsStore {
	return &StatsStore{client: client}
}

func statsKey(nickname string) string {
	return playerStatsKey + strings.ToLower(nickname)
}

// GetStats loads a player's record, nil when the player is unknown.
func (s *StatsStore) GetStats(ctx context.Context, nickname string) (*PlayerStats, error) {
	data, err := s.client.Get(ctx, statsKey(nickname)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *StatsStore) saveStats(ctx context.Context, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, statsKey(stats.Nickname), data, 0).Err(); err != nil {
		return err
	}
	return s.client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(stats.Score),
		Member: strings.ToLower(stats.Nickname),
	}).Err()
}

// RecordResult folds one game's final status into a player's record.
func (s *StatsStore) RecordResult(ctx context.Context, nickname string, status rule.Status) error {
	stats, err := s.GetStats(ctx, nickname)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &PlayerStats{
			Nickname:  nickname,
			CreatedAt: time.Now().Unix(),
		}
	}

	stats.Nickname = nickname
	stats.TotalGames++
	stats.LastPlayedAt = time.Now().Unix()

	switch status {
	case rule.StatusEruit:
		stats.Escaped++
		stats.Score += scoreEscaped
		stats.CurrentStreak = max(1, stats.CurrentStreak+1)
	case rule.StatusErin:
		stats.Busted++
		stats.Score = max(0, stats.Score+scoreBusted)
		stats.CurrentStreak = min(-1, stats.CurrentStreak-1)
	default:
		stats.Survived++
		stats.Score += scoreSurvived
	}
	if stats.CurrentStreak > stats.MaxWinStreak {
		stats.MaxWinStreak = stats.CurrentStreak
	}

	return s.saveStats(ctx, stats)
}

// GetLeaderboard returns a page of the score ranking, highest first.
func (s *StatsStore) GetLeaderboard(ctx context.Context, offset, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	results, err := s.client.ZRevRangeWithScores(ctx, leaderboardKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, result := range results {
		nickname, _ := result.Member.(string)

		stats, err := s.GetStats(ctx, nickname)
		if err != nil || stats == nil {
			continue
		}

		winRate := 0.0
		if stats.TotalGames > 0 {
			winRate = float64(stats.Escaped) / float64(stats.TotalGames) * 100
		}

		entries = append(entries, LeaderboardEntry{
			Rank:     offset + i + 1,
			Nickname: stats.Nickname,
			Score:    int(result.Score),
			Escaped:  stats.Escaped,
			WinRate:  winRate,
		})
	}
	return entries, nil
}

// GetPlayerRank returns a player's 1-based rank, -1 when unranked.
func (s *StatsStore) GetPlayerRank(ctx context.Context, nickname string) (int64, error) {
	rank, err := s.client.ZRevRank(ctx, leaderboardKey, strings.ToLower(nickname)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		return -1, err
	}
	return rank + 1, nil
}
