package postgres

import (
	"context"
	"time"

	"github.com/true1853/Nykha-bot/internal/models"
)

func (s *Store) AddDiaryEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	entry.CreatedAt = entry.CreatedAt.UTC()
	err := s.db.QueryRowxContext(ctx,
		"INSERT INTO diary_entries (user_id, created_at, entry_text) VALUES ($1, $2, $3) RETURNING entry_id",
		entry.UserID, entry.CreatedAt, entry.Text).Scan(&entry.ID)
	if err != nil {
		return models.DiaryEntry{}, classify("add diary entry", err)
	}
	return entry, nil
}

func (s *Store) RecentDiaryEntries(ctx context.Context, userID models.UserID, limit int) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	err := s.db.SelectContext(ctx, &entries, `
		SELECT entry_id, user_id, created_at, entry_text FROM diary_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, entry_id DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, classify("recent diary entries", err)
	}
	for i := range entries {
		entries[i].CreatedAt = entries[i].CreatedAt.UTC()
	}
	if entries == nil {
		entries = []models.DiaryEntry{}
	}
	return entries, nil
}

func (s *Store) CountDiaryEntriesSince(ctx context.Context, userID models.UserID, since time.Time) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM diary_entries WHERE user_id = $1 AND created_at >= $2",
		userID, since.UTC())
	if err != nil {
		return 0, classify("count diary entries", err)
	}
	return n, nil
}
