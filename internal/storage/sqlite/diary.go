package sqlite

import (
	"context"
	"time"

	"github.com/true1853/Nykha-bot/internal/models"
)

type diaryRow struct {
	models.DiaryEntry
	CreatedAt string `db:"created_at"`
}

func (s *Store) AddDiaryEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO diary_entries (user_id, created_at, entry_text) VALUES (?, ?, ?)",
		entry.UserID, formatTime(entry.CreatedAt), entry.Text)
	if err != nil {
		return models.DiaryEntry{}, classify("add diary entry", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.DiaryEntry{}, classify("add diary entry", err)
	}
	entry.ID = id
	entry.CreatedAt = entry.CreatedAt.UTC()
	return entry, nil
}

func (s *Store) RecentDiaryEntries(ctx context.Context, userID models.UserID, limit int) ([]models.DiaryEntry, error) {
	var rows []diaryRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT entry_id, user_id, created_at, entry_text FROM diary_entries
		WHERE user_id = ?
		ORDER BY created_at DESC, entry_id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, classify("recent diary entries", err)
	}

	entries := make([]models.DiaryEntry, 0, len(rows))
	for _, r := range rows {
		e := r.DiaryEntry
		t, err := parseTime(r.CreatedAt)
		if err != nil {
			return nil, err
		}
		e.CreatedAt = t
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *Store) CountDiaryEntriesSince(ctx context.Context, userID models.UserID, since time.Time) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM diary_entries WHERE user_id = ? AND created_at >= ?",
		userID, formatTime(since))
	if err != nil {
		return 0, classify("count diary entries", err)
	}
	return n, nil
}
