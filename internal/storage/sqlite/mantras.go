package sqlite

import (
	"context"

	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/models"
)

func (s *Store) CountMantras(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM mantras"); err != nil {
		return 0, classify("count mantras", err)
	}
	return n, nil
}

func (s *Store) InsertMantrasIfAbsent(ctx context.Context, mantras []models.Mantra) (int, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, classify("insert mantras", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO mantras (category, text_primary, text_translation)
		VALUES (?, ?, ?)
		ON CONFLICT (text_primary) DO NOTHING`)
	if err != nil {
		return 0, classify("insert mantras", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, m := range mantras {
		res, err := stmt.ExecContext(ctx, m.Category, m.Text, m.Translation)
		if err != nil {
			return 0, classify("insert mantras", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, classify("insert mantras", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, classify("insert mantras", err)
	}
	logger.Debug("Mantras inserted", "inserted", inserted, "offered", len(mantras))
	return inserted, nil
}

func (s *Store) RandomMantra(ctx context.Context, category string) (models.Mantra, error) {
	var m models.Mantra
	var err error
	if category == "" {
		err = s.db.GetContext(ctx, &m, `
			SELECT mantra_id, category, text_primary, text_translation
			FROM mantras ORDER BY RANDOM() LIMIT 1`)
	} else {
		err = s.db.GetContext(ctx, &m, `
			SELECT mantra_id, category, text_primary, text_translation
			FROM mantras WHERE category = ? ORDER BY RANDOM() LIMIT 1`, category)
	}
	if err != nil {
		return models.Mantra{}, classify("random mantra", err)
	}
	return m, nil
}

func (s *Store) MantraCategories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := s.db.SelectContext(ctx, &cats, "SELECT DISTINCT category FROM mantras ORDER BY category"); err != nil {
		return nil, classify("mantra categories", err)
	}
	return cats, nil
}

func (s *Store) MantrasByCategory(ctx context.Context, category string) ([]models.Mantra, error) {
	var ms []models.Mantra
	err := s.db.SelectContext(ctx, &ms, `
		SELECT mantra_id, category, text_primary, text_translation
		FROM mantras WHERE category = ? ORDER BY mantra_id`, category)
	if err != nil {
		return nil, classify("mantras by category", err)
	}
	return ms, nil
}
