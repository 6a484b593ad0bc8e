// Package content serves the mantra catalog and the private diary.
package content

import (
	"context"

	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/models"
)

type MantraStore interface {
	CountMantras(ctx context.Context) (int, error)
	InsertMantrasIfAbsent(ctx context.Context, mantras []models.Mantra) (int, error)
	RandomMantra(ctx context.Context, category string) (models.Mantra, error)
	MantraCategories(ctx context.Context) ([]string, error)
	MantrasByCategory(ctx context.Context, category string) ([]models.Mantra, error)
}

type Mantras struct {
	store MantraStore
}

func NewMantras(store MantraStore) *Mantras {
	return &Mantras{store: store}
}

// SeedIfEmpty loads catalog when the table has no rows. It is safe to call on every
// start: a non-empty table is left alone and duplicate texts are skipped.
func (m *Mantras) SeedIfEmpty(ctx context.Context, catalog []models.Mantra) (int, error) {
	n, err := m.store.CountMantras(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Debug("Mantra table already seeded", "count", n)
		return 0, nil
	}

	inserted, err := m.store.InsertMantrasIfAbsent(ctx, catalog)
	if err != nil {
		return 0, err
	}
	logger.Info("Mantras seeded", "inserted", inserted)
	return inserted, nil
}

// Random returns any mantra, or ErrNotFound when the catalog is empty.
func (m *Mantras) Random(ctx context.Context) (models.Mantra, error) {
	return m.store.RandomMantra(ctx, "")
}

// RandomByCategory prefers category and falls back to any mantra.
func (m *Mantras) RandomByCategory(ctx context.Context, category string) (models.Mantra, error) {
	if category != "" {
		mantra, err := m.store.RandomMantra(ctx, category)
		if err == nil {
			return mantra, nil
		}
		if !apperrors.IsNotFound(err) {
			return models.Mantra{}, err
		}
	}
	return m.Random(ctx)
}

func (m *Mantras) Categories(ctx context.Context) ([]string, error) {
	return m.store.MantraCategories(ctx)
}

func (m *Mantras) ByCategory(ctx context.Context, category string) ([]models.Mantra, error) {
	return m.store.MantrasByCategory(ctx, category)
}
