package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// countedTables is a fixed list; table names are interpolated into SQL.
var countedTables = []string{"users", "tweets", "likes", "followers", "medias", "comments"}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountRows(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(countedTables))

	for _, table := range countedTables {
		var count int
		if err := r.db.GetContext(ctx, &count, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)); err != nil {
			return nil, fmt.Errorf("count rows in %s: %w", table, err)
		}
		counts[table] = count
	}

	return counts, nil
}
