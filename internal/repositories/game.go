package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
)

// GameReadRepository handles read access to recorded game rounds. This
// service never writes games; they are produced by the game engine.
type GameReadRepository struct {
	db *sqlx.DB
}

func NewGameReadRepository(db *sqlx.DB) *GameReadRepository {
	return &GameReadRepository{db: db}
}

// List returns one page of games, newest first, joined with the owning
// user's display fields. The LEFT JOIN tolerates dangling references: rows
// whose user was deleted come back with NULL user columns.
func (r *GameReadRepository) List(ctx context.Context, offset, limit int) ([]models.GameDB, error) {
	const query = `
		SELECT g.game_id, g.user_id, u.first_name, u.last_name,
		       g.number, g.result, g.points_change, g.new_balance, g.created_at
		FROM games g
		LEFT JOIN users u ON u.user_id = g.user_id
		ORDER BY g.created_at DESC
		OFFSET $1 LIMIT $2
	`

	var games []models.GameDB
	err := r.db.SelectContext(ctx, &games, query, offset, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{offset, limit},
		"result", len(games),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return games, nil
}

// Count returns the total number of recorded games.
func (r *GameReadRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM games`

	var total int
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow(
		"query", query,
		"result", total,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return total, nil
}
