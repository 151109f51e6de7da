package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
)

// Listing defaults applied when page or limit are absent or unusable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// GameReader defines read access to recorded game rounds.
type GameReader interface {
	List(ctx context.Context, offset, limit int) ([]models.GameDB, error)
	Count(ctx context.Context) (int, error)
}

// GameService exposes the admin games listing.
type GameService struct {
	games GameReader
}

// NewGameService creates a new GameService.
func NewGameService(games GameReader) *GameService {
	return &GameService{games: games}
}

// List returns one page of games, newest first, with pagination metadata.
// The page fetch and the total count are independent reads and run
// concurrently; if either fails the whole listing fails. An empty result is
// a valid page: games=[], total=0, pages=0.
func (svc *GameService) List(ctx context.Context, page, limit int) (*models.GamesPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	var (
		records []models.GameDB
		total   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = svc.games.List(gctx, offset, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = svc.games.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to list games", "page", page, "limit", limit, "error", err)
		return nil, err
	}

	games := make([]models.Game, 0, len(records))
	for i := range records {
		games = append(games, records[i].ToGame())
	}

	pages := 0
	if total > 0 {
		pages = (total + limit - 1) / limit
	}

	return &models.GamesPage{
		Games: games,
		Pagination: models.Pagination{
			Total: total,
			Page:  page,
			Pages: pages,
			Limit: limit,
		},
	}, nil
}
