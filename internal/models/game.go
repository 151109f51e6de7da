package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// GameDB is one finished game round as read from the database, joined with the
// owning user's display fields. The join is a LEFT JOIN: when the user was
// deleted after the round was recorded, the user columns come back NULL.
type GameDB struct {
	GameID       uuid.UUID      `db:"game_id"`
	UserID       uuid.NullUUID  `db:"user_id"`
	FirstName    sql.NullString `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	Number       int            `db:"number"`
	Result       string         `db:"result"`
	PointsChange int            `db:"points_change"`
	NewBalance   int            `db:"new_balance"`
	CreatedAt    time.Time      `db:"created_at"`
}

// GameUser is the reduced owner reference embedded in a game item.
type GameUser struct {
	ID        uuid.UUID `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

// Game is the API shape of one game round. User is nil for dangling
// references, never an error.
type Game struct {
	ID           uuid.UUID `json:"_id"`
	User         *GameUser `json:"user"`
	Number       int       `json:"number"`
	Result       string    `json:"result"`
	PointsChange int       `json:"pointsChange"`
	NewBalance   int       `json:"newBalance"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToGame maps a joined database row to its API shape.
func (g *GameDB) ToGame() Game {
	game := Game{
		ID:           g.GameID,
		Number:       g.Number,
		Result:       g.Result,
		PointsChange: g.PointsChange,
		NewBalance:   g.NewBalance,
		CreatedAt:    g.CreatedAt,
	}
	if g.UserID.Valid {
		game.User = &GameUser{
			ID:        g.UserID.UUID,
			FirstName: g.FirstName.String,
			LastName:  g.LastName.String,
		}
	}
	return game
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total int `json:"total"` // Total matching rows
	Page  int `json:"page"`  // Current page, 1-based
	Pages int `json:"pages"` // ceil(total/limit)
	Limit int `json:"limit"` // Page size
}

// GamesPage is the payload of the admin games listing.
type GamesPage struct {
	Games      []Game     `json:"games"`
	Pagination Pagination `json:"pagination"`
}
