package internal

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// Store is the persistence surface the handlers run against. The production
// implementation is PGStore; tests substitute an in-memory one.
type Store interface {
	CreateUser(ctx context.Context, u *User) error
	UserByID(ctx context.Context, id int) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	CountUsers(ctx context.Context) (int, error)

	CreateNews(ctx context.Context, n *News) error
	NewsByID(ctx context.Context, id int) (News, error)
	UpdateNews(ctx context.Context, n News) error
	DeleteNews(ctx context.Context, id int) error
	ListNews(ctx context.Context) ([]News, error)

	CreateComment(ctx context.Context, cm *Comment) error
	CommentsForNews(ctx context.Context, newsID int) ([]Comment, error)
	DeleteComment(ctx context.Context, id int) error

	CreatePlayer(ctx context.Context, p *Player) error
	PlayerByID(ctx context.Context, id int) (Player, error)
	UpdatePlayer(ctx context.Context, p Player) error
	DeletePlayer(ctx context.Context, id int) error
	ListPlayers(ctx context.Context) ([]Player, error)

	CreateMatch(ctx context.Context, m *Match) error
	MatchByID(ctx context.Context, id int) (Match, error)
	UpdateMatch(ctx context.Context, m Match) error
	DeleteMatch(ctx context.Context, id int) error
	UpcomingMatches(ctx context.Context, limit int) ([]Match, error)
	PlayedMatches(ctx context.Context) ([]Match, error)

	CreateStanding(ctx context.Context, st *Standing) error
	StandingByID(ctx context.Context, id int) (Standing, error)
	UpdateStanding(ctx context.Context, st Standing) error
	DeleteStanding(ctx context.Context, id int) error
	ListStandings(ctx context.Context) ([]Standing, error)
	StandingPositionTaken(ctx context.Context, position, excludeID int) (bool, error)

	LogAction(ctx context.Context, actorID *int, action, details string)
	ListActions(ctx context.Context) ([]ActionLog, error)
}
