package internal

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

/* ===================== CONNECT ===================== */

func MustDB(url string) *pgxpool.Pool {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Fatal().Err(err).Msg("bad database url")
	}
	cfg.MaxConns = 10

	var pool *pgxpool.Pool

	deadline := time.Now().Add(30 * time.Second)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		pool, err = pgxpool.NewWithConfig(ctx, cfg)
		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr == nil {
				cancel()
				break
			}
			pool.Close()
			err = ctx.Err()
		}
		cancel()

		if time.Now().After(deadline) {
			log.Fatal().Err(err).Msg("failed to connect DB after retries")
		}
		time.Sleep(1 * time.Second)
	}

	return pool
}

/* ===================== SCHEMA ===================== */

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(20) UNIQUE NOT NULL,
		email VARCHAR(120) UNIQUE NOT NULL,
		pass_hash VARCHAR(60) NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS news (
		id SERIAL PRIMARY KEY,
		title VARCHAR(100) NOT NULL,
		content TEXT NOT NULL,
		image_url VARCHAR(500) NOT NULL,
		date_posted TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id SERIAL PRIMARY KEY,
		text TEXT NOT NULL,
		date_posted TIMESTAMPTZ NOT NULL DEFAULT now(),
		user_id INTEGER NOT NULL REFERENCES users(id),
		news_id INTEGER NOT NULL REFERENCES news(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS players (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		position VARCHAR(50) NOT NULL,
		age INTEGER NOT NULL,
		height INTEGER NOT NULL,
		weight INTEGER NOT NULL,
		image_url VARCHAR(500) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id SERIAL PRIMARY KEY,
		home_team VARCHAR(100) NOT NULL,
		away_team VARCHAR(100) NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		venue VARCHAR(100) NOT NULL,
		ticket_link VARCHAR(500),
		is_played BOOLEAN NOT NULL DEFAULT FALSE,
		home_score INTEGER,
		away_score INTEGER,
		outcome VARCHAR(20)
	)`,
	`CREATE TABLE IF NOT EXISTS standings (
		id SERIAL PRIMARY KEY,
		position INTEGER UNIQUE NOT NULL,
		team_name VARCHAR(100) NOT NULL,
		played INTEGER NOT NULL DEFAULT 0,
		points INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS logs (
		id BIGSERIAL PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		actor_id INTEGER REFERENCES users(id),
		action TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT ''
	)`,
}

func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

/* ===================== SQUIRREL HELPERS ===================== */

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func qExec(ctx context.Context, db *pgxpool.Pool, q sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return db.Exec(ctx, sql, args...)
}

func qQuery(ctx context.Context, db *pgxpool.Pool, q sq.SelectBuilder) (pgx.Rows, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return db.Query(ctx, sql, args...)
}

func qRow(ctx context.Context, db *pgxpool.Pool, q sq.Sqlizer) pgx.Row {
	sql, args, _ := q.ToSql()
	return db.QueryRow(ctx, sql, args...)
}
