package internal

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// storeErr maps driver errors onto the store sentinels.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

/* ===================== USERS ===================== */

func (s *PGStore) CreateUser(ctx context.Context, u *User) error {
	err := qRow(ctx, s.db, psql.Insert("users").
		Columns("username", "email", "pass_hash", "is_admin").
		Values(u.Username, u.Email, u.PassHash, u.IsAdmin).
		Suffix("RETURNING id"),
	).Scan(&u.ID)
	return storeErr(err)
}

func (s *PGStore) UserByID(ctx context.Context, id int) (User, error) {
	var u User
	err := qRow(ctx, s.db, psql.Select("id", "username", "email", "pass_hash", "is_admin").
		From("users").Where(sq.Eq{"id": id}),
	).Scan(&u.ID, &u.Username, &u.Email, &u.PassHash, &u.IsAdmin)
	return u, storeErr(err)
}

func (s *PGStore) UserByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := qRow(ctx, s.db, psql.Select("id", "username", "email", "pass_hash", "is_admin").
		From("users").Where(sq.Eq{"email": email}),
	).Scan(&u.ID, &u.Username, &u.Email, &u.PassHash, &u.IsAdmin)
	return u, storeErr(err)
}

func (s *PGStore) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := qRow(ctx, s.db, psql.Select("COUNT(*)").From("users")).Scan(&n)
	return n, err
}

/* ===================== NEWS ===================== */

func (s *PGStore) CreateNews(ctx context.Context, n *News) error {
	err := qRow(ctx, s.db, psql.Insert("news").
		Columns("title", "content", "image_url").
		Values(n.Title, n.Content, n.ImageURL).
		Suffix("RETURNING id, date_posted"),
	).Scan(&n.ID, &n.DatePosted)
	return storeErr(err)
}

func (s *PGStore) NewsByID(ctx context.Context, id int) (News, error) {
	var n News
	err := qRow(ctx, s.db, psql.Select("id", "title", "content", "image_url", "date_posted").
		From("news").Where(sq.Eq{"id": id}),
	).Scan(&n.ID, &n.Title, &n.Content, &n.ImageURL, &n.DatePosted)
	return n, storeErr(err)
}

// UpdateNews leaves date_posted untouched; it is assigned once at creation.
func (s *PGStore) UpdateNews(ctx context.Context, n News) error {
	tag, err := qExec(ctx, s.db, psql.Update("news").
		Set("title", n.Title).
		Set("content", n.Content).
		Set("image_url", n.ImageURL).
		Where(sq.Eq{"id": n.ID}))
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteNews drops dependent comments through the FK cascade.
func (s *PGStore) DeleteNews(ctx context.Context, id int) error {
	tag, err := qExec(ctx, s.db, psql.Delete("news").Where(sq.Eq{"id": id}))
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) ListNews(ctx context.Context) ([]News, error) {
	rows, err := qQuery(ctx, s.db, psql.Select("id", "title", "content", "image_url", "date_posted").
		From("news").OrderBy("date_posted DESC, id DESC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []News
	for rows.Next() {
		var n News
		_ = rows.Scan(&n.ID, &n.Title, &n.Content, &n.ImageURL, &n.DatePosted)
		out = append(out, n)
	}
	return out, rows.Err()
}

/* ===================== COMMENTS ===================== */

func (s *PGStore) CreateComment(ctx context.Context, cm *Comment) error {
	err := qRow(ctx, s.db, psql.Insert("comments").
		Columns("text", "user_id", "news_id").
		Values(cm.Text, cm.UserID, cm.NewsID).
		Suffix("RETURNING id, date_posted"),
	).Scan(&cm.ID, &cm.DatePosted)
	return storeErr(err)
}

func (s *PGStore) CommentsForNews(ctx context.Context, newsID int) ([]Comment, error) {
	rows, err := qQuery(ctx, s.db, psql.
		Select("c.id", "c.text", "c.date_posted", "c.user_id", "c.news_id", "u.username").
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(sq.Eq{"c.news_id": newsID}).
		OrderBy("c.id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Comment
	for rows.Next() {
		var cm Comment
		_ = rows.Scan(&cm.ID, &cm.Text, &cm.DatePosted, &cm.UserID, &cm.NewsID, &cm.Author)
		out = append(out, cm)
	}
	return out, rows.Err()
}

func (s *PGStore) DeleteComment(ctx context.Context, id int) error {
	tag, err := qExec(ctx, s.db, psql.Delete("comments").Where(sq.Eq{"id": id}))
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

/* ===================== PLAYERS ===================== */

func (s *PGStore) CreatePlayer(ctx context.Context, p *Player) error {
	err := qRow(ctx, s.db, psql.Insert("players").
		Columns("name", "position", "age", "height", "weight", "image_url").
		Values(p.Name, p.Position, p.Age, p.Height, p.Weight, p.ImageURL).
		Suffix("RETURNING id"),
	).Scan(&p.ID)
	return storeErr(err)
}

func (s *PGStore) PlayerByID(ctx context.Context, id int) (Player, error) {
	var p Player
	err := qRow(ctx, s.db, psql.Select("id", "name", "position", "age", "height", "weight", "image_url").
		From("players").Where(sq.Eq{"id": id}),
	).Scan(&p.ID, &p.Name, &p.Position, &p.Age, &p.Height, &p.Weight, &p.ImageURL)
	return p, storeErr(err)
}

func (s *PGStore) UpdatePlayer(ctx context.Context, p Player) error {
	tag, err := qExec(ctx, s.db, psql.Update("players").
		Set("name", p.Name).
		Set("position", p.Position).
		Set("age", p.Age).
		Set("height", p.Height).
		Set("weight", p.Weight).
		Set("image_url", p.ImageURL).
		Where(sq.Eq{"id": p.ID}))
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) DeletePlayer(ctx context.Context, id int) error {
	tag, err := qExec(ctx, s.db, psql.Delete("players").Where(sq.Eq{"id": id}))
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) ListPlayers(ctx context.Context) ([]Player, error) {
	rows, err := qQuery(ctx, s.db, psql.Select("id", "name", "position", "age", "height", "weight", "image_url").
		From("players").OrderBy("id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Player
	for rows.Next() {
		var p Player
		_ = rows.Scan(&p.ID, &p.Name, &p.Position, &p.Age, &p.Height, &p.Weight, &p.ImageURL)
		out = append(out, p)
	}
	return out, rows.Err()
}

/* ===================== MATCHES ===================== */

var matchCols = []string{"id", "home_team", "away_team", "date", "venue", "ticket_link", "is_played", "home_score", "away_score", "outcome"}

func scanMatch(row pgx.Row, m *Match) error {
	var ticket *string
	err := row.Scan(&m.ID, &m.HomeTeam, &m.AwayTeam, &m.Date, &m.Venue,
		&ticket, &m.IsPlayed, &m.HomeScore, &m.AwayScore, &m.Outcome)
	if ticket != nil {
		m.TicketLink = *ticket
	}
	return err
}

func (s *PGStore) CreateMatch(ctx context.Context, m *Match) error {
	err := qRow(ctx, s.db, psql.Insert("matches").
		Columns("home_team", "away_team", "date", "venue", "ticket_link", "is_played", "home_score", "away_score", "outcome").
		Values(m.HomeTeam, m.AwayTeam, m.Date, m.Venue, nullStr(m.TicketLink), m.IsPlayed, m.HomeScore, m.AwayScore, m.Outcome).
		Suffix("RETURNING id"),
	).Scan(&m.ID)
	return storeErr(err)
}

func (s *PGStore) MatchByID(ctx context.Context, id int) (Match, error) {
	var m Match
	err := scanMatch(qRow(ctx, s.db, psql.Select(matchCols...).
		From("matches").Where(sq.Eq{"id": id})), &m)
	return m, storeErr(err)
}

func (s *PGStore) UpdateMatch(ctx context.Context, m Match) error {
	tag, err := qExec(ctx, s.db, psql.Update("matches").
		Set("home_team", m.HomeTeam).
		Set("away_team", m.AwayTeam).
		Set("date", m.Date).
		Set("venue", m.Venue).
		Set("ticket_link", nullStr(m.TicketLink)).
		Set("is_played", m.IsPlayed).
		Set("home_score", m.HomeScore).
		Set("away_score", m.AwayScore).
		Set("outcome", m.Outcome).
		Where(sq.Eq{"id": m.ID}))
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) DeleteMatch(ctx context.Context, id int) error {
	tag, err := qExec(ctx, s.db, psql.Delete("matches").Where(sq.Eq{"id": id}))
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) listMatches(ctx context.Context, q sq.SelectBuilder) ([]Match, error) {
	rows, err := qQuery(ctx, s.db, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		var m Match
		if err := scanMatch(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *PGStore) UpcomingMatches(ctx context.Context, limit int) ([]Match, error) {
	q := psql.Select(matchCols...).From("matches").
		Where(sq.Eq{"is_played": false}).
		OrderBy("date ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return s.listMatches(ctx, q)
}

func (s *PGStore) PlayedMatches(ctx context.Context) ([]Match, error) {
	return s.listMatches(ctx, psql.Select(matchCols...).From("matches").
		Where(sq.Eq{"is_played": true}).
		OrderBy("date DESC"))
}

/* ===================== STANDINGS ===================== */

func (s *PGStore) CreateStanding(ctx context.Context, st *Standing) error {
	err := qRow(ctx, s.db, psql.Insert("standings").
		Columns("position", "team_name", "played", "points").
		Values(st.Position, st.TeamName, st.Played, st.Points).
		Suffix("RETURNING id"),
	).Scan(&st.ID)
	return storeErr(err)
}

func (s *PGStore) StandingByID(ctx context.Context, id int) (Standing, error) {
	var st Standing
	err := qRow(ctx, s.db, psql.Select("id", "position", "team_name", "played", "points").
		From("standings").Where(sq.Eq{"id": id}),
	).Scan(&st.ID, &st.Position, &st.TeamName, &st.Played, &st.Points)
	return st, storeErr(err)
}

func (s *PGStore) UpdateStanding(ctx context.Context, st Standing) error {
	tag, err := qExec(ctx, s.db, psql.Update("standings").
		Set("position", st.Position).
		Set("team_name", st.TeamName).
		Set("played", st.Played).
		Set("points", st.Points).
		Where(sq.Eq{"id": st.ID}))
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) DeleteStanding(ctx context.Context, id int) error {
	tag, err := qExec(ctx, s.db, psql.Delete("standings").Where(sq.Eq{"id": id}))
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) ListStandings(ctx context.Context) ([]Standing, error) {
	rows, err := qQuery(ctx, s.db, psql.Select("id", "position", "team_name", "played", "points").
		From("standings").OrderBy("position ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Standing
	for rows.Next() {
		var st Standing
		_ = rows.Scan(&st.ID, &st.Position, &st.TeamName, &st.Played, &st.Points)
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *PGStore) StandingPositionTaken(ctx context.Context, position, excludeID int) (bool, error) {
	var one int
	err := qRow(ctx, s.db, psql.Select("1").From("standings").
		Where(sq.Eq{"position": position}).
		Where(sq.NotEq{"id": excludeID}),
	).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

/* ===================== AUDIT LOG ===================== */

func (s *PGStore) LogAction(ctx context.Context, actorID *int, action, details string) {
	_, _ = qExec(ctx, s.db, psql.Insert("logs").
		Columns("actor_id", "action", "details").
		Values(actorID, action, details))
}

func (s *PGStore) ListActions(ctx context.Context) ([]ActionLog, error) {
	rows, err := qQuery(ctx, s.db, psql.
		Select("l.id", "l.created_at", "COALESCE(u.username,'(system)')", "l.action", "l.details").
		From("logs l").
		LeftJoin("users u ON u.id = l.actor_id").
		OrderBy("l.id DESC").Limit(200))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ActionLog
	for rows.Next() {
		var a ActionLog
		if err := rows.Scan(&a.ID, &a.CreatedAt, &a.Actor, &a.Action, &a.Details); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func nullStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
