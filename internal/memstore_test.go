package internal

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memStore implements Store in memory so handler tests run without Postgres.
type memStore struct {
	mu    sync.Mutex
	seq   map[string]int
	clock time.Time

	users     []User
	news      []News
	comments  []Comment
	players   []Player
	matches   []Match
	standings []Standing
	actions   []ActionLog
}

func newMemStore() *memStore {
	return &memStore{
		seq:   map[string]int{},
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// id mimics a per-table serial column.
func (s *memStore) id(table string) int {
	s.seq[table]++
	return s.seq[table]
}

// tick stands in for the database's now(); each call is strictly later.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

/* ===================== USERS ===================== */

func (s *memStore) CreateUser(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ex := range s.users {
		if ex.Username == u.Username || ex.Email == u.Email {
			return ErrDuplicate
		}
	}
	u.ID = s.id("users")
	s.users = append(s.users, *u)
	return nil
}

func (s *memStore) UserByID(_ context.Context, id int) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *memStore) UserByEmail(_ context.Context, email string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *memStore) CountUsers(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), nil
}

/* ===================== NEWS ===================== */

func (s *memStore) CreateNews(_ context.Context, n *News) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.id("news")
	n.DatePosted = s.tick()
	s.news = append(s.news, *n)
	return nil
}

func (s *memStore) NewsByID(_ context.Context, id int) (News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.news {
		if n.ID == id {
			return n, nil
		}
	}
	return News{}, ErrNotFound
}

func (s *memStore) UpdateNews(_ context.Context, n News) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ex := range s.news {
		if ex.ID == n.ID {
			n.DatePosted = ex.DatePosted
			s.news[i] = n
			return nil
		}
	}
	return ErrNotFound
}

func (s *memStore) DeleteNews(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.news {
		if n.ID == id {
			s.news = append(s.news[:i], s.news[i+1:]...)
			kept := s.comments[:0]
			for _, cm := range s.comments {
				if cm.NewsID != id {
					kept = append(kept, cm)
				}
			}
			s.comments = kept
			return nil
		}
	}
	return ErrNotFound
}

func (s *memStore) ListNews(_ context.Context) ([]News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]News(nil), s.news...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DatePosted.Equal(out[j].DatePosted) {
			return out[i].DatePosted.After(out[j].DatePosted)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

/* ===================== COMMENTS ===================== */

func (s *memStore) CreateComment(_ context.Context, cm *Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cm.ID = s.id("comments")
	cm.DatePosted = s.tick()
	s.comments = append(s.comments, *cm)
	return nil
}

func (s *memStore) CommentsForNews(_ context.Context, newsID int) ([]Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Comment
	for _, cm := range s.comments {
		if cm.NewsID == newsID {
			for _, u := range s.users {
				if u.ID == cm.UserID {
					cm.Author = u.Username
				}
			}
			out = append(out, cm)
		}
	}
	return out, nil
}

func (s *memStore) DeleteComment(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cm := range s.comments {
		if cm.ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

/* ===================== PLAYERS ===================== */

func (s *memStore) CreatePlayer(_ context.Context, p *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id("players")
	s.players = append(s.players, *p)
	return nil
}

func (s *memStore) PlayerByID(_ context.Context, id int) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		if p.ID == id {
			return p, nil
		}
	}
	return Player{}, ErrNotFound
}

func (s *memStore) UpdatePlayer(_ context.Context, p Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ex := range s.players {
		if ex.ID == p.ID {
			s.players[i] = p
			return nil
		}
	}
	return ErrNotFound
}

func (s *memStore) DeletePlayer(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.players {
		if p.ID == id {
			s.players = append(s.players[:i], s.players[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *memStore) ListPlayers(_ context.Context) ([]Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Player(nil), s.players...), nil
}

/* ===================== MATCHES ===================== */

func (s *memStore) CreateMatch(_ context.Context, m *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.id("matches")
	s.matches = append(s.matches, *m)
	return nil
}

func (s *memStore) MatchByID(_ context.Context, id int) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return Match{}, ErrNotFound
}

func (s *memStore) UpdateMatch(_ context.Context, m Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ex := range s.matches {
		if ex.ID == m.ID {
			s.matches[i] = m
			return nil
		}
	}
	return ErrNotFound
}

func (s *memStore) DeleteMatch(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.matches {
		if m.ID == id {
			s.matches = append(s.matches[:i], s.matches[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *memStore) UpcomingMatches(_ context.Context, limit int) ([]Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Match
	for _, m := range s.matches {
		if !m.IsPlayed {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) PlayedMatches(_ context.Context) ([]Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Match
	for _, m := range s.matches {
		if m.IsPlayed {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

/* ===================== STANDINGS ===================== */

func (s *memStore) CreateStanding(_ context.Context, st *Standing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ex := range s.standings {
		if ex.Position == st.Position {
			return ErrDuplicate
		}
	}
	st.ID = s.id("standings")
	s.standings = append(s.standings, *st)
	return nil
}

func (s *memStore) StandingByID(_ context.Context, id int) (Standing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.standings {
		if st.ID == id {
			return st, nil
		}
	}
	return Standing{}, ErrNotFound
}

func (s *memStore) UpdateStanding(_ context.Context, st Standing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ex := range s.standings {
		if ex.Position == st.Position && ex.ID != st.ID {
			return ErrDuplicate
		}
	}
	for i, ex := range s.standings {
		if ex.ID == st.ID {
			s.standings[i] = st
			return nil
		}
	}
	return ErrNotFound
}

func (s *memStore) DeleteStanding(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.standings {
		if st.ID == id {
			s.standings = append(s.standings[:i], s.standings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *memStore) ListStandings(_ context.Context) ([]Standing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]Standing(nil), s.standings...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (s *memStore) StandingPositionTaken(_ context.Context, position, excludeID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.standings {
		if st.Position == position && st.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

/* ===================== AUDIT LOG ===================== */

func (s *memStore) LogAction(_ context.Context, actorID *int, action, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	actor := "(system)"
	if actorID != nil {
		for _, u := range s.users {
			if u.ID == *actorID {
				actor = u.Username
			}
		}
	}
	s.actions = append(s.actions, ActionLog{
		ID:        int64(len(s.actions) + 1),
		CreatedAt: s.tick(),
		Actor:     actor,
		Action:    action,
		Details:   details,
	})
}

func (s *memStore) ListActions(_ context.Context) ([]ActionLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]ActionLog(nil), s.actions...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
