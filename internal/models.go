package internal

import "time"

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	PassHash string `json:"-"`
	IsAdmin  bool   `json:"is_admin"`
}

type News struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ImageURL   string    `json:"image_url"`
	DatePosted time.Time `json:"date_posted"`
}

type Comment struct {
	ID         int       `json:"id"`
	Text       string    `json:"text"`
	DatePosted time.Time `json:"date_posted"`
	UserID     int       `json:"user_id"`
	NewsID     int       `json:"news_id"`
	Author     string    `json:"author,omitempty"`
}

type Player struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Age      int    `json:"age"`
	Height   int    `json:"height"`
	Weight   int    `json:"weight"`
	ImageURL string `json:"image_url"`
}

type Match struct {
	ID         int       `json:"id"`
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	Date       time.Time `json:"date"`
	Venue      string    `json:"venue"`
	TicketLink string    `json:"ticket_link,omitempty"`
	IsPlayed   bool      `json:"is_played"`
	HomeScore  *int      `json:"home_score,omitempty"`
	AwayScore  *int      `json:"away_score,omitempty"`
	Outcome    *string   `json:"outcome,omitempty"` // win|loss|draw
}

type Standing struct {
	ID       int    `json:"id"`
	Position int    `json:"position"`
	TeamName string `json:"team_name"`
	Played   int    `json:"played"`
	Points   int    `json:"points"`
}

type ActionLog struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}
