package internal

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type matchInput struct {
	HomeTeam   string    `json:"home_team" binding:"required,max=100"`
	AwayTeam   string    `json:"away_team" binding:"required,max=100"`
	Date       time.Time `json:"date" binding:"required"`
	Venue      string    `json:"venue" binding:"required,max=100"`
	TicketLink string    `json:"ticket_link" binding:"omitempty,max=500"`
	IsPlayed   bool      `json:"is_played"`
	HomeScore  *int      `json:"home_score"`
	AwayScore  *int      `json:"away_score"`
	Outcome    string    `json:"outcome" binding:"omitempty,oneof=win loss draw"`
}

// toMatch validates the played/scores/outcome implication: a played match
// carries both scores and an outcome, an unplayed one carries neither.
func (in *matchInput) toMatch(id int) (Match, string) {
	m := Match{
		ID:         id,
		HomeTeam:   in.HomeTeam,
		AwayTeam:   in.AwayTeam,
		Date:       in.Date,
		Venue:      in.Venue,
		TicketLink: in.TicketLink,
		IsPlayed:   in.IsPlayed,
	}
	if in.IsPlayed {
		if in.HomeScore == nil || in.AwayScore == nil || in.Outcome == "" {
			return m, "played match requires home_score, away_score and outcome"
		}
		m.HomeScore = in.HomeScore
		m.AwayScore = in.AwayScore
		outcome := in.Outcome
		m.Outcome = &outcome
	}
	return m, ""
}

// GET / — next match plus the three soonest fixtures
func Home(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		upcoming, err := s.UpcomingMatches(c.Request.Context(), 3)
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		var next *Match
		if len(upcoming) > 0 {
			next = &upcoming[0]
		}
		c.JSON(200, gin.H{"matches": upcoming, "next_match": next})
	}
}

// GET /matches — fixtures, results and the league table in one payload
func MatchesIndex(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		upcoming, err := s.UpcomingMatches(ctx, 0)
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		played, err := s.PlayedMatches(ctx)
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		table, err := s.ListStandings(ctx)
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		c.JSON(200, gin.H{"upcoming": upcoming, "played": played, "table": table})
	}
}

// POST /match/new (admin)
func CreateMatch(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		var req matchInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		m, msg := req.toMatch(0)
		if msg != "" {
			c.JSON(400, gin.H{"error": msg})
			return
		}

		if err := s.CreateMatch(c.Request.Context(), &m); err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &actor, "create_match", m.HomeTeam+" vs "+m.AwayTeam)
		c.JSON(200, gin.H{"ok": true, "id": m.ID})
	}
}

// POST /match/:id/update (admin)
func UpdateMatch(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		id, _ := strconv.Atoi(c.Param("id"))
		var req matchInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		m, msg := req.toMatch(id)
		if msg != "" {
			c.JSON(400, gin.H{"error": msg})
			return
		}

		if err := s.UpdateMatch(c.Request.Context(), m); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "match not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &actor, "update_match", "match_id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"ok": true})
	}
}

// POST /match/:id/delete (admin)
func DeleteMatch(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		id, _ := strconv.Atoi(c.Param("id"))

		if err := s.DeleteMatch(c.Request.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "match not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &actor, "delete_match", "match_id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"ok": true})
	}
}
