package internal

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type standingInput struct {
	Position int    `json:"position" binding:"required,min=1"`
	TeamName string `json:"team_name" binding:"required,max=100"`
	Played   int    `json:"played" binding:"min=0"`
	Points   int    `json:"points" binding:"min=0"`
}

// POST /standing/new (admin)
func CreateStanding(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		var req standingInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		taken, err := s.StandingPositionTaken(ctx, req.Position, 0)
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		if taken {
			c.JSON(400, gin.H{"error": "position already taken"})
			return
		}

		st := Standing{Position: req.Position, TeamName: req.TeamName, Played: req.Played, Points: req.Points}
		if err := s.CreateStanding(ctx, &st); err != nil {
			// the unique constraint backstops the check above
			if errors.Is(err, ErrDuplicate) {
				c.JSON(400, gin.H{"error": "position already taken"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(ctx, &actor, "create_standing", req.TeamName)
		c.JSON(200, gin.H{"ok": true, "id": st.ID})
	}
}

// POST /standing/:id/update (admin)
func UpdateStanding(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		id, _ := strconv.Atoi(c.Param("id"))
		var req standingInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		taken, err := s.StandingPositionTaken(ctx, req.Position, id)
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		if taken {
			c.JSON(400, gin.H{"error": "position already taken"})
			return
		}

		st := Standing{ID: id, Position: req.Position, TeamName: req.TeamName, Played: req.Played, Points: req.Points}
		if err := s.UpdateStanding(ctx, st); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "standing not found"})
				return
			}
			if errors.Is(err, ErrDuplicate) {
				c.JSON(400, gin.H{"error": "position already taken"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(ctx, &actor, "update_standing", "standing_id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"ok": true})
	}
}

// POST /standing/:id/delete (admin)
func DeleteStanding(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		id, _ := strconv.Atoi(c.Param("id"))

		if err := s.DeleteStanding(c.Request.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "standing not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &actor, "delete_standing", "standing_id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"ok": true})
	}
}
