package internal

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type playerInput struct {
	Name     string `json:"name" binding:"required,max=100"`
	Position string `json:"position" binding:"required,max=50"`
	Age      int    `json:"age" binding:"required,min=1"`
	Height   int    `json:"height" binding:"required,min=1"` // cm
	Weight   int    `json:"weight" binding:"required,min=1"` // kg
	ImageURL string `json:"image_url" binding:"required,max=500"`
}

// GET /players
func PlayersIndex(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := s.ListPlayers(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		c.JSON(200, out)
	}
}

// POST /players/new (admin)
func CreatePlayer(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		var req playerInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		p := Player{
			Name:     req.Name,
			Position: req.Position,
			Age:      req.Age,
			Height:   req.Height,
			Weight:   req.Weight,
			ImageURL: req.ImageURL,
		}
		if err := s.CreatePlayer(c.Request.Context(), &p); err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &actor, "create_player", req.Name)
		c.JSON(200, gin.H{"ok": true, "id": p.ID})
	}
}

// POST /players/:id/update (admin)
func UpdatePlayer(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		id, _ := strconv.Atoi(c.Param("id"))
		var req playerInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		p := Player{
			ID:       id,
			Name:     req.Name,
			Position: req.Position,
			Age:      req.Age,
			Height:   req.Height,
			Weight:   req.Weight,
			ImageURL: req.ImageURL,
		}
		if err := s.UpdatePlayer(c.Request.Context(), p); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "player not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &actor, "update_player", "player_id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"ok": true})
	}
}

// POST /delete/player/:id (admin)
func DeletePlayer(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		id, _ := strconv.Atoi(c.Param("id"))

		if err := s.DeletePlayer(c.Request.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "player not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &actor, "delete_player", "player_id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"ok": true})
	}
}
