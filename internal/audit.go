package internal

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GET /admin/logs — persisted trail of auth and admin actions, newest first
func AdminLogs(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := s.ListActions(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("listing audit log")
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		c.JSON(200, out)
	}
}
