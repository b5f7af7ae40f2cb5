package internal

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type newsInput struct {
	Title    string `json:"title" binding:"required,max=100"`
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"image_url" binding:"required,max=500"`
}

// GET /news — newest first
func NewsIndex(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := s.ListNews(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		c.JSON(200, out)
	}
}

// GET /news/:id — article plus its comments
func NewsDetail(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		ctx := c.Request.Context()

		post, err := s.NewsByID(ctx, id)
		if err != nil {
			c.JSON(404, gin.H{"error": "news not found"})
			return
		}
		comments, err := s.CommentsForNews(ctx, id)
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		c.JSON(200, gin.H{"post": post, "comments": comments})
	}
}

// POST /news/:id — any logged-in user may comment
func AddComment(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := uid(c)
		newsID, _ := strconv.Atoi(c.Param("id"))

		var req struct {
			Text string `json:"text" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		if _, err := s.NewsByID(ctx, newsID); err != nil {
			c.JSON(404, gin.H{"error": "news not found"})
			return
		}

		cm := Comment{Text: req.Text, UserID: userID, NewsID: newsID}
		if err := s.CreateComment(ctx, &cm); err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(ctx, &userID, "add_comment", "news_id="+strconv.Itoa(newsID))
		c.JSON(200, gin.H{"ok": true, "id": cm.ID})
	}
}

// POST /news/new (admin)
func CreateNews(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		var req newsInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		n := News{Title: req.Title, Content: req.Content, ImageURL: req.ImageURL}
		if err := s.CreateNews(c.Request.Context(), &n); err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &actor, "create_news", req.Title)
		c.JSON(200, gin.H{"ok": true, "id": n.ID})
	}
}

// POST /news/:id/update (admin)
func UpdateNews(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		id, _ := strconv.Atoi(c.Param("id"))
		var req newsInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		n := News{ID: id, Title: req.Title, Content: req.Content, ImageURL: req.ImageURL}
		if err := s.UpdateNews(c.Request.Context(), n); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "news not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &actor, "update_news", "news_id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"ok": true})
	}
}

// POST /delete/news/:id (admin) — comments go with the article
func DeleteNews(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		id, _ := strconv.Atoi(c.Param("id"))

		if err := s.DeleteNews(c.Request.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "news not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &actor, "delete_news", "news_id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"ok": true})
	}
}

// POST /delete/comment/:id (admin)
func DeleteComment(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := uid(c)
		id, _ := strconv.Atoi(c.Param("id"))

		if err := s.DeleteComment(c.Request.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "comment not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &actor, "delete_comment", "comment_id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"ok": true})
	}
}
