package internal

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func Register(s Store, cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username" binding:"required,min=2,max=20"`
			Email    string `json:"email" binding:"required,email,max=120"`
			Password string `json:"password" binding:"required,min=6,max=72"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		count, err := s.CountUsers(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		// First registered user runs the club. The configured email prefix
		// is the escape hatch for promoting later admins.
		isAdmin := count == 0 ||
			(cfg.AdminEmailPrefix != "" && strings.HasPrefix(req.Email, cfg.AdminEmailPrefix))

		hash, _ := bcrypt.GenerateFromPassword([]byte(req.Password), 10)

		u := User{
			Username: req.Username,
			Email:    req.Email,
			PassHash: string(hash),
			IsAdmin:  isAdmin,
		}
		if err := s.CreateUser(c.Request.Context(), &u); err != nil {
			if errors.Is(err, ErrDuplicate) {
				c.JSON(409, gin.H{"error": "username or email already taken"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		s.LogAction(c.Request.Context(), &u.ID, "register", "user registered")
		c.JSON(200, gin.H{"ok": true, "id": u.ID})
	}
}

func Login(s Store, cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		u, err := s.UserByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid credentials"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(req.Password)) != nil {
			c.JSON(401, gin.H{"error": "invalid credentials"})
			return
		}

		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
			UserID:  u.ID,
			IsAdmin: u.IsAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    "black-lion",
			},
		})
		signed, _ := tok.SignedString([]byte(cfg.SessionSecret))

		c.SetCookie(cookieName, signed, 86400, "/", "", cfg.CookieSecure, true)

		s.LogAction(c.Request.Context(), &u.ID, "login", "success")
		c.JSON(200, gin.H{"ok": true})
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func Me(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := s.UserByID(c.Request.Context(), uid(c))
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		c.JSON(200, u)
	}
}
