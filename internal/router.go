package internal

import "github.com/gin-gonic/gin"

// Routes builds the full route table. GET forms (/login, /news/new, ...) are
// rendered by the presentation layer; this surface handles the operations.
func Routes(s Store, cfg *Config) *gin.Engine {
	r := gin.Default()

	// public
	r.GET("/", Home(s))
	r.GET("/matches", MatchesIndex(s))
	r.GET("/news", NewsIndex(s))
	r.GET("/news/:id", NewsDetail(s))
	r.GET("/players", PlayersIndex(s))

	// auth
	r.POST("/register", Register(s, cfg))
	r.POST("/login", Login(s, cfg))
	r.GET("/logout", Logout())
	r.GET("/me", Auth(cfg.SessionSecret), Me(s))

	// any logged-in user
	r.POST("/news/:id", Auth(cfg.SessionSecret), AddComment(s))

	// admin
	admin := r.Group("/", Auth(cfg.SessionSecret), RequireAdmin())
	{
		admin.POST("/news/new", CreateNews(s))
		admin.POST("/news/:id/update", UpdateNews(s))
		admin.POST("/delete/news/:id", DeleteNews(s))
		admin.POST("/delete/comment/:id", DeleteComment(s))

		admin.POST("/players/new", CreatePlayer(s))
		admin.POST("/players/:id/update", UpdatePlayer(s))
		admin.POST("/delete/player/:id", DeletePlayer(s))

		admin.POST("/match/new", CreateMatch(s))
		admin.POST("/match/:id/update", UpdateMatch(s))
		admin.POST("/match/:id/delete", DeleteMatch(s))

		admin.POST("/standing/new", CreateStanding(s))
		admin.POST("/standing/:id/update", UpdateStanding(s))
		admin.POST("/standing/:id/delete", DeleteStanding(s))

		admin.GET("/admin/logs", AdminLogs(s))
	}

	return r
}
