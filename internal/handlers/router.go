package handlers

import (
	"github.com/gin-gonic/gin"

	"blogapp/internal/store"
)

// RegisterAPI mounts the JSON API under /api. Both main and the handler
// tests build their routers through this.
func RegisterAPI(r *gin.Engine, s store.Store) {
	api := r.Group("/api")

	api.GET("/users", GetUsers(s))
	api.POST("/users", CreateUser(s))

	api.GET("/blogs", GetBlogs(s))
	api.POST("/blogs", CreateBlog(s))
	api.GET("/blogs/:id", GetBlog(s))
	api.PUT("/blogs/:id", UpdateBlog(s))
	api.DELETE("/blogs/:id", DeleteBlog(s))
	api.POST("/blogs/:id/comments", AddComment(s))

	// Gin's route tree cannot hold a static "tags" segment next to the
	// ":id" wildcard, so /blogs/tags/:tag rides the param route and the
	// handler checks the literal segment itself.
	api.GET("/blogs/:id/:tag", GetBlogsByTag(s))

	api.GET("/tags", GetTags(s))
}
