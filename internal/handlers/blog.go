package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogapp/internal/models"
	"blogapp/internal/store"
)

// GetBlogs lists all blogs, optionally restricted to one author via the
// ?author query parameter. Author and comment-author references come back
// resolved into full user documents.
func GetBlogs(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/blogs"
		defer handlePanic(c, route)

		filter := store.BlogFilter{}
		if author := strings.TrimSpace(c.Query("author")); author != "" {
			authorID, err := primitive.ObjectIDFromHex(author)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid author id")
				return
			}
			filter.Author = &authorID
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		blogs, err := s.ListBlogs(ctx, filter)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		resolved, err := store.ResolveBlogs(ctx, s, blogs)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d blogs", route, len(resolved))
		c.JSON(http.StatusOK, resolved)
	}
}

// GetBlog fetches one blog by id, resolved. The browser client's edit flow
// uses this to populate the form.
func GetBlog(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/blogs/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid blog id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		blog, err := s.GetBlog(ctx, id)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		resolved, err := store.ResolveBlog(ctx, s, blog)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, resolved)
	}
}

func CreateBlog(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/blogs"
		defer handlePanic(c, route)

		var blog models.Blog
		if err := c.ShouldBindJSON(&blog); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}
		blog.ID = primitive.NilObjectID

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		created, err := s.CreateBlog(ctx, blog)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] created blog %s", route, created.ID.Hex())
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateBlog replaces the whole document. Updating an id that does not
// exist is a 404, not a silent success.
func UpdateBlog(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/blogs/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid blog id")
			return
		}

		var blog models.Blog
		if err := c.ShouldBindJSON(&blog); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		updated, err := s.ReplaceBlog(ctx, id, blog)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] replaced blog %s", route, id.Hex())
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteBlog removes the document. Deleting an id that never existed still
// reports success, the operation is idempotent.
func DeleteBlog(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/blogs/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid blog id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := s.DeleteBlog(ctx, id); err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] deleted blog %s", route, id.Hex())
		c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
	}
}
