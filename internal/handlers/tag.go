package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blogapp/internal/store"
)

// GetBlogsByTag lists blogs whose tags contain the given value. The match
// is exact and case-sensitive. Registered as /blogs/:id/:tag (see
// RegisterAPI), so the handler verifies the literal "tags" segment.
func GetBlogsByTag(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/blogs/tags/:tag"
		defer handlePanic(c, route)

		if c.Param("id") != "tags" {
			respondWithError(c, http.StatusNotFound, route, "not found")
			return
		}
		tag := c.Param("tag")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		blogs, err := s.ListBlogs(ctx, store.BlogFilter{Tag: tag})
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		resolved, err := store.ResolveBlogs(ctx, s, blogs)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d blogs for tag %q", route, len(resolved), tag)
		c.JSON(http.StatusOK, resolved)
	}
}

// GetTags lists every tag value seen on a blog so far, for the client's
// tag search suggestions.
func GetTags(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/tags"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		tags, err := s.ListTags(ctx)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, tags)
	}
}
