package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogapp/internal/models"
	"blogapp/internal/store"
)

// AddComment appends a comment to the blog's first entry and returns the
// updated blog document.
func AddComment(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/blogs/:id/comments"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid blog id")
			return
		}

		var comment models.Comment
		if err := c.ShouldBindJSON(&comment); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		updated, err := s.AppendComment(ctx, id, comment)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] comment added to blog %s", route, id.Hex())
		c.JSON(http.StatusCreated, updated)
	}
}
