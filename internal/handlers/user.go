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

func GetUsers(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/users"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		users, err := s.ListUsers(ctx)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d users", route, len(users))
		c.JSON(http.StatusOK, users)
	}
}

func CreateUser(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/users"
		defer handlePanic(c, route)

		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}
		user.ID = primitive.NilObjectID

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		created, err := s.CreateUser(ctx, user)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] created user %s", route, created.ID.Hex())
		c.JSON(http.StatusCreated, created)
	}
}
