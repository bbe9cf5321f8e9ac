package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapp/internal/store"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// respondStoreError maps persistence failures onto the HTTP contract:
// validation failures are 400, missing documents are 404, anything else is
// a 500 with the underlying message forwarded verbatim.
func respondStoreError(c *gin.Context, route string, err error) {
	switch {
	case store.IsValidation(err):
		respondWithError(c, http.StatusBadRequest, route, err.Error())
	case errors.Is(err, store.ErrNoEntries):
		respondWithError(c, http.StatusBadRequest, route, err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondWithError(c, http.StatusNotFound, route, "Blog not found")
	default:
		respondWithError(c, http.StatusInternalServerError, route, err.Error())
	}
}
