package controllers

import (
	"net/http"

	"github.com/JManoj01/UMassDining/services"

	"github.com/gin-gonic/gin"
)

// GET /recommendations
func GetRecommendations(c *gin.Context) {
	var userID *uint
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			userID = &id
		}
	}

	recSvc := services.NewRecommendationService()
	recs, err := recSvc.GetRecommendations(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
