package controllers

import (
	"net/http"

	"github.com/JManoj01/UMassDining/services"

	"github.com/gin-gonic/gin"
)

type RatingInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Rating     int  `json:"rating" binding:"required,min=1,max=5"`
}

// POST /ratings
func RateMenuItem(c *gin.Context) {
	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	ratingSvc := services.NewRatingService()
	rating, err := ratingSvc.RateMenuItem(userID, input.MenuItemID, input.Rating)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// GET /ratings
func ListMyRatings(c *gin.Context) {
	userID := c.GetUint("userID")

	ratingSvc := services.NewRatingService()
	ratings, err := ratingSvc.ListUserRatings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ratings)
}
