package controllers

import (
	"net/http"

	"github.com/JManoj01/UMassDining/services"

	"github.com/gin-gonic/gin"
)

// GET /preferences
func GetPreferences(c *gin.Context) {
	userID := c.GetUint("userID")

	prefSvc := services.NewPreferenceService()
	pref, err := prefSvc.GetPreferences(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pref == nil {
		c.JSON(http.StatusOK, gin.H{
			"dietary_preferences":  []string{},
			"disliked_ingredients": []string{},
			"favorite_halls":       []string{},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dietary_preferences":  pref.DietaryList(),
		"disliked_ingredients": pref.DislikedList(),
		"favorite_halls":       pref.FavoriteHallList(),
	})
}

type PreferenceInput struct {
	DietaryPreferences  []string `json:"dietary_preferences"`
	DislikedIngredients []string `json:"disliked_ingredients"`
	FavoriteHalls       []string `json:"favorite_halls"`
}

// PUT /preferences
func UpdatePreferences(c *gin.Context) {
	var input PreferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	prefSvc := services.NewPreferenceService()
	pref, err := prefSvc.UpsertPreferences(userID, input.DietaryPreferences, input.DislikedIngredients, input.FavoriteHalls)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pref)
}
