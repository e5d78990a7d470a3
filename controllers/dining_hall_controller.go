package controllers

import (
	"net/http"

	"github.com/JManoj01/UMassDining/services"

	"github.com/gin-gonic/gin"
)

// GET /halls
func ListHalls(c *gin.Context) {
	hallSvc := services.NewDiningHallService()
	halls, err := hallSvc.ListHalls()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, halls)
}
