package controllers

import (
	"log"
	"net/http"

	"github.com/andrewEdson/Macro-Tracker/services"

	"github.com/gin-gonic/gin"
)

// POST /api/chat
func SendMessage(c *gin.Context) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
		return
	}

	chat := services.NewChatService()
	reply, err := chat.SendMessage(body.Message)
	if err != nil {
		log.Printf("chat error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to contact ChatGPT"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// POST /api/chat/macros
func GetFoodMacros(c *gin.Context) {
	var body struct {
		FoodName   string `json:"foodName"`
		Restaurant string `json:"restaurant"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.FoodName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No food name provided"})
		return
	}

	chat := services.NewChatService()
	result, err := chat.GetFoodMacros(body.FoodName, body.Restaurant)
	if err != nil {
		log.Printf("chat macros error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch macros from ChatGPT"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
