package controllers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func chatRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", SendMessage)
	r.POST("/api/chat/macros", GetFoodMacros)
	return r
}

func TestSendMessageEmptyRejected(t *testing.T) {
	// With no key configured, anything that reached the completion client
	// would come back as a 500; a 400 proves the guard ran first.
	t.Setenv("OPENAI_API_KEY", "")
	r := chatRouter()

	for _, body := range []string{`{}`, `{"message":""}`} {
		w := postJSON(r, "/api/chat", body)
		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "No message provided")
	}
}

func TestGetFoodMacrosEmptyFoodNameRejected(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	r := chatRouter()

	for _, body := range []string{`{}`, `{"foodName":""}`, `{"restaurant":"McDonald's"}`} {
		w := postJSON(r, "/api/chat/macros", body)
		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "No food name provided")
	}
}
