package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home godoc
// @Summary      Liveness
// @Tags         Health
// @Produce      plain
// @Success      200 {string} string "Server is up and running!"
// @Router       / [get]
func Home(c *gin.Context) {
	c.String(http.StatusOK, "Server is up and running!")
}
