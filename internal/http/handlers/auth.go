package handlers

import (
	"net/http"

	intconfig "backend/internal/config"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin/login
// Always answers 200; the success flag carries the result. The admin page
// only inspects the flag, never the status code.
func AdminLogin(env intconfig.Env) gin.HandlerFunc {
	svc := services.AuthService{Env: env}

	return func(c *gin.Context) {
		var req adminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			// The contract is always-200 with a success flag, even for a
			// payload that does not parse.
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}

		token, ok, err := svc.Login(req.Username, req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"token":   token,
		})
	}
}
