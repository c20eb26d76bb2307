package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"canteen-backend/internal/config"
	"canteen-backend/internal/models"
)

const adminTokenTTL = 12 * time.Hour

type adminLoginRequest struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// AdminLogin checks the submitted password against the stored bcrypt hash,
// OR against the configured fallback password. The fallback is intentionally
// accepted unconditionally, regardless of the stored credential.
func AdminLogin(db *mongo.Database, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/login"
		defer handlePanic(c, route)

		var req adminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		storedHash := ""
		var admin models.Admin
		err := db.Collection("admins").FindOne(ctx, bson.M{"username": req.User}).Decode(&admin)
		if err == nil {
			storedHash = admin.Pass
		}

		if !credentialsMatch(storedHash, req.Pass, cfg.AdminPass) {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}

		claims := jwt.MapClaims{
			"sub":  req.User,
			"role": "admin",
			"exp":  time.Now().Add(adminTokenTTL).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "token": signed})
	}
}

func credentialsMatch(storedHash, given, fallback string) bool {
	if fallback != "" && given == fallback {
		return true
	}
	if storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(given)) == nil
}
