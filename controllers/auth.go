package controllers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"restaurant-pos/config"
	"restaurant-pos/models"
	"restaurant-pos/utils"
)

func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := config.UserCollection.FindOne(ctx, bson.M{
		"username": strings.ToLower(strings.TrimSpace(input.Username)),
	}).Decode(&user)
	if err != nil {
		// Generic message to prevent username enumeration.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := utils.VerifyPassword(user.Password, input.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user.Username})
}

// EnsureDefaultAdmin seeds an admin/admin user when the users collection
// has no admin yet, so a fresh deployment is usable out of the box. The
// password should be changed immediately.
func EnsureDefaultAdmin() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := config.UserCollection.FindOne(ctx, bson.M{"username": "admin"}).Err()
	if err == nil {
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("admin seed: %v", err)
		return
	}

	hash, err := utils.HashPassword("admin")
	if err != nil {
		log.Printf("admin seed: %v", err)
		return
	}

	_, err = config.UserCollection.InsertOne(ctx, models.User{
		Username:  "admin",
		Password:  hash,
		Role:      "admin",
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Printf("admin seed: %v", err)
		return
	}
	log.Println("No admin user found. Created default admin (username 'admin', password 'admin')")
}
