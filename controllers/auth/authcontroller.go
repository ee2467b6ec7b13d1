package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Mahi-singh03/DEMO-APP/config"
	"github.com/Mahi-singh03/DEMO-APP/models"
)

type registerPayload struct {
	FullName     string `json:"fullName" binding:"required"`
	RollNo       string `json:"rollNo" binding:"required"`
	EmailAddress string `json:"emailAddress" binding:"required,email"`
	PhoneNumber  string `json:"phoneNumber"`
	Password     string `json:"password" binding:"required,min=6"`
}

func Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data: " + err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	student := models.Student{
		FullName:     payload.FullName,
		RollNo:       payload.RollNo,
		EmailAddress: strings.ToLower(payload.EmailAddress),
		PhoneNumber:  payload.PhoneNumber,
		Password:     string(hash),
	}
	if err := models.DB.Create(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Roll number or email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register student"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful", "student": student})
}

type loginPayload struct {
	EmailAddress string `json:"emailAddress" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	var student models.Student
	err := models.DB.Where("email_address = ?", strings.ToLower(payload.EmailAddress)).First(&student).Error
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You are not registered. Please register first."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(payload.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	claims := config.JWTClaims{
		StudentId: student.Id,
		Email:     student.EmailAddress,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWT_KEY)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"student": student,
		"token":   signed,
	})
}
