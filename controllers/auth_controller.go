package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hoa-portal/api-go/models"
	"github.com/hoa-portal/api-go/store"
	"github.com/hoa-portal/api-go/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Users store.UserDirectory
}

func NewAuthController(users store.UserDirectory) *AuthController {
	return &AuthController{Users: users}
}

// redirectFor maps a role to the page the client should load after signin.
func redirectFor(role string) string {
	if role == models.RoleAdmin {
		return "/admin"
	}
	return "/homeowner"
}

func (ac *AuthController) Signin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := ac.Users.FindByEmail(c.Request.Context(), input.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}
	if err != nil {
		log.Printf("signin: user lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Sign in failed"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		log.Printf("signin: token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Sign in failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
		"role":              user.Role,
		"redirectedWebpage": redirectFor(user.Role),
		"token":             token,
	})
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input struct {
		Email           string `json:"email" binding:"required,email"`
		Name            string `json:"name" binding:"required"`
		Address         string `json:"address"`
		PhoneNumber     string `json:"phone_number"`
		Gender          string `json:"gender"`
		Race            string `json:"race"`
		Password        string `json:"password" binding:"required,min=6"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Passwords do not match"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not hash password"})
		return
	}

	user := models.User{
		ID:          uuid.New().String(),
		Email:       input.Email,
		Password:    string(hashedPassword),
		Name:        input.Name,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		Gender:      input.Gender,
		Race:        input.Race,
		Role:        models.RoleHomeowner,
		Approved:    false,
	}

	err = ac.Users.Create(c.Request.Context(), &user)
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already exists"})
		return
	}
	if err != nil {
		log.Printf("signup: create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Sign up failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}
