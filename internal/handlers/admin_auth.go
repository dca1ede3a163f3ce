package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/mailer"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
	"github.com/tharunbanothpersonal-spec/radha-travels/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenValidity = time.Hour

type adminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func cookieName() string {
	if name := os.Getenv("ADMIN_COOKIE_NAME"); name != "" {
		return name
	}
	return "rt_admin_token"
}

func secureCookies() bool {
	return gin.Mode() == gin.ReleaseMode
}

// AdminLogin checks credentials and sets the HTTP-only session cookie.
func AdminLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input adminLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"ok": false, "error": "email & password required"})
			return
		}

		var admin models.Admin
		if result := db.Where("email = ?", input.Email).First(&admin); result.Error != nil {
			c.JSON(401, gin.H{"ok": false, "error": "invalid credentials"})
			return
		}

		if err := admin.CheckPassword(input.Password); err != nil {
			c.JSON(401, gin.H{"ok": false, "error": "invalid credentials"})
			return
		}

		token, err := utils.GenerateAdminToken(&admin)
		if err != nil {
			c.JSON(500, gin.H{"ok": false, "error": "failed to generate token"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName(), token, int(utils.AdminSessionDuration.Seconds()), "/", "", secureCookies(), true)

		c.JSON(200, gin.H{
			"ok":      true,
			"name":    admin.Name,
			"email":   admin.Email,
			"message": "Login successful",
		})
	}
}

// AdminLogout clears the session cookie.
func AdminLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName(), "", -1, "/", "", secureCookies(), true)
		c.JSON(200, gin.H{"ok": true, "message": "logged out"})
	}
}

type changePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ChangeAdminPassword rotates the password of the logged-in admin.
func ChangeAdminPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.GetUint("adminId")

		var input changePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"ok": false, "error": "currentPassword and newPassword are required"})
			return
		}

		var admin models.Admin
		if result := db.First(&admin, adminID); result.Error != nil {
			c.JSON(404, gin.H{"ok": false, "error": "admin not found"})
			return
		}

		if err := admin.CheckPassword(input.CurrentPassword); err != nil {
			c.JSON(401, gin.H{"ok": false, "error": "current password is incorrect"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(500, gin.H{"ok": false, "error": "failed to hash password"})
			return
		}

		now := time.Now()
		updates := map[string]interface{}{
			"password_hash":       string(hashed),
			"password_changed_at": now,
		}
		if result := db.Model(&admin).Updates(updates); result.Error != nil {
			c.JSON(500, gin.H{"ok": false, "error": "password update failed"})
			return
		}

		c.JSON(200, gin.H{"ok": true, "message": "password changed successfully"})
	}
}

type createAdminInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

// CreateAdmin seeds a back-office user. Protect or remove once the
// first admin exists.
func CreateAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createAdminInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"ok": false, "error": "email & password required"})
			return
		}

		var existing models.Admin
		if result := db.Where("email = ?", input.Email).First(&existing); result.Error == nil {
			c.JSON(400, gin.H{"ok": false, "error": "admin already exists"})
			return
		}

		name := input.Name
		if name == "" {
			name = "Admin"
		}

		admin := models.Admin{
			Email:    input.Email,
			Password: input.Password,
			Name:     name,
		}
		if err := admin.HashPassword(); err != nil {
			c.JSON(500, gin.H{"ok": false, "error": "failed to hash password"})
			return
		}

		if result := db.Create(&admin); result.Error != nil {
			c.JSON(500, gin.H{"ok": false, "error": "failed to create admin"})
			return
		}

		c.JSON(200, gin.H{"ok": true, "message": "admin created", "id": admin.ID})
	}
}

type forgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotAdminPassword issues a one-hour reset token and mails the reset
// link. The response is identical whether or not the address is known.
func ForgotAdminPassword(db *gorm.DB, dispatcher mailer.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input forgotPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"ok": false, "error": "email required"})
			return
		}

		genericOK := gin.H{"ok": true, "message": "If this email is registered, you will receive password reset instructions."}

		var admin models.Admin
		if result := db.Where("email = ?", input.Email).First(&admin); result.Error != nil {
			c.JSON(200, genericOK)
			return
		}

		raw := make([]byte, 24)
		if _, err := rand.Read(raw); err != nil {
			c.JSON(500, gin.H{"ok": false, "error": "could not set reset token"})
			return
		}
		token := hex.EncodeToString(raw)
		expires := time.Now().Add(resetTokenValidity)

		updates := map[string]interface{}{
			"reset_token":   token,
			"reset_expires": expires,
		}
		if result := db.Model(&admin).Updates(updates); result.Error != nil {
			c.JSON(500, gin.H{"ok": false, "error": "could not set reset token"})
			return
		}

		origin := os.Getenv("SITE_ORIGIN")
		if origin == "" {
			origin = "http://localhost:8080"
		}
		resetURL := fmt.Sprintf("%s/admin/reset.html?token=%s", origin, url.QueryEscape(token))

		// Mail failure is logged, never surfaced: the response must not
		// reveal whether the address is registered.
		if result := dispatcher.SendAdminReset(&admin, resetURL); !result.OK {
			log.Printf("Reset email failed for admin %d: %s %s", admin.ID, result.Error, result.Detail)
		}

		c.JSON(200, genericOK)
	}
}

type resetPasswordInput struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ResetAdminPassword consumes a reset token and sets the new password.
func ResetAdminPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input resetPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"ok": false, "error": "token and newPassword are required"})
			return
		}

		var admin models.Admin
		result := db.Where("reset_token = ?", input.Token).First(&admin)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				c.JSON(400, gin.H{"ok": false, "error": "invalid or expired token"})
				return
			}
			c.JSON(500, gin.H{"ok": false, "error": "internal"})
			return
		}

		if admin.ResetExpires == nil || time.Now().After(*admin.ResetExpires) {
			c.JSON(400, gin.H{"ok": false, "error": "invalid or expired token"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(500, gin.H{"ok": false, "error": "failed to hash password"})
			return
		}

		updates := map[string]interface{}{
			"password_hash":       string(hashed),
			"password_changed_at": time.Now(),
			"reset_token":         nil,
			"reset_expires":       nil,
		}
		if result := db.Model(&admin).Updates(updates); result.Error != nil {
			c.JSON(500, gin.H{"ok": false, "error": "password update failed"})
			return
		}

		c.JSON(200, gin.H{"ok": true, "message": "password reset successfully"})
	}
}
