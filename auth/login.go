package auth

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ismailkendil058/albadr-api/metrics"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler authenticates a staff account and returns a signed token
// carrying the role claim. All three dashboards log in through here.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.LoginAttempts.Inc()

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		var staff models.Staff
		if err := db.Where("email = ?", req.Email).First(&staff).Error; err != nil {
			metrics.LoginFailures.Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if !staff.Active || !staff.CheckPassword(req.Password) {
			metrics.LoginFailures.Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := mintToken(staff)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"staff": staff,
		})
	}
}

// MeHandler returns the account behind the presented token, so dashboards
// can restore a session without keeping identity fields client-side.
func MeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID, _ := c.Get("staff_id")
		var staff models.Staff
		if err := db.First(&staff, "id = ?", staffID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
			return
		}
		c.JSON(http.StatusOK, staff)
	}
}

func mintToken(staff models.Staff) (string, error) {
	claims := jwt.MapClaims{
		"sub":   staff.ID,
		"role":  string(staff.Role),
		"name":  staff.Name,
		"store": staff.Store,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// SeedSuperadmin creates the first superadmin account from env on an empty
// staff table, so a fresh deployment can be logged into.
func SeedSuperadmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Staff{}).Where("role = ?", models.RoleSuperadmin).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check superadmin accounts: %v", err)
		return
	}
	if count > 0 {
		return
	}

	email := os.Getenv("SUPERADMIN_EMAIL")
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ No superadmin account and SUPERADMIN_EMAIL/SUPERADMIN_PASSWORD not set")
		return
	}

	admin := models.Staff{
		Name:   "Superadmin",
		Email:  email,
		Role:   models.RoleSuperadmin,
		Active: true,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("❌ Failed to hash superadmin password: %v", err)
		return
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed superadmin: %v", err)
		return
	}
	log.Printf("✅ Seeded superadmin account %s", email)
}
