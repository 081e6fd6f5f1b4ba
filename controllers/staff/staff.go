package staffController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

type StaffInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Store    string `json:"store"`
	Active   *bool  `json:"active"`
}

// callerRole reads the role the auth middleware stored on the context.
func callerRole(c *gin.Context) models.StaffRole {
	role, _ := c.Get("staff_role")
	s, _ := role.(string)
	return models.StaffRole(s)
}

// canManage says who may administer whom: superadmins manage everyone,
// managers manage employees only.
func canManage(caller, target models.StaffRole) bool {
	if caller == models.RoleSuperadmin {
		return true
	}
	return caller == models.RoleManager && target == models.RoleEmployee
}

// GetStaff lists accounts the caller may manage.
func GetStaff(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Staff{})
		if callerRole(c) == models.RoleManager {
			query = query.Where("role = ?", models.RoleEmployee)
		}
		if role := c.Query("role"); role != "" {
			if !models.ValidRole(role) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
				return
			}
			query = query.Where("role = ?", role)
		}

		var staff []models.Staff
		if err := query.Order("created_at DESC").Find(&staff).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
			return
		}
		c.JSON(http.StatusOK, staff)
	}
}

func CreateStaff(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input StaffInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Name == "" || input.Email == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
			return
		}
		if !models.ValidRole(input.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be superadmin, manager or employee"})
			return
		}
		if !canManage(callerRole(c), models.StaffRole(input.Role)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to create this role"})
			return
		}
		if input.Store != "" && !models.ValidStore(input.Store) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown store"})
			return
		}

		staff := models.Staff{
			Name:   input.Name,
			Email:  input.Email,
			Role:   models.StaffRole(input.Role),
			Store:  input.Store,
			Active: true,
		}
		if err := staff.SetPassword(input.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		if err := db.Create(&staff).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		c.JSON(http.StatusCreated, staff)
	}
}

func UpdateStaff(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var staff models.Staff
		if err := db.First(&staff, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		if !canManage(callerRole(c), staff.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to manage this account"})
			return
		}

		var input StaffInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != "" {
			staff.Name = input.Name
		}
		if input.Email != "" {
			staff.Email = input.Email
		}
		if input.Store != "" {
			if !models.ValidStore(input.Store) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown store"})
				return
			}
			staff.Store = input.Store
		}
		if input.Active != nil {
			staff.Active = *input.Active
		}
		if input.Password != "" {
			if err := staff.SetPassword(input.Password); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
				return
			}
		}

		if err := db.Save(&staff).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
			return
		}
		c.JSON(http.StatusOK, staff)
	}
}

func DeleteStaff(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var staff models.Staff
		if err := db.First(&staff, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		if !canManage(callerRole(c), staff.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to manage this account"})
			return
		}

		if err := db.Delete(&staff).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
	}
}
