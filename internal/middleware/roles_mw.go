package middleware

import (
	"net/http"

	"jobportal/internal/model"
	"jobportal/internal/repository"

	"github.com/gin-gonic/gin"
)

// RoleRequired creates a middleware that restricts a route to users whose
// stored role is in the allowed set. The role is resolved from the credential
// store rather than the token, so it is authoritative even for tokens minted
// before a record changed. Must run after AuthRequired.
func RoleRequired(userRepo repository.UserRepository, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "user not authenticated",
				"success": false,
			})
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "server error, please try again later",
				"success": false,
			})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "user not authenticated",
				"success": false,
			})
			return
		}

		for _, role := range allowedRoles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"message": "you do not have permission to access this resource",
			"success": false,
		})
	}
}

// RecruiterRequired restricts a route to recruiters
func RecruiterRequired(userRepo repository.UserRepository) gin.HandlerFunc {
	return RoleRequired(userRepo, model.RoleRecruiter)
}
