package middleware

import (
	"net/http"

	"clinic_booking/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware rejects sessions whose role does not match. The rejection is
// a plain-text 403 with no redirect, unlike the missing-session case.
func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			c.String(http.StatusForbidden, "Unauthorized Access")
			c.Abort()
			return
		}

		userRole, ok := roleVal.(string)
		if !ok || userRole != requiredRole {
			c.String(http.StatusForbidden, "Unauthorized Access")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminMiddleware checks if the session belongs to an admin
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}

// DoctorMiddleware checks if the session belongs to a doctor
func DoctorMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleDoctor)
}

// PatientMiddleware checks if the session belongs to a patient
func PatientMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RolePatient)
}
