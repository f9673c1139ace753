package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"clinic_booking/internal/middleware"
	"clinic_booking/internal/service"

	"github.com/gin-gonic/gin"
)

// ClinicHandler handles the role-gated dashboard and booking routes
type ClinicHandler struct {
	service service.ClinicService
}

// NewClinicHandler creates a new ClinicHandler
func NewClinicHandler(s service.ClinicService) *ClinicHandler {
	return &ClinicHandler{service: s}
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

// AdminDashboard returns all doctors, patients, appointments and departments
func (h *ClinicHandler) AdminDashboard(c *gin.Context) {
	dashboard, err := h.service.GetAdminDashboard(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching admin dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *ClinicHandler) AddDoctor(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if username == "" || email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}

	if _, err := h.service.AddDoctor(c.Request.Context(), username, email, password); err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error adding doctor: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add doctor"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

func (h *ClinicHandler) AddDepartment(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")

	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if _, err := h.service.AddDepartment(c.Request.Context(), name, description); err != nil {
		if errors.Is(err, service.ErrDepartmentExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error adding department: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add department"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// DoctorDashboard returns the session doctor's own appointments
func (h *ClinicHandler) DoctorDashboard(c *gin.Context) {
	doctorID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	appointments, err := h.service.GetDoctorAppointments(c.Request.Context(), doctorID)
	if err != nil {
		log.Printf("Error fetching doctor dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// PatientDashboard returns the session patient's appointments and the doctors
func (h *ClinicHandler) PatientDashboard(c *gin.Context) {
	patientID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	dashboard, err := h.service.GetPatientDashboard(c.Request.Context(), patientID)
	if err != nil {
		log.Printf("Error fetching patient dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *ClinicHandler) BookAppointment(c *gin.Context) {
	patientID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	doctorID, err := strconv.Atoi(c.Param("doctor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	date := c.PostForm("date")
	timeOfDay := c.PostForm("time")

	_, err = h.service.BookAppointment(c.Request.Context(), patientID, doctorID, date, timeOfDay)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error booking appointment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/patient/dashboard")
}

// RegisterClinicRoutes registers the role-gated routes. sessionMW establishes
// the session; the role middlewares gate each group.
func (h *ClinicHandler) RegisterClinicRoutes(r gin.IRouter, sessionMW, adminMW, doctorMW, patientMW gin.HandlerFunc) {
	adminRoutes := r.Group("/admin")
	adminRoutes.Use(sessionMW, adminMW)
	{
		adminRoutes.GET("/dashboard", h.AdminDashboard)
		adminRoutes.POST("/add_doctor", h.AddDoctor)
		adminRoutes.POST("/add_department", h.AddDepartment)
	}

	doctorRoutes := r.Group("/doctor")
	doctorRoutes.Use(sessionMW, doctorMW)
	{
		doctorRoutes.GET("/dashboard", h.DoctorDashboard)
	}

	patientRoutes := r.Group("/patient")
	patientRoutes.Use(sessionMW, patientMW)
	{
		patientRoutes.GET("/dashboard", h.PatientDashboard)
		patientRoutes.POST("/book/:doctor_id", h.BookAppointment)
	}
}
