package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/regsvc/domain"
)

// RegistrationHandlers handles the public submission endpoint
type RegistrationHandlers struct {
	regSvc domain.RegistrationService
}

// NewRegistrationHandlers creates new registration handlers
func NewRegistrationHandlers(regSvc domain.RegistrationService) *RegistrationHandlers {
	return &RegistrationHandlers{regSvc: regSvc}
}

// RegisterRequest represents a public form submission. Field rules live
// in the service layer so errors accumulate instead of failing on the
// first missing binding tag.
type RegisterRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
}

// Register handles POST /api/register
func (h *RegistrationHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	_, err := h.regSvc.Submit(c.Request.Context(), domain.SubmissionInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		City:    req.City,
		Address: req.Address,
	})
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
		case errors.Is(err, domain.ErrDuplicateRegistration):
			c.JSON(http.StatusConflict, gin.H{"message": "A registration with this email or phone already exists"})
		default:
			log.Printf("REGISTRATION_FAILED: error=%v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful"})
}
