package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/auth"
	"storefront-service/models"
)

type AdminHandler struct {
	directory *auth.AdminDirectory
}

func NewAdminHandler(directory *auth.AdminDirectory) *AdminHandler {
	return &AdminHandler{directory: directory}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	admin, found := h.directory.FindAdmin(req.Email, req.Password)
	if !found {
		log.Printf("Failed admin login attempt for %s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "INVALID_CREDENTIALS",
			Message: "Email or password is incorrect",
		})
		return
	}

	log.Printf("Admin %s signed in", admin.Email)
	c.JSON(http.StatusOK, admin)
}
