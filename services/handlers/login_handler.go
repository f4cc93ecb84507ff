package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/shared"
)

type LoginHandler struct {
	authSvc AuthServiceInterface
}

func NewLoginHandler(authSvc AuthServiceInterface) *LoginHandler {
	return &LoginHandler{authSvc: authSvc}
}

// @Summary Login
// @Description Exchange a Google ID token or raw client ID for a user token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginRequest true "Client identity"
// @Success 200 {object} shared.Response{data=dto.LoginResponse}
// @Router /api/v1/login [post]
func (h *LoginHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.authSvc.Login(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Login successful", resp)
}
