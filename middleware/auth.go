package middleware

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/shared"
)

// TokenVerifier checks a user token and resolves it to an identity.
type TokenVerifier interface {
	Authenticate(token string, requireAdmin bool) (userID int, clientType int, err error)
}

// AuthMiddleware guards routes on the user token carried in the JSON request
// body. Multipart uploads pass user_token as a query parameter instead. GET
// routes stay public, everything mutating goes through here.
type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequiredUser accepts any valid user token.
func (m *AuthMiddleware) RequiredUser() fiber.Handler {
	return m.required(false)
}

// RequiredAdmin accepts only tokens of the admin user.
func (m *AuthMiddleware) RequiredAdmin() fiber.Handler {
	return m.required(true)
}

func (m *AuthMiddleware) required(requireAdmin bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query("user_token")
		if token == "" && len(c.Body()) > 0 && c.Is("json") {
			var body dto.TokenBody
			if err := sonic.Unmarshal(c.Body(), &body); err != nil {
				return shared.NewBadRequestError(err, "Malformed request body.")
			}
			token = body.UserToken
		}
		if token == "" {
			return shared.NewMissingFieldError("user_token")
		}

		userID, clientType, err := m.verifier.Authenticate(token, requireAdmin)
		if err != nil {
			return err
		}

		c.Locals(shared.UserID, userID)
		c.Locals(shared.ClientType, clientType)
		return c.Next()
	}
}
