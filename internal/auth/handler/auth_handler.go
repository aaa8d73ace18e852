package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/dto"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/service"
	autherrors "github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/errors"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// fail maps a taxonomy error to its transport status and a client-safe
// message. Database detail never reaches the response body.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(autherrors.HTTPStatus(err)).JSON(fiber.Map{
		"error": autherrors.SafeMessage(err),
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	input.IPAddress = c.IP()
	input.DeviceInfo = string(c.Request().Header.UserAgent())

	resp, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	input.IPAddress = c.IP()
	input.DeviceInfo = string(c.Request().Header.UserAgent())

	resp, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	input.IPAddress = c.IP()
	input.DeviceInfo = string(c.Request().Header.UserAgent())

	tokens, err := h.userService.Refresh(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

// Logout removes the presented refresh token from the authenticated user's
// session list. The caller is identified by the bearer access token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user, err := h.userService.VerifyAccessToken(c.Context(), bearerToken(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherrors.SafeMessage(err)})
	}

	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	resp, err := h.userService.Logout(c.Context(), user.ID, input.RefreshToken)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) InitiatePasswordReset(c *fiber.Ctx) error {
	var input dto.PasswordResetInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	resp, err := h.userService.InitiatePasswordReset(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var input dto.PasswordResetConfirmInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	resp, err := h.userService.ConfirmPasswordReset(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Me returns the sanitized user for the bearer access token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.userService.VerifyAccessToken(c.Context(), bearerToken(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherrors.SafeMessage(err)})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
