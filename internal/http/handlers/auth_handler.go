package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"petpos/internal/catalog"
	applog "petpos/internal/log"
)

// TokenStore persists the bearer token between terminal restarts.
type TokenStore interface {
	SaveToken(token string) error
	ClearToken() error
	HasToken() (bool, error)
}

type AuthAPI interface {
	Login(ctx context.Context, req catalog.LoginRequest) (*catalog.LoginResponse, error)
	Register(ctx context.Context, req catalog.RegisterRequest) (*catalog.StatusResponse, error)
	RegisterVerify(ctx context.Context, req catalog.RegisterVerifyRequest) (*catalog.StatusResponse, error)
}

type AuthHandler struct {
	API    AuthAPI
	Tokens TokenStore
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req catalog.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}
	if req.Username == "" || req.Password == "" {
		return fail(c, fiber.StatusBadRequest, "username and password are required")
	}

	resp, err := h.API.Login(c.Context(), req)
	if err != nil {
		applog.Warn(c, "auth.login.fail", map[string]any{"user": req.Username})
		return failErr(c, err)
	}
	if !resp.Success || resp.AccessToken == "" {
		return fail(c, fiber.StatusUnauthorized, resp.Message)
	}
	if err := h.Tokens.SaveToken(resp.AccessToken); err != nil {
		applog.Error(c, "auth.token.save", err, nil)
		return fail(c, fiber.StatusInternalServerError, "cannot persist session")
	}
	applog.Audit(c, "auth.login", map[string]any{"user": req.Username})
	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req catalog.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}
	resp, err := h.API.Register(c.Context(), req)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) RegisterVerify(c *fiber.Ctx) error {
	var req catalog.RegisterVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}
	resp, err := h.API.RegisterVerify(c.Context(), req)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(resp)
}

// Session tells the UI whether a stored login survives a restart.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	ok, err := h.Tokens.HasToken()
	if err != nil {
		applog.Error(c, "auth.token.check", err, nil)
		return fail(c, fiber.StatusInternalServerError, "cannot read session state")
	}
	return c.JSON(fiber.Map{"authenticated": ok})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.Tokens.ClearToken(); err != nil {
		applog.Error(c, "auth.token.clear", err, nil)
		return fail(c, fiber.StatusInternalServerError, "cannot clear session")
	}
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"success": true})
}
