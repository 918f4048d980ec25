package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nsharma-dev/institute_admin/internal/logging"
	"github.com/nsharma-dev/institute_admin/internal/service"
	"github.com/nsharma-dev/institute_admin/internal/tokens"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

const genericResetMessage = "If an account with that email exists, a password reset link has been sent."

type AuthHTTP struct {
	Svc        *service.AuthService
	Production bool
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Register(ctx, req); err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			l.Warn("register_failed", "status", 400, "reason", "email taken")
			return echo.NewHTTPError(http.StatusBadRequest, "user already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("register_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("register_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "server error")
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "user registered successfully"})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 400, "reason", "invalid credentials")
			return echo.NewHTTPError(http.StatusBadRequest, "invalid credentials")
		}
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	c.SetCookie(NewRefreshCookie(res.RefreshToken, res.RefreshExp, h.Production))
	return c.JSON(http.StatusOK, echo.Map{"accessToken": res.AccessToken})
}

// Refresh trades a refresh cookie for a fresh access token. 401 means no
// session artifact at all; 403 means one was presented but rejected. The
// cookie is cleared only when its signature is expired or invalid, so the
// client stops retrying a dead token.
func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.refresh")

	cookie, err := c.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "no session")
	}

	accessToken, err := h.Svc.Refresh(ctx, cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, tokens.ErrExpired), errors.Is(err, tokens.ErrInvalid):
			c.SetCookie(DeleteRefreshCookie(h.Production))
			l.Warn("refresh_failed", "status", 403, "reason", "bad signature")
			return echo.NewHTTPError(http.StatusForbidden, "invalid refresh token")
		case errors.Is(err, service.ErrSessionRevoked):
			l.Warn("refresh_failed", "status", 403, "reason", "revoked")
			return echo.NewHTTPError(http.StatusForbidden, "invalid refresh token")
		default:
			l.Error("refresh_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "server error")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"accessToken": accessToken})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	cookie, err := c.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		return c.NoContent(http.StatusNoContent)
	}

	if err := h.Svc.Logout(ctx, cookie.Value); err != nil {
		l.Error("logout_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	c.SetCookie(DeleteRefreshCookie(h.Production))
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHTTP) ForgotPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.forgot_password")

	var req transport.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("forgot_password_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.ForgotPassword(ctx, req.Email); err != nil {
		if errors.Is(err, service.ErrDeliveryFailed) {
			return echo.NewHTTPError(http.StatusInternalServerError, "email could not be sent, please try again later")
		}
		l.Error("forgot_password_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": genericResetMessage})
}

func (h *AuthHTTP) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.reset_password")

	var req transport.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("reset_password_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.ResetPassword(ctx, c.Param("token"), req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrExpiredToken):
			l.Warn("reset_password_failed", "status", 400, "reason", "invalid or expired token")
			return echo.NewHTTPError(http.StatusBadRequest, "invalid or expired token")
		case errors.Is(err, service.ErrValidation):
			l.Warn("reset_password_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("reset_password_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "server error")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "password reset successful"})
}
