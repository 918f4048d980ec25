package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nsharma-dev/institute_admin/internal/events"
	"github.com/nsharma-dev/institute_admin/internal/hash"
	"github.com/nsharma-dev/institute_admin/internal/logging"
	"github.com/nsharma-dev/institute_admin/internal/mail"
	"github.com/nsharma-dev/institute_admin/internal/models"
	"github.com/nsharma-dev/institute_admin/internal/repo"
	"github.com/nsharma-dev/institute_admin/internal/tokens"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

const resetTokenTTL = time.Hour

type AuthService struct {
	Repo   *repo.GormRepo
	Mailer mail.Mailer
	Events events.Publisher

	JWTSecret     []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	FrontendURL string

	Validate *validator.Validate
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	RefreshExp   time.Time
}

// Register creates an account with role "user". It does not log the
// account in.
func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) error {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	req.Email = normalizeEmail(req.Email)
	if err := s.Validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	pwHash, err := hash.Password(req.Password)
	if err != nil {
		l.Error("register_failed", "reason", "cannot hash password", "error", err)
		return err
	}

	user := models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        req.Email,
		PasswordHash: pwHash,
		Role:         "user",
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			return ErrConflict
		}
		l.Error("register_failed", "error", err)
		return err
	}

	publish(ctx, s.Events, events.TopicUserEvents, user.Email, map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("register_success", "user_id", user.ID)
	return nil
}

// Login verifies credentials and issues an access/refresh pair. The refresh
// token overwrites the account's single slot, so any previous session loses
// its ability to refresh. Unknown email and wrong password return the same
// error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, _, err := tokens.NewAccess(user, s.JWTSecret, s.AccessTTL)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign access token", "error", err)
		return nil, err
	}

	refreshToken, refreshExp, err := tokens.NewRefresh(user, s.RefreshSecret, s.RefreshTTL)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign refresh token", "error", err)
		return nil, err
	}

	if err := s.Repo.SetRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		l.Error("login_failed", "reason", "cannot persist refresh token", "error", err)
		return nil, err
	}

	l.Info("login_success", "user_id", user.ID)
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
	}, nil
}

// Refresh mints a new access token for a presented refresh token. A valid
// signature alone is not enough: the token must byte-equal the persisted
// slot, which is how logout and newer logins revoke older copies. The
// refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := tokens.ParseRefresh(refreshToken, s.RefreshSecret)
	if err != nil {
		return "", err
	}

	userID, err := tokens.UserID(claims.Subject)
	if err != nil {
		return "", err
	}

	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", ErrSessionRevoked
		}
		return "", err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return "", ErrSessionRevoked
	}

	accessToken, _, err := tokens.NewAccess(user, s.JWTSecret, s.AccessTTL)
	if err != nil {
		return "", err
	}
	return accessToken, nil
}

// Logout clears the refresh slot of whichever account owns the presented
// token. Unknown tokens are a successful no-op.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	user, err := s.Repo.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil
		}
		return err
	}
	return s.Repo.SetRefreshToken(ctx, user.ID, nil)
}

// ForgotPassword stores a hashed reset token and mails the plaintext to the
// account. A missing account is a silent success, so the response never
// reveals whether the email exists. A delivery failure rolls the token back
// and is the only failure this flow reports.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	l := logging.FromContext(ctx).With("svc", "auth.forgot_password")

	user, err := s.Repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if repo.IsNotFound(err) {
			return nil
		}
		l.Error("forgot_password_failed", "error", err)
		return err
	}

	resetToken, err := newResetToken()
	if err != nil {
		l.Error("forgot_password_failed", "reason", "cannot generate token", "error", err)
		return err
	}

	tokenHash := sha256Hex(resetToken)
	expire := time.Now().Add(resetTokenTTL)
	if err := s.Repo.SetResetToken(ctx, user.ID, &tokenHash, &expire); err != nil {
		l.Error("forgot_password_failed", "reason", "cannot persist token", "error", err)
		return err
	}

	resetURL := strings.TrimRight(s.FrontendURL, "/") + "/reset-password/" + resetToken
	body := "You are receiving this email because you (or someone else) has requested " +
		"the reset of a password. Follow the link to choose a new one:\n\n" + resetURL +
		"\n\nThe link expires in one hour. If you did not request this, ignore this email."

	if err := s.Mailer.Send(ctx, user.Email, "Password Reset", body); err != nil {
		// Roll the fields back so no valid-but-undeliverable token lingers.
		if rbErr := s.Repo.SetResetToken(ctx, user.ID, nil, nil); rbErr != nil {
			l.Error("forgot_password_rollback_failed", "error", rbErr)
		}
		l.Error("forgot_password_failed", "reason", "delivery failed", "error", err)
		return ErrDeliveryFailed
	}

	l.Info("forgot_password_sent", "user_id", user.ID)
	return nil
}

// ResetPassword consumes a reset token: the presented plaintext is hashed
// the same way as the stored copy, matched against a non-expired slot, and
// the password is replaced. The refresh slot is cleared too, so existing
// sessions do not outlive a reset.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	l := logging.FromContext(ctx).With("svc", "auth.reset_password")

	if err := s.Validate.Struct(transport.ResetPasswordRequest{Password: newPassword}); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, err := s.Repo.GetUserByResetTokenHash(ctx, sha256Hex(resetToken), time.Now())
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInvalidOrExpiredToken
		}
		l.Error("reset_password_failed", "error", err)
		return err
	}

	pwHash, err := hash.Password(newPassword)
	if err != nil {
		l.Error("reset_password_failed", "reason", "cannot hash password", "error", err)
		return err
	}

	if err := s.Repo.UpdatePassword(ctx, user.ID, pwHash); err != nil {
		l.Error("reset_password_failed", "error", err)
		return err
	}

	l.Info("reset_password_success", "user_id", user.ID)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newResetToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
