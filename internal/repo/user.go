package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/nsharma-dev/institute_admin/internal/models"
)

var ErrUserAlreadyExists = errors.New("user already exists")

// CreateUser inserts u unless the email is already taken.
func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	tx := r.DB.WithContext(ctx).Where("email = ?", u.Email).FirstOrCreate(u)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrUserAlreadyExists
	}
	return nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByRefreshToken resolves the owner of a presented refresh token by
// its exact value. Logout is not authenticated by an access token, so the
// cookie value is the only handle on the account.
func (r *GormRepo) GetUserByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("refresh_token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SetRefreshToken writes the single refresh slot. Passing nil clears it.
// Last write wins on concurrent logins: only the newest token remains valid.
func (r *GormRepo) SetRefreshToken(ctx context.Context, userID uint, token *string) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("refresh_token", token).Error
}

// SetResetToken stores the one-way hash of a password-reset token and its
// expiry. Both nil rolls the fields back.
func (r *GormRepo) SetResetToken(ctx context.Context, userID uint, tokenHash *string, expire *time.Time) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"reset_password_token":  tokenHash,
			"reset_password_expire": expire,
		}).Error
}

// GetUserByResetTokenHash finds the account holding a live (non-expired)
// reset token hash.
func (r *GormRepo) GetUserByResetTokenHash(ctx context.Context, tokenHash string, now time.Time) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).
		Where("reset_password_token = ? AND reset_password_expire > ?", tokenHash, now).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the stored digest and clears the reset fields and
// the refresh slot in one write, so neither a used reset link nor an old
// session survives a password change.
func (r *GormRepo) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"password_hash":         passwordHash,
			"reset_password_token":  nil,
			"reset_password_expire": nil,
			"refresh_token":         nil,
		}).Error
}

// UpdateProfile applies the caller-supplied subset of mutable profile fields.
func (r *GormRepo) UpdateProfile(ctx context.Context, userID uint, fields map[string]any) (*models.User, error) {
	if len(fields) > 0 {
		if err := r.DB.WithContext(ctx).Model(&models.User{}).
			Where("id = ?", userID).
			Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.GetUserByID(ctx, userID)
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
