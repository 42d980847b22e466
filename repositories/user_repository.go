package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"souq-api/config"
	"souq-api/models"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

var ErrNoRows = pgx.ErrNoRows

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, role, is_verified, is_active, otp, otp_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(
		ctx,
		query,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
		user.IsVerified,
		user.IsActive,
		user.OTP,
		user.OTPExpiresAt,
		now,
		now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password, role, is_verified, is_active,
		       otp, otp_expires_at, reset_password_otp, reset_password_expires_at,
		       created_at, updated_at
		FROM users WHERE email = $1
	`

	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.IsVerified,
		&user.IsActive,
		&user.OTP,
		&user.OTPExpiresAt,
		&user.ResetPasswordOTP,
		&user.ResetPasswordExpires,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	query := `
		SELECT id, name, email, password, role, is_verified, is_active, created_at, updated_at
		FROM users WHERE id = $1
	`

	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.IsVerified,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) SetOTP(ctx context.Context, userID int, otp string, expiresAt time.Time) error {
	_, err := config.DB.Exec(ctx,
		"UPDATE users SET otp = $1, otp_expires_at = $2, updated_at = $3 WHERE id = $4",
		otp, expiresAt, time.Now(), userID)
	return err
}

func (r *UserRepository) MarkVerified(ctx context.Context, userID int) error {
	_, err := config.DB.Exec(ctx,
		"UPDATE users SET is_verified = TRUE, otp = NULL, otp_expires_at = NULL, updated_at = $1 WHERE id = $2",
		time.Now(), userID)
	return err
}

func (r *UserRepository) SetResetPasswordOTP(ctx context.Context, userID int, otp string, expiresAt time.Time) error {
	_, err := config.DB.Exec(ctx,
		"UPDATE users SET reset_password_otp = $1, reset_password_expires_at = $2, updated_at = $3 WHERE id = $4",
		otp, expiresAt, time.Now(), userID)
	return err
}

// UpdatePassword also clears any outstanding reset OTP.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	result, err := config.DB.Exec(ctx,
		`UPDATE users SET password = $1, reset_password_otp = NULL, reset_password_expires_at = NULL, updated_at = $2
		 WHERE id = $3`,
		hashedPassword, time.Now(), userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("user not found")
	}
	return nil
}

// SetActive flips the account flag; deactivation doubles as the soft
// delete used by the admin user management endpoints.
func (r *UserRepository) SetActive(ctx context.Context, userID int, active bool) error {
	result, err := config.DB.Exec(ctx,
		"UPDATE users SET is_active = $1, updated_at = $2 WHERE id = $3",
		active, time.Now(), userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID int, role string) error {
	result, err := config.DB.Exec(ctx,
		"UPDATE users SET role = $1, updated_at = $2 WHERE id = $3",
		role, time.Now(), userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UserFilter narrows admin user listings. Zero values mean "no filter".
type UserFilter struct {
	Search     string
	Role       string
	IsVerified *bool
	IsActive   *bool
	Page       int
	Limit      int
}

func (r *UserRepository) FindAll(ctx context.Context, filter UserFilter) ([]models.User, int, error) {
	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Search != "" {
		whereConditions = append(whereConditions,
			fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.Role != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("role = $%d", argIndex))
		args = append(args, filter.Role)
		argIndex++
	}
	if filter.IsVerified != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("is_verified = $%d", argIndex))
		args = append(args, *filter.IsVerified)
		argIndex++
	}
	if filter.IsActive != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("is_active = $%d", argIndex))
		args = append(args, *filter.IsActive)
		argIndex++
	}

	where := ""
	if len(whereConditions) > 0 {
		where = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, email, password, role, is_verified, is_active, created_at, updated_at
		FROM users` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Password,
			&user.Role,
			&user.IsVerified,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	return users, total, rows.Err()
}

// Statistics aggregates account counts for the admin dashboard.
func (r *UserRepository) Statistics(ctx context.Context) (models.UserStats, error) {
	stats := models.UserStats{ByRole: map[string]int{}}

	err := config.DB.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_verified),
		       COUNT(*) FILTER (WHERE is_active),
		       COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days'),
		       COUNT(*) FILTER (WHERE created_at >= CURRENT_DATE)
		FROM users
	`).Scan(
		&stats.TotalUsers,
		&stats.VerifiedUsers,
		&stats.ActiveUsers,
		&stats.RecentUsers,
		&stats.TodayUsers,
	)
	if err != nil {
		return stats, err
	}
	stats.UnverifiedUsers = stats.TotalUsers - stats.VerifiedUsers
	stats.InactiveUsers = stats.TotalUsers - stats.ActiveUsers

	rows, err := config.DB.Query(ctx, "SELECT role, COUNT(*) FROM users GROUP BY role")
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return stats, err
		}
		stats.ByRole[role] = count
	}
	return stats, rows.Err()
}
