package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ashchan-dev/ashchan/internal/domain"
	internal_errors "github.com/ashchan-dev/ashchan/internal/errors"
)

func (s *Storage) SaveUser(user domain.User) error {
	_, err := s.db.Exec(`
        INSERT INTO users (id, registered_at, argon2_password, user_type, user_status)
        VALUES ($1, $2, $3, $4, $5)
    `, user.Id, user.RegisteredAt, user.PasswordHash, int(user.Type), int(user.Status))
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *Storage) UserById(userId string) (domain.User, error) {
	var user domain.User
	var typeCode, statusCode int
	err := s.db.QueryRow(`
        SELECT id, registered_at, argon2_password, user_type, user_status
        FROM users
        WHERE id = $1
    `, userId).Scan(&user.Id, &user.RegisteredAt, &user.PasswordHash, &typeCode, &statusCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	if user.Type, err = domain.UserTypeFromInt(typeCode); err != nil {
		return domain.User{}, fmt.Errorf("corrupt user row %s: %w", userId, err)
	}
	if user.Status, err = domain.UserStatusFromInt(statusCode); err != nil {
		return domain.User{}, fmt.Errorf("corrupt user row %s: %w", userId, err)
	}
	return user, nil
}

func (s *Storage) UpdateUserType(userId string, newType domain.UserType) error {
	res, err := s.db.Exec(`UPDATE users SET user_type = $1 WHERE id = $2`, int(newType), userId)
	if err != nil {
		return fmt.Errorf("failed to update user type: %w", err)
	}
	return checkUserUpdated(res)
}

func (s *Storage) UpdateUserStatus(userId string, newStatus domain.UserStatus) error {
	res, err := s.db.Exec(`UPDATE users SET user_status = $1 WHERE id = $2`, int(newStatus), userId)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	return checkUserUpdated(res)
}

func checkUserUpdated(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("User not found")
	}
	return nil
}
