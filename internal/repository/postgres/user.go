package postgres

import (
	"context"
	"database/sql"
	"errors"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	var deviceToken sql.NullString
	query := `SELECT id, name, email, role, device_token FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &deviceToken)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.DeviceToken = deviceToken.String
	return u, nil
}

func (r *userRepository) ListAdmins(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, name, email, role, device_token FROM users WHERE role = $1`
	rows, err := r.db.QueryContext(ctx, query, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.User
	for rows.Next() {
		var u domain.User
		var deviceToken sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &deviceToken); err != nil {
			return nil, err
		}
		u.DeviceToken = deviceToken.String
		admins = append(admins, u)
	}
	return admins, rows.Err()
}
