package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	"github.com/SscSPs/expense_manager_backend/internal/models"
	"github.com/SscSPs/expense_manager_backend/internal/utils/mapping"
)

const userColumns = `user_id, email, username, full_name, password_hash, created_at, created_by, last_updated_at, last_updated_by`

type UserRepository struct {
	BaseRepository
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func scanUser(row rowScanner) (domain.User, error) {
	var (
		m                    models.User
		createdAt, updatedAt string
	)
	if err := row.Scan(&m.UserID, &m.Email, &m.Username, &m.FullName, &m.PasswordHash,
		&createdAt, &m.CreatedBy, &updatedAt, &m.LastUpdatedBy); err != nil {
		return domain.User{}, err
	}
	var err error
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.User{}, err
	}
	if m.LastUpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.User{}, err
	}
	return mapping.ToDomainUser(m), nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.db(ctx).ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.UserID, m.Email, m.Username, m.FullName, m.PasswordHash,
		formatTime(m.CreatedAt), m.CreatedBy, formatTime(m.LastUpdatedAt), m.LastUpdatedBy)
	if err != nil {
		return mapError(err, "save user")
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query, arg string) (*domain.User, error) {
	user, err := scanUser(r.db(ctx).QueryRowContext(ctx, query, arg))
	if err != nil {
		return nil, mapError(err, "find user")
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = ?`, userID)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *UserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db(ctx).QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()
	return collect(rows, scanUser)
}
