package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"harmoniaAPI/internal/types/user"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db *pgxpool.Pool
}

func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

// Login finds the user by email or registers a new one. The mobile app has
// no password flow; the email is the identity.
func (s *UserService) Login(ctx context.Context, req *user.LoginRequest) (*user.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return nil, errors.New("name and email are required")
	}

	existing, err := s.getUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	query := `
	INSERT INTO users (name, email, created_at, updated_at)
	VALUES ($1, $2, $3, $3)
	RETURNING id, name, email, COALESCE(main_goal, ''), created_at, updated_at
	`

	u := &user.User{}
	err = s.db.QueryRow(ctx, query, name, email, time.Now().UTC()).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.MainGoal,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
	SELECT id, name, email, COALESCE(main_goal, ''), created_at, updated_at
	FROM users
	WHERE id = $1
	`

	u := &user.User{}
	err := s.db.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.MainGoal,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *UserService) UpdateMainGoal(ctx context.Context, id int64, mainGoal string) (*user.User, error) {
	query := `
	UPDATE users
	SET main_goal = $2, updated_at = $3
	WHERE id = $1
	RETURNING id, name, email, COALESCE(main_goal, ''), created_at, updated_at
	`

	u := &user.User{}
	err := s.db.QueryRow(ctx, query, id, mainGoal, time.Now().UTC()).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.MainGoal,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update main goal: %w", err)
	}

	return u, nil
}

func (s *UserService) getUserByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
	SELECT id, name, email, COALESCE(main_goal, ''), created_at, updated_at
	FROM users
	WHERE email = $1
	`

	u := &user.User{}
	err := s.db.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.MainGoal,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}
