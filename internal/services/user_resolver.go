package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fintech-dashboard/internal/api"
	"fintech-dashboard/internal/config"
	"fintech-dashboard/internal/dto"
	"fintech-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type userResolver struct {
	client   *api.Client
	cfg      config.UpstreamConfig
	validate *validator.Validate

	mu     sync.Mutex
	userID string
}

func NewUserResolver(client *api.Client, cfg config.UpstreamConfig) UserResolverInterface {
	return &userResolver{
		client:   client,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// Resolve finds or creates the session's user. The mutex makes the whole
// find-or-create sequence single-flight, so a second caller blocks and then
// gets the memoized id instead of racing a duplicate POST.
func (r *userResolver) Resolve(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.userID != "" {
		return r.userID, nil
	}

	users, err := r.listUsers(ctx)
	if err != nil {
		slog.Error("failed to list users", "error", err)
		return "", fmt.Errorf("list users: %w", err)
	}

	if len(users) > 0 {
		r.userID = users[0].ID
		slog.Info("resolved existing user", "user_id", r.userID)
		return r.userID, nil
	}

	created, err := r.createUser(ctx)
	if err != nil {
		slog.Error("failed to create user", "error", err)
		return "", fmt.Errorf("create user: %w", err)
	}

	r.userID = created.ID
	slog.Info("created new user for session", "user_id", r.userID, "email", created.Email)
	return r.userID, nil
}

// listUsers fetches /users and normalizes the payload. The upstream contract
// is not strictly trusted here: any non-array body is treated as an empty
// list rather than a failure.
func (r *userResolver) listUsers(ctx context.Context) ([]models.User, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/users", nil, &raw); err != nil {
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		slog.Warn("users payload is not a list, treating as empty", "error", err)
		return nil, nil
	}

	return users, nil
}

func (r *userResolver) createUser(ctx context.Context) (*models.User, error) {
	req := dto.CreateUserRequest{
		Name:  r.cfg.DefaultUserName,
		Email: r.placeholderEmail(),
	}

	if err := r.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("invalid user payload: %w", err)
	}

	var created models.User
	if err := r.client.Post(ctx, "/users", req, &created); err != nil {
		return nil, err
	}

	if err := created.Validate(); err != nil {
		return nil, fmt.Errorf("create user response: %w", err)
	}

	return &created, nil
}

// placeholderEmail generates a unique demo address. The timestamp alone is
// not collision-safe under rapid concurrent session starts, so a random
// fragment is appended.
func (r *userResolver) placeholderEmail() string {
	nonce := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("demo%d%s@%s", time.Now().UnixMilli(), nonce, r.cfg.UserEmailDomain)
}
