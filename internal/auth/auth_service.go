package auth

import (
	"context"
	"crypto/subtle"

	autherrors "github.com/paambaati/sqlary/internal/auth/errors"
)

type Service interface {
	IssueAPIKey(ctx context.Context, username, password string) (APIKeyResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) IssueAPIKey(ctx context.Context, username, password string) (APIKeyResponse, error) {
	stored, ok := s.repo.Password(username)
	if !ok {
		return APIKeyResponse{}, autherrors.ErrInvalidCredentials
	}

	// Constant-time compare; a length mismatch reports 0 rather than
	// erroring, so mismatched-length secrets stay a plain non-match.
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return APIKeyResponse{}, autherrors.ErrInvalidCredentials
	}

	key, ok := s.repo.APIKey(username)
	if !ok {
		return APIKeyResponse{}, autherrors.ErrAPIKeyNotProvisioned
	}

	return APIKeyResponse{
		Username: username,
		APIKey:   key,
	}, nil
}
