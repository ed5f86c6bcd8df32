package auth

import (
	"context"

	"garage/backend/internal/repository/postgres/account"
)

type Account interface {
	GetByCredentials(ctx context.Context, request account.SignInRequest) (account.DetailResponse, error)
	GetById(ctx context.Context, id int) (account.DetailResponse, error)
}
