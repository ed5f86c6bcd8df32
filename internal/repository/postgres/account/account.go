package account

import (
	"context"
	"database/sql"
	"net/http"

	"garage/backend/foundation/web"
	"garage/backend/internal/entity"
	"garage/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByCredentials looks the account up by login and verifies the password.
// Both failure modes answer the same way, callers learn nothing about which
// half was wrong.
func (r Repository) GetByCredentials(ctx context.Context, request SignInRequest) (DetailResponse, error) {
	if err := r.ValidateStruct(&request, "Login", "Password"); err != nil {
		return DetailResponse{}, err
	}

	var row entity.Account
	err := r.NewSelect().Model(&row).
		Where("deleted_at IS NULL AND login = ?", *request.Login).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return DetailResponse{}, web.NewRequestError(errors.New("incorrect login or password"), http.StatusUnauthorized)
	}
	if err != nil {
		return DetailResponse{}, web.NewRequestError(errors.Wrap(err, "selecting account"), http.StatusInternalServerError)
	}
	if row.Password == nil || row.Role == nil {
		return DetailResponse{}, web.NewRequestError(errors.New("incorrect login or password"), http.StatusUnauthorized)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*row.Password), []byte(*request.Password)); err != nil {
		return DetailResponse{}, web.NewRequestError(errors.New("incorrect login or password"), http.StatusUnauthorized)
	}

	return toDetail(row), nil
}

func (r Repository) GetById(ctx context.Context, id int) (DetailResponse, error) {
	var row entity.Account
	err := r.NewSelect().Model(&row).
		Where("deleted_at IS NULL AND id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return DetailResponse{}, web.NewRequestError(errors.New("account not found"), http.StatusNotFound)
	}
	if err != nil {
		return DetailResponse{}, web.NewRequestError(errors.Wrap(err, "selecting account"), http.StatusInternalServerError)
	}

	return toDetail(row), nil
}

func toDetail(row entity.Account) DetailResponse {
	detail := DetailResponse{ID: row.ID}
	if row.Login != nil {
		detail.Login = *row.Login
	}
	if row.Password != nil {
		detail.Password = *row.Password
	}
	if row.Role != nil {
		detail.Role = *row.Role
	}
	return detail
}
