// Package postgresql owns the bun database handle every repository embeds.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"garage/backend/foundation/web"
	"garage/backend/internal/auth"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

type Config struct {
	Username   string
	Password   string
	Host       string
	Port       string
	Name       string
	DisableTLS bool
}

// Database wraps bun.DB so repositories can share claim checks, struct
// validation and the soft-delete helper.
type Database struct {
	*bun.DB
}

func NewDB(cfg Config) *Database {
	opts := []pgdriver.Option{
		pgdriver.WithAddr(fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)),
		pgdriver.WithUser(cfg.Username),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Name),
		pgdriver.WithTimeout(30 * time.Second),
	}
	if cfg.DisableTLS {
		opts = append(opts, pgdriver.WithInsecure(true))
	}

	sqlDB := sql.OpenDB(pgdriver.NewConnector(opts...))
	db := bun.NewDB(sqlDB, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.FromEnv("BUNDEBUG")))

	return &Database{db}
}

// CheckClaims reads the auth claims the middleware attached to the context.
// When roles are given the claims must carry one of them.
func (d Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	claims, ok := ctx.Value(auth.Key).(auth.Claims)
	if !ok {
		return auth.Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}

	if len(roles) > 0 && !claims.Authorized(roles...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	return claims, nil
}

// ValidateStruct checks that the named fields of a request struct were
// provided. Field names may be passed comma separated.
func (d Database) ValidateStruct(s interface{}, requiredFields ...string) error {
	v := reflect.ValueOf(s)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return web.NewRequestError(errors.New("validate: not a struct"), http.StatusInternalServerError)
	}

	for _, fields := range requiredFields {
		for _, name := range strings.Split(fields, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			field := v.FieldByName(name)
			if !field.IsValid() || field.IsZero() {
				return web.NewRequestError(fmt.Errorf("field %s is required", name), http.StatusBadRequest)
			}
		}
	}

	return nil
}

// DeleteRow soft deletes one row, stamping who deleted it.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx)
	if err != nil {
		return err
	}

	result, err := d.NewUpdate().
		Table(table).
		Where("deleted_at IS NULL AND id = ?", id).
		Set("deleted_at = ?", time.Now()).
		Set("deleted_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting %s", table), http.StatusBadRequest)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking affected rows"), http.StatusInternalServerError)
	}
	if rows == 0 {
		return web.NewRequestError(errors.Errorf("%s %d not found", table, id), http.StatusNotFound)
	}

	return nil
}
