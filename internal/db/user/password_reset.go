package user

import (
	"context"
	"errors"
	c "inventory/internal/core/domain/common"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/user"
	"inventory/internal/db/sqlcgen"

	"github.com/jackc/pgx/v4"
)

type PgxPasswordResetRepository struct {
	queries *sqlcgen.Queries
}

func NewPgxPasswordResetRepository(db sqlcgen.DBTX) *PgxPasswordResetRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPasswordResetRepository{queries: sqlcgen.New(db)}
}

func (r *PgxPasswordResetRepository) Create(
	ctx context.Context,
	input user.CreatePasswordResetInput,
) (p user.PasswordReset, err error) {
	dbreset, err := r.queries.CreatePasswordReset(ctx, sqlcgen.CreatePasswordResetParams{
		Email:     string(input.Email),
		Token:     string(input.Token),
		CreatedAt: input.CreatedAt,
	})
	// Nothing is returned when the insert hits ON CONFLICT DO NOTHING.
	if errors.Is(err, pgx.ErrNoRows) {
		return p, user.ErrPasswordResetExists
	}
	if err != nil {
		return p, err
	}
	return decodePasswordReset(dbreset), nil
}

func (r *PgxPasswordResetRepository) GetByEmail(ctx context.Context, email c.Email) (p user.PasswordReset, err error) {
	dbreset, err := r.queries.GetPasswordResetByEmail(ctx, string(email))
	if errors.Is(err, pgx.ErrNoRows) {
		return p, user.ErrPasswordResetDoesNotExist
	}
	if err != nil {
		return p, err
	}
	return decodePasswordReset(dbreset), nil
}

func (r *PgxPasswordResetRepository) DeleteByEmail(ctx context.Context, email c.Email) error {
	rows, err := r.queries.DeletePasswordResetByEmail(ctx, string(email))
	if err != nil {
		return err
	}
	if rows == 0 {
		return user.ErrPasswordResetDoesNotExist
	}
	return nil
}

func decodePasswordReset(p sqlcgen.PasswordReset) user.PasswordReset {
	return user.PasswordReset{
		Email:     c.Email(p.Email),
		Token:     user.PasswordResetToken(p.Token),
		CreatedAt: p.CreatedAt.UTC(),
	}
}
