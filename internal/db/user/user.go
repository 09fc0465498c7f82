package user

import (
	"context"
	"errors"
	c "inventory/internal/core/domain/common"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/user"
	"inventory/internal/db/sqlcgen"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

type PgxUserRepository struct {
	queries *sqlcgen.Queries
}

func NewPgxRepository(db sqlcgen.DBTX) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{queries: sqlcgen.New(db)}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	dbuser, err := r.queries.CreateUser(ctx, sqlcgen.CreateUserParams{
		Name:         input.Name,
		Email:        string(input.Email),
		PasswordHash: string(input.PasswordHash),
		CreatedAt:    input.CreatedAt,
		UpdatedAt:    input.CreatedAt,
	})
	if isUniqueViolation(err, EMAIL_CONSTRAINT_NAME) {
		return u, user.ErrEmailAlreadyExists
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbuser)
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	dbuser, err := r.queries.GetUserByID(ctx, int64(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbuser)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	dbuser, err := r.queries.GetUserByEmail(ctx, string(email))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbuser)
}

func (r *PgxUserRepository) SetPassword(
	ctx context.Context,
	id user.ID,
	password user.PasswordHash,
	at time.Time,
) error {
	rows, err := r.queries.SetUserPassword(ctx, sqlcgen.SetUserPasswordParams{
		ID:           int64(id),
		PasswordHash: string(password),
		UpdatedAt:    at,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func isUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == constraintName
}

func decodeUser(dbuser sqlcgen.User) (user.User, error) {
	u := user.User{
		ID:           user.ID(dbuser.ID),
		Name:         dbuser.Name,
		Email:        c.Email(dbuser.Email),
		PasswordHash: user.PasswordHash(dbuser.PasswordHash),
		CreatedAt:    dbuser.CreatedAt.UTC(),
		UpdatedAt:    dbuser.UpdatedAt.UTC(),
	}
	return u, u.Validate()
}
