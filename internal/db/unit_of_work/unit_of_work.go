package uow

import (
	"context"
	"errors"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/product"
	uow "inventory/internal/core/domain/unit_of_work"
	"inventory/internal/core/domain/user"
	dbproduct "inventory/internal/db/product"
	dbuser "inventory/internal/db/user"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// txContext exposes repositories bound to one transaction.
type txContext struct {
	tx             pgx.Tx
	users          *dbuser.PgxUserRepository
	sessions       *dbuser.PgxSessionRepository
	passwordResets *dbuser.PgxPasswordResetRepository
	products       *dbproduct.PgxProductRepository
}

func (c *txContext) Commit(ctx context.Context) error {
	return c.tx.Commit(ctx)
}

// Rollback is a no-op once the transaction has been committed.
func (c *txContext) Rollback(ctx context.Context) error {
	err := c.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}

func (c *txContext) Users() user.UserRepository { return c.users }
func (c *txContext) Sessions() user.SessionRepository { return c.sessions }
func (c *txContext) PasswordResets() user.PasswordResetRepository { return c.passwordResets }
func (c *txContext) Products() product.Repository { return c.products }

type PgxUnitOfWork struct {
	db      *pgxpool.Pool
	options pgx.TxOptions
}

func NewPgxUnitOfWork(db *pgxpool.Pool) *PgxUnitOfWork {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUnitOfWork{db: db, options: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.db.BeginTx(ctx, u.options)
	if err != nil {
		return nil, err
	}
	return &txContext{
		tx:             tx,
		users:          dbuser.NewPgxRepository(tx),
		sessions:       dbuser.NewPgxSessionRepository(tx),
		passwordResets: dbuser.NewPgxPasswordResetRepository(tx),
		products:       dbproduct.NewPgxProductRepository(tx),
	}, nil
}
