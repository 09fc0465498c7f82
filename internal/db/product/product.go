package product

import (
	"context"
	"errors"
	"fmt"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/product"
	"inventory/internal/core/domain/user"
	"inventory/internal/db/sqlcgen"
	"math"
	"math/big"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

type PgxProductRepository struct {
	queries *sqlcgen.Queries
}

func NewPgxProductRepository(db sqlcgen.DBTX) *PgxProductRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxProductRepository{queries: sqlcgen.New(db)}
}

func (r *PgxProductRepository) Create(ctx context.Context, input product.CreateInput) (p product.Product, err error) {
	dbProduct, err := r.queries.CreateProduct(ctx, sqlcgen.CreateProductParams{
		UserID:      int64(input.OwnerID),
		Name:        input.Name,
		Description: input.Description,
		Quantity:    int32(input.Quantity),
		UnitPrice:   encodePrice(input.UnitPrice),
		CreatedAt:   input.CreatedAt,
	})
	if err != nil {
		return p, err
	}
	return decodeProduct(dbProduct)
}

func (r *PgxProductRepository) Lock(ctx context.Context, id product.ID) error {
	// The method works only within a DB transaction
	return r.queries.LockProduct(ctx, int64(id))
}

func (r *PgxProductRepository) GetByID(ctx context.Context, id product.ID) (p product.Product, err error) {
	dbProduct, err := r.queries.GetProductByID(ctx, int64(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return p, product.ErrProductDoesNotExist
	}
	if err != nil {
		return p, err
	}
	return decodeProduct(dbProduct)
}

func (r *PgxProductRepository) Read(
	ctx context.Context,
	options product.ReadOptions,
) (products []product.Product, err error) {
	if options.Offset > math.MaxInt32 || options.Limit.Value > math.MaxInt32 {
		return products, fmt.Errorf("offset %d or limit %d overflows int32", options.Offset, options.Limit.Value)
	}
	dbProducts, err := r.queries.ReadProducts(ctx, sqlcgen.ReadProductsParams{
		AnyUserID:       !options.OwnerIDEquals.IsPresent,
		UserIDEquals:    int64(options.OwnerIDEquals.Value),
		OrderByIDAsc:    options.OrderBy == product.OrderByIDAsc,
		OrderByIDDesc:   options.OrderBy == product.OrderByIDDesc,
		OrderByNameAsc:  options.OrderBy == product.OrderByNameAsc,
		OrderByNameDesc: options.OrderBy == product.OrderByNameDesc,
		AllRows:         !options.Limit.IsPresent,
		Limit:           int32(options.Limit.Value),
		Offset:          int32(options.Offset),
	})
	if err != nil {
		return products, err
	}

	products = make([]product.Product, 0, len(dbProducts))
	for _, dbProduct := range dbProducts {
		p, err := decodeProduct(dbProduct)
		if err != nil {
			return products, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *PgxProductRepository) Count(ctx context.Context, options product.ReadOptions) (uint, error) {
	count, err := r.queries.CountProducts(ctx, sqlcgen.CountProductsParams{
		AnyUserID:    !options.OwnerIDEquals.IsPresent,
		UserIDEquals: int64(options.OwnerIDEquals.Value),
	})
	if err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (r *PgxProductRepository) Update(ctx context.Context, input product.UpdateInput) (p product.Product, err error) {
	dbProduct, err := r.queries.UpdateProduct(ctx, sqlcgen.UpdateProductParams{
		ID:                  int64(input.ID),
		DoNameUpdate:        input.DoNameUpdate,
		Name:                input.Name,
		DoDescriptionUpdate: input.DoDescriptionUpdate,
		Description:         input.Description,
		DoQuantityUpdate:    input.DoQuantityUpdate,
		Quantity:            int32(input.Quantity),
		DoUnitPriceUpdate:   input.DoUnitPriceUpdate,
		UnitPrice:           encodePrice(input.UnitPrice),
		DoAmountSoldUpdate:  input.DoAmountSoldUpdate,
		AmountSold:          int32(input.AmountSold),
		UpdatedAt:           input.UpdatedAt,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return p, product.ErrProductDoesNotExist
	}
	if err != nil {
		return p, err
	}
	return decodeProduct(dbProduct)
}

func (r *PgxProductRepository) Delete(ctx context.Context, id product.ID) error {
	rows, err := r.queries.DeleteProduct(ctx, int64(id))
	if err != nil {
		return err
	}
	if rows == 0 {
		return product.ErrProductDoesNotExist
	}
	return nil
}

func encodePrice(price product.Price) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(int64(price)), Exp: -2, Status: pgtype.Present}
}

func decodePrice(n pgtype.Numeric) (product.Price, error) {
	if n.Status != pgtype.Present || n.NaN || n.Int == nil {
		return 0, fmt.Errorf("invalid unit price value %v", n)
	}
	ten := big.NewInt(10)
	cents := new(big.Int).Set(n.Int)
	for exp := n.Exp + 2; exp > 0; exp-- {
		cents.Mul(cents, ten)
	}
	for exp := n.Exp + 2; exp < 0; exp++ {
		cents.Quo(cents, ten)
	}
	if !cents.IsInt64() {
		return 0, fmt.Errorf("unit price %s is out of range", cents.String())
	}
	return product.Price(cents.Int64()), nil
}

func decodeProduct(dbProduct sqlcgen.Product) (p product.Product, err error) {
	price, err := decodePrice(dbProduct.UnitPrice)
	if err != nil {
		return p, err
	}
	p = product.Product{
		ID:          product.ID(dbProduct.ID),
		OwnerID:     user.ID(dbProduct.UserID),
		Name:        dbProduct.Name,
		Description: dbProduct.Description,
		Quantity:    uint32(dbProduct.Quantity),
		UnitPrice:   price,
		AmountSold:  uint32(dbProduct.AmountSold),
		CreatedAt:   dbProduct.CreatedAt.UTC(),
		UpdatedAt:   dbProduct.UpdatedAt.UTC(),
	}
	return p, p.Validate()
}
