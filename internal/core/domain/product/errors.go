package product

import "errors"

var (
	ErrProductDoesNotExist = errors.New("product does not exist")
	ErrProductPermission   = errors.New("product belongs to another user")
	ErrNotEnoughQuantity   = errors.New("not enough quantity of the product")
	ErrInvalidSaleQuantity = errors.New("sale quantity must be positive")
	ErrAmountSoldOverflow  = errors.New("amount sold would exceed its maximum")
)
