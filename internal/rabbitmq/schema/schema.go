package schema

import (
	"encoding/json"
	"errors"
)

var ErrInvalidProductSale = errors.New("invalid product sale message")

type ProductSale struct {
	ProductID int64  `json:"product_id"`
	Quantity  uint32 `json:"quantity"`
}

func (s *ProductSale) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func (s *ProductSale) Unmarshal(data []byte) error {
	if err := json.Unmarshal(data, s); err != nil {
		return err
	}
	if s.ProductID <= 0 || s.Quantity == 0 {
		return ErrInvalidProductSale
	}
	return nil
}
