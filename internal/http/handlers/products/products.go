package products

import (
	"encoding/json"
	"errors"
	"inventory/internal/core/domain/product"
	"inventory/internal/core/domain/user"
	"inventory/internal/http/handlers/response"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

const URL_PARAM_PRODUCT_ID = "productID"

var errInvalidProductID = errors.New("invalid product id")

// Input is the request body of product create and update.
type Input struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Quantity    *int64   `json:"quantity"`
	UnitPrice   *float64 `json:"unit_price"`
}

func (i *Input) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(i)
}

// Validate checks the input as Parse stores it, with the name trimmed.
func (i Input) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(0, product.MAX_NAME_LEN)),
		validation.Field(&i.Description, validation.Length(0, product.MAX_DESCRIPTION_LEN)),
		validation.Field(
			&i.Quantity,
			validation.NotNil,
			validation.Min(int64(0)),
			validation.Max(int64(product.MAX_QUANTITY)),
		),
		validation.Field(
			&i.UnitPrice,
			validation.NotNil,
			validation.Min(float64(0)),
			validation.Max(product.MAX_PRICE.Float64()),
		),
	)
}

// Parse reads and validates the body, a failure is rendered and ok is false.
func (i *Input) Parse(rw http.ResponseWriter, r *http.Request) (price product.Price, ok bool) {
	if err := i.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw)
		return price, false
	}
	i.Name = strings.TrimSpace(i.Name)
	if err := i.Validate(); err != nil {
		response.RenderValidationError(rw, err)
		return price, false
	}
	price, err := product.NewPriceFromFloat(*i.UnitPrice)
	if err != nil {
		response.RenderValidationError(rw, validation.Errors{"unit_price": err})
		return price, false
	}
	return price, true
}

func ParseProductID(r *http.Request) (product.ID, error) {
	raw := chi.URLParam(r, URL_PARAM_PRODUCT_ID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidProductID
	}
	return product.ID(id), nil
}

func RenderNotFound(rw http.ResponseWriter) {
	response.RenderError(rw, "Product not found", http.StatusNotFound)
}

// RenderServiceError maps an error of a product service to a response.
func RenderServiceError(rw http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrUserDoesNotExist):
		response.RenderUnauthenticated(rw)
	case errors.Is(err, product.ErrProductDoesNotExist):
		RenderNotFound(rw)
	case errors.Is(err, product.ErrProductPermission):
		response.RenderForbidden(rw)
	default:
		response.RenderInternalError(rw)
	}
}

func Render(rw http.ResponseWriter, p product.Product, status int) {
	res := response.Product{}
	res.FromDomainType(p)
	response.Render(rw, res, status)
}
