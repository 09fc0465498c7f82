package getproduct

import (
	"context"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/product"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	OWNER_ID = user.ID(1)
	OTHER_ID = user.ID(2)
)

type testSuite struct {
	suite.Suite
	Repository *product.FakeRepository
	Service    services.Service[Input, Result]
	Product    product.Product
}

func (suite *testSuite) SetupTest() {
	suite.Repository = product.NewFakeRepository()
	suite.Service = New(logging.NewFakeLogger(), suite.Repository)
	p, err := suite.Repository.Create(context.Background(), product.CreateInput{
		OwnerID:   OWNER_ID,
		Name:      "Mouse",
		Quantity:  3,
		UnitPrice: product.Price(1500),
		CreatedAt: time.Now().UTC(),
	})
	suite.Require().Nil(err)
	suite.Product = p
}

func TestGetProductService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.Service.Run(context.Background(), Input{UserID: OWNER_ID, ProductID: s.Product.ID})

	s.Require().Nil(err)
	s.Equal(s.Product, result.Product)
}

func (s *testSuite) TestErrors() {
	cases := []struct {
		id            string
		userID        user.ID
		productID     product.ID
		expectedError error
	}{
		{id: "not-owner", userID: OTHER_ID, productID: 1, expectedError: product.ErrProductPermission},
		{id: "owner-missing-product", userID: OWNER_ID, productID: 404, expectedError: product.ErrProductDoesNotExist},
		{id: "other-missing-product", userID: OTHER_ID, productID: 404, expectedError: product.ErrProductDoesNotExist},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			_, err := s.Service.Run(
				context.Background(),
				Input{UserID: testcase.userID, ProductID: testcase.productID},
			)
			s.ErrorIs(err, testcase.expectedError)
		})
	}
}
