package updateproduct

import (
	"context"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/product"
	uow "inventory/internal/core/domain/unit_of_work"
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

var NOW time.Time = time.Date(2022, 10, 10, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	UnitOfWork *uow.FakeUnitOfWork
	Publisher  *product.FakeEventPublisher
	Service    services.Service[Input, Result]
	Product    product.Product
}

func (suite *testSuite) SetupTest() {
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.Publisher = product.NewFakeEventPublisher()
	suite.Service = New(
		logging.NewFakeLogger(),
		suite.UnitOfWork,
		suite.Publisher,
		func() time.Time { return NOW },
	)
	p, err := suite.UnitOfWork.Context.ProductRepository.Create(context.Background(), product.CreateInput{
		OwnerID:     OWNER_ID,
		Name:        "Mouse",
		Description: "Wireless",
		Quantity:    3,
		UnitPrice:   product.Price(1500),
		CreatedAt:   NOW.Add(-time.Hour),
	})
	suite.Require().Nil(err)
	suite.Product = p
}

func TestUpdateProductService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.Service.Run(context.Background(), Input{
		UserID:      OWNER_ID,
		ProductID:   s.Product.ID,
		Name:        "Trackball",
		Description: "Wired",
		Quantity:    8,
		UnitPrice:   product.Price(2500),
	})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal("Trackball", result.Product.Name)
	assert.Equal("Wired", result.Product.Description)
	assert.Equal(uint32(8), result.Product.Quantity)
	assert.Equal(product.Price(2500), result.Product.UnitPrice)
	assert.Equal(NOW, result.Product.UpdatedAt)
	assert.Equal(s.Product.CreatedAt, result.Product.CreatedAt)
	assert.True(s.UnitOfWork.Context.WasCommitCalled)
	assert.Equal([]product.ID{s.Product.ID}, s.UnitOfWork.Context.ProductRepository.Locked)
	assert.Equal(product.EventUpdated, s.Publisher.Published[0].Type)
}

func (s *testSuite) TestErrors() {
	cases := []struct {
		id            string
		userID        user.ID
		productID     product.ID
		expectedError error
	}{
		{id: "not-owner", userID: OTHER_ID, productID: 1, expectedError: product.ErrProductPermission},
		{id: "missing-product", userID: OWNER_ID, productID: 404, expectedError: product.ErrProductDoesNotExist},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			_, err := s.Service.Run(
				context.Background(),
				Input{UserID: testcase.userID, ProductID: testcase.productID, Name: "Changed"},
			)

			s.ErrorIs(err, testcase.expectedError)
			s.False(s.UnitOfWork.Context.WasCommitCalled)
			s.Equal("Mouse", s.UnitOfWork.Context.ProductRepository.Products[0].Name)
			s.Equal(0, s.Publisher.PublishedCount())
		})
	}
}
