package listuserproducts

import (
	"context"
	"fmt"
	c "inventory/internal/core/domain/common"
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
}

func (suite *testSuite) SetupTest() {
	suite.Repository = product.NewFakeRepository()
	suite.Service = New(logging.NewFakeLogger(), suite.Repository)
	for i := 1; i <= 20; i++ {
		ownerID := OWNER_ID
		if i%4 == 0 {
			ownerID = OTHER_ID
		}
		_, err := suite.Repository.Create(context.Background(), product.CreateInput{
			OwnerID:   ownerID,
			Name:      fmt.Sprintf("Product %02d", i),
			CreatedAt: time.Now().UTC(),
		})
		suite.Require().Nil(err)
	}
}

func TestListUserProductsService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestOnlyOwnProductsReturned() {
	result, err := s.Service.Run(context.Background(), Input{UserID: OWNER_ID})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(15), result.TotalCount)
	assert.Len(result.Products, DEFAULT_LIMIT)
	for _, p := range result.Products {
		assert.Equal(OWNER_ID, p.OwnerID)
	}
	assert.Equal(product.ID(1), result.Products[0].ID)
	assert.Equal(product.OrderByIDAsc, s.Repository.ReadWith[0].OrderBy)
}

func (s *testSuite) TestPagination() {
	result, err := s.Service.Run(
		context.Background(),
		Input{UserID: OWNER_ID, Limit: c.Some[uint](4), Offset: 12},
	)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(15), result.TotalCount)
	assert.Len(result.Products, 3)
}

func (s *testSuite) TestLimitIsCapped() {
	_, err := s.Service.Run(
		context.Background(),
		Input{UserID: OTHER_ID, Limit: c.Some[uint](1000)},
	)

	s.Require().Nil(err)
	s.Equal(uint(MAX_LIMIT), s.Repository.ReadWith[0].Limit.Value)
}

func (s *testSuite) TestOffsetBeyondInt32IsRejected() {
	_, err := s.Service.Run(
		context.Background(),
		Input{UserID: OWNER_ID, Limit: c.Some[uint](64), Offset: MAX_OFFSET + 1},
	)

	s.ErrorIs(err, ErrOffsetTooLarge)
	s.Empty(s.Repository.ReadWith)
}
