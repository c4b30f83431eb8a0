package services_test

import (
	"context"
	"testing"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CostingServiceTestSuite struct {
	suite.Suite
	mockCostingRepo *MockCostingRepository
	service         portssvc.CostingSvcFacade
	flakes          domain.FlakesIntake
	cost            domain.FlakesCost
}

func (suite *CostingServiceTestSuite) SetupTest() {
	suite.mockCostingRepo = new(MockCostingRepository)
	suite.service = services.NewCostingService(suite.mockCostingRepo, services.WithClock(fixedClock))
	suite.flakes = domain.FlakesIntake{Serial: "F-1", TotalCost1: decPtr("50")}
	suite.cost = domain.FlakesCost{CostID: "C-1", TotalCost2: decPtr("30")}
}

func (suite *CostingServiceTestSuite) TestCreatePelletsPrice_Profit() {
	ctx := context.Background()
	suite.mockCostingRepo.On("FindFlakesIntakeBySerial", ctx, "F-1").Return(&suite.flakes, nil).Once()
	suite.mockCostingRepo.On("FindFlakesCostByID", ctx, "C-1").Return(&suite.cost, nil).Once()
	suite.mockCostingRepo.On("SavePelletsPrice", ctx, mock.AnythingOfType("domain.PelletsPrice")).Return(nil).Once()

	price, err := suite.service.CreatePelletsPrice(ctx, dto.CreatePelletsPriceRequest{
		FlakesSerial: strPtr("F-1"),
		CostID:       strPtr("C-1"),
		Quantity:     decPtr("10"),
		UnitPrice:    decPtr("20"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(price.Price.Equal(dec("200")))
	suite.Require().NotNil(price.Profit)
	suite.True(price.Profit.Equal(dec("120")))
	suite.mockCostingRepo.AssertExpectations(suite.T())
}

func (suite *CostingServiceTestSuite) TestCreatePelletsPrice_MissingCostLeavesProfitNull() {
	ctx := context.Background()
	suite.mockCostingRepo.On("FindFlakesIntakeBySerial", ctx, "F-1").Return(&suite.flakes, nil).Once()
	suite.mockCostingRepo.On("SavePelletsPrice", ctx, mock.MatchedBy(func(p domain.PelletsPrice) bool {
		return p.CostID == nil && p.Profit == nil && p.Price.Equal(dec("200"))
	})).Return(nil).Once()

	price, err := suite.service.CreatePelletsPrice(ctx, dto.CreatePelletsPriceRequest{
		FlakesSerial: strPtr("F-1"),
		Quantity:     decPtr("10"),
		UnitPrice:    decPtr("20"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Nil(price.Profit)
	suite.True(price.Price.Equal(dec("200")))
	suite.mockCostingRepo.AssertNotCalled(suite.T(), "FindFlakesCostByID", mock.Anything, mock.Anything)
}

func (suite *CostingServiceTestSuite) TestCreatePelletsPrice_UnresolvedCostIsDropped() {
	ctx := context.Background()
	suite.mockCostingRepo.On("FindFlakesIntakeBySerial", ctx, "F-1").Return(&suite.flakes, nil).Once()
	suite.mockCostingRepo.On("FindFlakesCostByID", ctx, "C-404").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCostingRepo.On("SavePelletsPrice", ctx, mock.AnythingOfType("domain.PelletsPrice")).Return(nil).Once()

	price, err := suite.service.CreatePelletsPrice(ctx, dto.CreatePelletsPriceRequest{
		FlakesSerial: strPtr("F-1"),
		CostID:       strPtr("C-404"),
		Quantity:     decPtr("10"),
		UnitPrice:    decPtr("20"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Nil(price.CostID)
	suite.Nil(price.Profit)
}

func (suite *CostingServiceTestSuite) TestCreateFlakesIntake_TotalCost() {
	ctx := context.Background()
	suite.mockCostingRepo.On("FindFlakesIntakeBySerial", ctx, "F-2").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCostingRepo.On("SaveFlakesIntake", ctx, mock.AnythingOfType("domain.FlakesIntake")).Return(nil).Once()

	intake, err := suite.service.CreateFlakesIntake(ctx, dto.CreateFlakesIntakeRequest{
		Serial:     "F-2",
		FlakesType: "Clear flakes",
		Quantity:   decPtr("12.5"),
		UnitCost:   decPtr("4"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(intake.TotalCost1.Equal(dec("50")))

	suite.mockCostingRepo.On("FindFlakesIntakeBySerial", ctx, "F-3").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCostingRepo.On("SaveFlakesIntake", ctx, mock.AnythingOfType("domain.FlakesIntake")).Return(nil).Once()

	intake, err = suite.service.CreateFlakesIntake(ctx, dto.CreateFlakesIntakeRequest{
		Serial:     "F-3",
		FlakesType: "Clear flakes",
		Quantity:   decPtr("12.5"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Nil(intake.TotalCost1)
}

func (suite *CostingServiceTestSuite) TestCreateFlakesIntake_DuplicateSerial() {
	ctx := context.Background()
	suite.mockCostingRepo.On("FindFlakesIntakeBySerial", ctx, "F-1").Return(&suite.flakes, nil).Once()

	_, err := suite.service.CreateFlakesIntake(ctx, dto.CreateFlakesIntakeRequest{Serial: "F-1", FlakesType: "Clear flakes"}, "user-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	fe, ok := apperrors.AsFieldError(err)
	suite.Require().True(ok)
	suite.Equal("serial", fe.Field)
	suite.mockCostingRepo.AssertNotCalled(suite.T(), "SaveFlakesIntake", mock.Anything, mock.Anything)
}

func (suite *CostingServiceTestSuite) TestCreateFlakesCost_Totals() {
	ctx := context.Background()
	suite.mockCostingRepo.On("FindFlakesCostByID", ctx, "C-2").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCostingRepo.On("SaveFlakesCost", ctx, mock.AnythingOfType("domain.FlakesCost")).Return(nil).Once()

	cost, err := suite.service.CreateFlakesCost(ctx, dto.CreateFlakesCostRequest{
		CostID:        "C-2",
		WashingCost:   decPtr("10"),
		TransportCost: decPtr("5.5"),
		PelletingCost: decPtr("12"),
		OtherCost:     decPtr("2.5"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(cost.TotalCost2.Equal(dec("30")))

	suite.mockCostingRepo.On("FindFlakesCostByID", ctx, "C-3").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCostingRepo.On("SaveFlakesCost", ctx, mock.AnythingOfType("domain.FlakesCost")).Return(nil).Once()

	cost, err = suite.service.CreateFlakesCost(ctx, dto.CreateFlakesCostRequest{
		CostID:      "C-3",
		WashingCost: decPtr("10"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Nil(cost.TotalCost2)
}

func TestCostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CostingServiceTestSuite))
}
