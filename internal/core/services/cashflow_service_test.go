package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dchu15/store_management_app/internal/core/domain"
	portssvc "github.com/dchu15/store_management_app/internal/core/ports/services"
	"github.com/dchu15/store_management_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CashflowRepository ---
type MockCashflowRepository struct {
	mock.Mock
}

func (m *MockCashflowRepository) ListSettledPayments(ctx context.Context) ([]domain.SettledPayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SettledPayment), args.Error(1)
}

func (m *MockCashflowRepository) ListExchangeReturns(ctx context.Context) ([]domain.ReturnDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReturnDetail), args.Error(1)
}

func (m *MockCashflowRepository) ListActiveReturns(ctx context.Context) ([]domain.ReturnDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReturnDetail), args.Error(1)
}

func (m *MockCashflowRepository) ListPurchaseTransactions(ctx context.Context) ([]domain.PurchaseTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseTransaction), args.Error(1)
}

func (m *MockCashflowRepository) ListCompletedSupplierReturns(ctx context.Context) ([]domain.SupplierReturnDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplierReturnDetail), args.Error(1)
}

func (m *MockCashflowRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCashflowRepository) FindDamagedProductByID(ctx context.Context, damagedProductID int64) (*domain.DamagedProduct, error) {
	args := m.Called(ctx, damagedProductID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DamagedProduct), args.Error(1)
}

// --- Fixtures ---

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func settledPayment(id int64, amount string) domain.SettledPayment {
	return domain.SettledPayment{
		Payment: domain.Payment{
			PaymentID:     id,
			InvoiceID:     int64Ptr(id + 100),
			CustomerID:    1,
			AmountPaid:    dec(amount),
			PaymentMethod: "cash",
			PaymentStatus: domain.PaymentSuccessful,
			PaymentDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		CustomerName:         "Alice",
		CustomerBusinessName: "Alice Traders",
	}
}

func exchangeInflow(id int64, diff string) domain.ReturnDetail {
	return domain.ReturnDetail{
		ProductReturn: domain.ProductReturn{
			ReturnID:                id,
			ReturnNumber:            "RET-0042",
			CustomerID:              2,
			ProductID:               7,
			ReturnType:              domain.ReturnTypeExchange,
			ExchangePriceDifference: dec(diff),
			Status:                  domain.ReturnProcessed,
			ReturnDate:              time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		},
		CustomerName:         "Bob",
		CustomerBusinessName: "Bob & Co",
		ProductName:          "Basic Widget",
		ExchangeProductName:  strPtr("Deluxe Widget"),
	}
}

func exchangeOutflow(id int64, refund string) domain.ReturnDetail {
	return domain.ReturnDetail{
		ProductReturn: domain.ProductReturn{
			ReturnID:     id,
			ReturnNumber: "RET-0043",
			CustomerID:   2,
			ProductID:    7,
			ReturnType:   domain.ReturnTypeExchange,
			RefundAmount: dec(refund),
			Status:       domain.ReturnPending,
			Reason:       "stored reason",
			ReturnDate:   time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		},
		CustomerName:         "Bob",
		CustomerBusinessName: "Bob & Co",
		ProductName:          "Deluxe Widget",
		ExchangeProductName:  strPtr("Basic Widget"),
	}
}

func plainReturn(id int64, refund string, status domain.ReturnStatus) domain.ReturnDetail {
	return domain.ReturnDetail{
		ProductReturn: domain.ProductReturn{
			ReturnID:         id,
			ReturnNumber:     "RET-0050",
			CustomerID:       3,
			ProductID:        8,
			ReturnType:       domain.ReturnTypeReturn,
			RefundAmount:     dec(refund),
			Status:           status,
			Reason:           "damaged on arrival",
			QuantityReturned: 1,
			ReturnDate:       time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		CustomerName:         "Carol",
		CustomerBusinessName: "Carol Goods",
		ProductName:          "Sprocket",
	}
}

func purchaseTx(id int64, notes *string) domain.PurchaseTransaction {
	return domain.PurchaseTransaction{
		StockTransaction: domain.StockTransaction{
			TransactionID:   id,
			TransactionType: domain.TransactionPurchase,
			SupplierID:      5,
			ProductID:       9,
			Quantity:        10,
			TransactionDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			ReferenceNumber: "PO-0099",
			Notes:           notes,
		},
		SupplierName:         "Dan",
		SupplierBusinessName: "Dan Supplies",
	}
}

func supplierReturn(id int64, refund string, damagedID *int64) domain.SupplierReturnDetail {
	return domain.SupplierReturnDetail{
		SupplierReturn: domain.SupplierReturn{
			ReturnID:         id,
			ReturnNumber:     "SRET-0007",
			SupplierID:       5,
			DamagedProductID: damagedID,
			RefundAmount:     dec(refund),
			ReturnType:       "damaged",
			Status:           domain.ReturnCompleted,
			QuantityReturned: 2,
			ReturnDate:       time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		SupplierName:         "Dan",
		SupplierBusinessName: "Dan Supplies",
	}
}

// --- Test Suite ---
type CashflowServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCashflowRepository
	service  portssvc.CashflowService
}

func (suite *CashflowServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCashflowRepository)
	suite.service = services.NewCashflowService(suite.mockRepo)
}

// --- GetCustomerPayments ---

func (suite *CashflowServiceTestSuite) TestGetCustomerPayments_CombinesSettledAndAdjustments() {
	ctx := context.Background()

	suite.mockRepo.On("ListSettledPayments", ctx).
		Return([]domain.SettledPayment{settledPayment(1, "100.555"), settledPayment(2, "49.445")}, nil).Once()
	suite.mockRepo.On("ListExchangeReturns", ctx).
		Return([]domain.ReturnDetail{exchangeInflow(10, "25.10"), exchangeOutflow(11, "15.00")}, nil).Once()

	report, err := suite.service.GetCustomerPayments(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(3, report.Count)
	suite.Len(report.Payments, 3)
	// Totals keep full precision: 100.555 + 49.445 + 25.10
	suite.True(report.TotalReceived.Equal(dec("175.10")), "got total %s", report.TotalReceived)

	regular := report.Payments[0]
	suite.Equal("1", regular.PaymentID)
	suite.Equal(domain.PaymentTypeRegular, regular.PaymentType)
	suite.Equal("Successful", regular.Status)

	adj := report.Payments[2]
	suite.Equal("ADJ-10", adj.PaymentID)
	suite.Equal(domain.PaymentTypeAdjustment, adj.PaymentType)
	suite.Equal("adjustment", adj.PaymentMethod)
	suite.Equal("Completed", adj.Status)
	suite.Require().NotNil(adj.TransactionReference)
	suite.Equal("RET-0042", *adj.TransactionReference)
	suite.Equal("Customer pays extra for exchange: Basic Widget -> Deluxe Widget", adj.AdjustmentDetails)
	suite.True(adj.AmountPaid.Equal(dec("25.10")))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestGetCustomerPayments_MissingExchangeProductName() {
	ctx := context.Background()
	inflow := exchangeInflow(12, "5.00")
	inflow.ExchangeProductName = nil

	suite.mockRepo.On("ListSettledPayments", ctx).Return([]domain.SettledPayment{}, nil).Once()
	suite.mockRepo.On("ListExchangeReturns", ctx).Return([]domain.ReturnDetail{inflow}, nil).Once()

	report, err := suite.service.GetCustomerPayments(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(report.Payments, 1)
	suite.Equal("Customer pays extra for exchange: Basic Widget -> N/A", report.Payments[0].AdjustmentDetails)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestGetCustomerPayments_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListSettledPayments", ctx).Return(nil, assert.AnError).Once()

	report, err := suite.service.GetCustomerPayments(ctx)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- GetCustomerRefunds ---

func (suite *CashflowServiceTestSuite) TestGetCustomerRefunds_ReclassifiesExchanges() {
	ctx := context.Background()

	suite.mockRepo.On("ListActiveReturns", ctx).Return([]domain.ReturnDetail{
		plainReturn(20, "30.00", domain.ReturnPending),
		exchangeOutflow(21, "12.50"),
		exchangeInflow(22, "8.00"), // customer pays us, not a refund
	}, nil).Once()

	report, err := suite.service.GetCustomerRefunds(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, report.Count)
	suite.True(report.TotalRefunded.Equal(dec("42.50")), "got total %s", report.TotalRefunded)

	plain := report.Refunds[0]
	suite.Equal("return", plain.RefundType)
	suite.Equal("damaged on arrival", plain.Reason)

	adj := report.Refunds[1]
	suite.Equal(domain.RefundTypeAdjustment, adj.RefundType)
	suite.Equal(domain.AdjustmentRefundReason, adj.Reason)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestGetCustomerRefunds_ExcludesCancelledReturns() {
	ctx := context.Background()

	// A cancelled return with a positive refund amount stays out of the report
	// even when the repository listing hands it back.
	suite.mockRepo.On("ListActiveReturns", ctx).Return([]domain.ReturnDetail{
		plainReturn(20, "30.00", domain.ReturnCompleted),
		plainReturn(21, "55.00", domain.ReturnCancelled),
	}, nil).Once()

	report, err := suite.service.GetCustomerRefunds(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, report.Count)
	suite.Len(report.Refunds, 1)
	suite.Equal(int64(20), report.Refunds[0].ReturnID)
	suite.True(report.TotalRefunded.Equal(dec("30.00")), "got total %s", report.TotalRefunded)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- GetSupplierPayments ---

func (suite *CashflowServiceTestSuite) TestGetSupplierPayments_SkipsUnusableNotes() {
	ctx := context.Background()

	withProducts := purchaseTx(30, strPtr(`{"payment_amount":"120.25","payment_method":"bank","products":[{"name":"Gear"},{"name":"Axle"}]}`))
	bareNumber := purchaseTx(31, strPtr(`{"payment_amount":75.75}`))
	malformed := purchaseTx(32, strPtr(`paid in full, thanks`))
	zeroAmount := purchaseTx(33, strPtr(`{"payment_method":"cash"}`))
	noNotes := purchaseTx(34, nil)

	suite.mockRepo.On("ListPurchaseTransactions", ctx).
		Return([]domain.PurchaseTransaction{withProducts, bareNumber, malformed, zeroAmount, noNotes}, nil).Once()
	// bareNumber's note lists no products; name resolves through the stock row
	suite.mockRepo.On("FindProductByID", ctx, int64(9)).
		Return(&domain.Product{ProductID: 9, ProductName: "Flange"}, nil).Once()

	report, err := suite.service.GetSupplierPayments(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, report.Count)
	suite.True(report.TotalPaid.Equal(dec("196.00")), "got total %s", report.TotalPaid)

	suite.Equal([]string{"Gear", "Axle"}, report.Payments[0].Products)
	suite.Require().NotNil(report.Payments[0].PaymentMethod)
	suite.Equal("bank", *report.Payments[0].PaymentMethod)

	suite.Equal([]string{"Flange"}, report.Payments[1].Products)
	suite.Nil(report.Payments[1].PaymentMethod)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestGetSupplierPayments_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListPurchaseTransactions", ctx).Return(nil, assert.AnError).Once()

	report, err := suite.service.GetSupplierPayments(ctx)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- GetSupplierReceipts ---

func (suite *CashflowServiceTestSuite) TestGetSupplierReceipts_ResolvesProductNames() {
	ctx := context.Background()

	suite.mockRepo.On("ListCompletedSupplierReturns", ctx).Return([]domain.SupplierReturnDetail{
		supplierReturn(40, "18.00", int64Ptr(70)),
		supplierReturn(41, "7.00", nil),
	}, nil).Once()
	suite.mockRepo.On("FindDamagedProductByID", ctx, int64(70)).
		Return(&domain.DamagedProduct{DamagedProductID: 70, ProductID: 9}, nil).Once()
	suite.mockRepo.On("FindProductByID", ctx, int64(9)).
		Return(&domain.Product{ProductID: 9, ProductName: "Flange"}, nil).Once()

	report, err := suite.service.GetSupplierReceipts(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, report.Count)
	suite.True(report.TotalReceived.Equal(dec("25.00")))
	suite.Equal("Flange", report.Receipts[0].ProductName)
	suite.Equal(domain.UnknownProductName, report.Receipts[1].ProductName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestGetSupplierReceipts_EmptyOnError() {
	ctx := context.Background()
	suite.mockRepo.On("ListCompletedSupplierReturns", ctx).Return(nil, assert.AnError).Once()

	report, err := suite.service.GetSupplierReceipts(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Empty(report.Receipts)
	suite.NotNil(report.Receipts)
	suite.True(report.TotalReceived.IsZero())
	suite.Equal(0, report.Count)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- GetCashflowSummary ---

func (suite *CashflowServiceTestSuite) TestGetCashflowSummary_ComposesBaseReports() {
	ctx := context.Background()

	suite.mockRepo.On("ListSettledPayments", ctx).
		Return([]domain.SettledPayment{settledPayment(1, "100.00")}, nil).Once()
	suite.mockRepo.On("ListExchangeReturns", ctx).
		Return([]domain.ReturnDetail{exchangeInflow(10, "25.00")}, nil).Once()
	suite.mockRepo.On("ListActiveReturns", ctx).
		Return([]domain.ReturnDetail{plainReturn(20, "30.00", domain.ReturnCompleted)}, nil).Once()
	suite.mockRepo.On("ListPurchaseTransactions", ctx).
		Return([]domain.PurchaseTransaction{purchaseTx(30, strPtr(`{"payment_amount":"45.00"}`))}, nil).Once()
	suite.mockRepo.On("FindProductByID", ctx, int64(9)).
		Return(&domain.Product{ProductID: 9, ProductName: "Flange"}, nil).Once()
	suite.mockRepo.On("ListCompletedSupplierReturns", ctx).
		Return([]domain.SupplierReturnDetail{supplierReturn(40, "10.00", nil)}, nil).Once()

	summary, err := suite.service.GetCashflowSummary(ctx)

	suite.Require().NoError(err)
	// inflow = 100 + 25 + 10, outflow = 30 + 45
	suite.True(summary.TotalInflow.Equal(dec("135.00")), "got inflow %s", summary.TotalInflow)
	suite.True(summary.TotalOutflow.Equal(dec("75.00")), "got outflow %s", summary.TotalOutflow)
	suite.True(summary.NetCashflow.Equal(dec("60.00")), "got net %s", summary.NetCashflow)
	suite.Equal(domain.CashPositionPositive, summary.CashPosition)
	suite.Equal(2, summary.CustomerPayments.Count)
	suite.Equal(1, summary.SupplierReceipts.Count)

	// .Once() on every listing above doubles as the exactly-once check
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestGetCashflowSummary_NeutralWhenBalanced() {
	ctx := context.Background()

	suite.mockRepo.On("ListSettledPayments", ctx).
		Return([]domain.SettledPayment{settledPayment(1, "30.00")}, nil).Once()
	suite.mockRepo.On("ListExchangeReturns", ctx).Return([]domain.ReturnDetail{}, nil).Once()
	suite.mockRepo.On("ListActiveReturns", ctx).
		Return([]domain.ReturnDetail{plainReturn(20, "30.00", domain.ReturnCompleted)}, nil).Once()
	suite.mockRepo.On("ListPurchaseTransactions", ctx).
		Return([]domain.PurchaseTransaction{}, nil).Once()
	suite.mockRepo.On("ListCompletedSupplierReturns", ctx).
		Return([]domain.SupplierReturnDetail{}, nil).Once()

	summary, err := suite.service.GetCashflowSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.NetCashflow.IsZero())
	suite.Equal(domain.CashPositionNeutral, summary.CashPosition)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashflowServiceTestSuite) TestGetCashflowSummary_PropagatesBaseError() {
	ctx := context.Background()
	suite.mockRepo.On("ListSettledPayments", ctx).Return(nil, assert.AnError).Once()

	summary, err := suite.service.GetCashflowSummary(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- ListCustomerAdjustmentRefunds ---

func (suite *CashflowServiceTestSuite) TestListCustomerAdjustmentRefunds() {
	ctx := context.Background()

	cancelled := exchangeOutflow(51, "9.00")
	cancelled.Status = domain.ReturnCancelled

	suite.mockRepo.On("ListExchangeReturns", ctx).Return([]domain.ReturnDetail{
		exchangeOutflow(50, "12.50"),
		cancelled, // no status filter on this listing
		exchangeInflow(52, "4.00"),
	}, nil).Once()

	report, err := suite.service.ListCustomerAdjustmentRefunds(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, report.Count)
	suite.True(report.TotalPaid.Equal(dec("21.50")), "got total %s", report.TotalPaid)

	line := report.Refunds[0]
	suite.Equal(int64(50), line.AdjustmentID)
	suite.Equal("Deluxe Widget", line.OldProduct)
	suite.Require().NotNil(line.NewProduct)
	suite.Equal("Basic Widget", *line.NewProduct)
	suite.Equal(domain.AdjustmentRefundReason, line.Reason)

	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCashflowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashflowServiceTestSuite))
}
