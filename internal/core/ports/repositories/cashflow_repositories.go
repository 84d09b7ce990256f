package repositories

import (
	"context"

	"github.com/dchu15/store_management_app/internal/core/domain"
)

// CashflowRepository defines the read-only queries backing the cash-flow
// reports. Every listing is materialized with its joins resolved and ordered
// by the relevant date, most recent first.
type CashflowRepository interface {
	// ListSettledPayments returns customer payments with status Successful or
	// Partially Paid and a positive amount.
	ListSettledPayments(ctx context.Context) ([]domain.SettledPayment, error)

	// ListExchangeReturns returns all exchange-type product returns,
	// regardless of status or amounts. Callers classify them by cash
	// direction.
	ListExchangeReturns(ctx context.Context) ([]domain.ReturnDetail, error)

	// ListActiveReturns returns product returns of any type whose status is
	// Pending, Processed or Completed (Cancelled excluded).
	ListActiveReturns(ctx context.Context) ([]domain.ReturnDetail, error)

	// ListPurchaseTransactions returns stock transactions of type Purchase.
	ListPurchaseTransactions(ctx context.Context) ([]domain.PurchaseTransaction, error)

	// ListCompletedSupplierReturns returns supplier returns with a positive
	// refund and status Completed.
	ListCompletedSupplierReturns(ctx context.Context) ([]domain.SupplierReturnDetail, error)

	// FindProductByID returns the product or (nil, nil) when it is absent.
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// FindDamagedProductByID returns the damaged-product link or (nil, nil)
	// when it is absent.
	FindDamagedProductByID(ctx context.Context, damagedProductID int64) (*domain.DamagedProduct, error)
}
