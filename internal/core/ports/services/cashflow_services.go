package services

import (
	"context"

	"github.com/dchu15/store_management_app/internal/core/domain"
)

// CashflowService defines the cash-flow reporting operations. Each operation
// is an independent, idempotent read over the current database state.
type CashflowService interface {
	// GetCustomerPayments returns money received from customers: settled
	// invoice payments plus exchange adjustments where the customer pays the
	// price difference.
	GetCustomerPayments(ctx context.Context) (*domain.CustomerPaymentsReport, error)

	// GetCustomerRefunds returns money refunded to customers through
	// non-cancelled product returns.
	GetCustomerRefunds(ctx context.Context) (*domain.CustomerRefundsReport, error)

	// GetSupplierPayments returns money paid to suppliers, extracted from the
	// payment notes embedded in purchase transactions.
	GetSupplierPayments(ctx context.Context) (*domain.SupplierPaymentsReport, error)

	// GetSupplierReceipts returns money received back from suppliers for
	// completed damaged-goods returns. When the supplier-returns subsystem is
	// unavailable it degrades to an empty report instead of failing.
	GetSupplierReceipts(ctx context.Context) (*domain.SupplierReceiptsReport, error)

	// GetCashflowSummary composes the four base reports, invoking each
	// exactly once, into the overall inflow/outflow/net position.
	GetCashflowSummary(ctx context.Context) (*domain.CashflowSummary, error)

	// ListCustomerAdjustmentRefunds returns the exchange adjustments where we
	// pay the customer, in the narrower shape served by the dedicated
	// customer-refunds endpoint.
	ListCustomerAdjustmentRefunds(ctx context.Context) (*domain.AdjustmentRefundsReport, error)
}
