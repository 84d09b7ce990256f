package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dchu15/store_management_app/internal/core/domain"
	portsrepo "github.com/dchu15/store_management_app/internal/core/ports/repositories"
	portssvc "github.com/dchu15/store_management_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// cashflowService implements the CashflowService interface. It is stateless:
// every report is recomputed from the store on each call, so concurrent
// invocations need no coordination.
type cashflowService struct {
	BaseService
	cashflowRepo portsrepo.CashflowRepository
}

// NewCashflowService creates a new cash-flow reporting service.
func NewCashflowService(repo portsrepo.CashflowRepository) portssvc.CashflowService {
	return &cashflowService{
		cashflowRepo: repo,
	}
}

// Ensure cashflowService implements the CashflowService interface
var _ portssvc.CashflowService = (*cashflowService)(nil)

// GetCustomerPayments returns money received from customers: settled invoice
// payments first, then exchange adjustments where the customer pays us the
// price difference. Both groups keep their own most-recent-first order.
func (s *cashflowService) GetCustomerPayments(ctx context.Context) (*domain.CustomerPaymentsReport, error) {
	payments, err := s.cashflowRepo.ListSettledPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve settled customer payments")
		return nil, fmt.Errorf("error fetching customer payments: %w", err)
	}

	exchanges, err := s.cashflowRepo.ListExchangeReturns(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve exchange returns for adjustment payments")
		return nil, fmt.Errorf("error fetching customer payments: %w", err)
	}

	lines := make([]domain.CustomerPaymentLine, 0, len(payments)+len(exchanges))
	total := decimal.Zero

	for _, p := range payments {
		total = total.Add(p.AmountPaid)
		lines = append(lines, domain.CustomerPaymentLine{
			PaymentID:            strconv.FormatInt(p.PaymentID, 10),
			InvoiceID:            p.InvoiceID,
			CustomerID:           p.CustomerID,
			CustomerName:         p.CustomerName,
			BusinessName:         p.CustomerBusinessName,
			AmountPaid:           p.AmountPaid,
			PaymentMethod:        p.PaymentMethod,
			PaymentDate:          p.PaymentDate,
			TransactionReference: p.TransactionReference,
			PaymentType:          domain.PaymentTypeRegular,
			Status:               string(p.PaymentStatus),
		})
	}

	for _, r := range exchanges {
		if r.CashDirection() != domain.CashInflow {
			continue
		}
		amount := r.ExchangePriceDifference
		total = total.Add(amount)

		exchangeName := "N/A"
		if r.ExchangeProductName != nil {
			exchangeName = *r.ExchangeProductName
		}
		reference := r.ReturnNumber
		lines = append(lines, domain.CustomerPaymentLine{
			PaymentID:            fmt.Sprintf("ADJ-%d", r.ReturnID),
			InvoiceID:            r.OriginalInvoiceID,
			CustomerID:           r.CustomerID,
			CustomerName:         r.CustomerName,
			BusinessName:         r.CustomerBusinessName,
			AmountPaid:           amount,
			PaymentMethod:        "adjustment",
			PaymentDate:          r.ReturnDate,
			TransactionReference: &reference,
			PaymentType:          domain.PaymentTypeAdjustment,
			Status:               string(domain.ReturnCompleted),
			AdjustmentDetails:    fmt.Sprintf("Customer pays extra for exchange: %s -> %s", r.ProductName, exchangeName),
		})
	}

	s.LogInfo(ctx, "Customer payments report generated",
		slog.Int("count", len(lines)),
		slog.String("total_received", total.String()))
	return &domain.CustomerPaymentsReport{
		Payments:      lines,
		TotalReceived: total,
		Count:         len(lines),
	}, nil
}

// GetCustomerRefunds returns money refunded to customers through product
// returns that are Pending, Processed or Completed. Exchange rows are
// reclassified as adjustment refunds with a synthesized reason.
func (s *cashflowService) GetCustomerRefunds(ctx context.Context) (*domain.CustomerRefundsReport, error) {
	returns, err := s.cashflowRepo.ListActiveReturns(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve active product returns")
		return nil, fmt.Errorf("error fetching customer refunds: %w", err)
	}

	lines := make([]domain.CustomerRefundLine, 0, len(returns))
	total := decimal.Zero

	for _, r := range returns {
		// The repository already filters to active statuses; the guard here
		// keeps cancelled refunds out even if that filter changes.
		if r.Status == domain.ReturnCancelled {
			continue
		}
		if r.CashDirection() != domain.CashOutflow {
			continue
		}
		total = total.Add(r.RefundAmount)

		refundType := string(r.ReturnType)
		reason := r.Reason
		if r.ReturnType == domain.ReturnTypeExchange {
			refundType = domain.RefundTypeAdjustment
			reason = domain.AdjustmentRefundReason
		}

		lines = append(lines, domain.CustomerRefundLine{
			ReturnID:         r.ReturnID,
			ReturnNumber:     r.ReturnNumber,
			CustomerID:       r.CustomerID,
			CustomerName:     r.CustomerName,
			BusinessName:     r.CustomerBusinessName,
			ProductName:      r.ProductName,
			RefundAmount:     r.RefundAmount,
			RefundType:       refundType,
			Reason:           reason,
			ReturnDate:       r.ReturnDate,
			QuantityReturned: r.QuantityReturned,
			ExchangeProduct:  r.ExchangeProductName,
		})
	}

	s.LogInfo(ctx, "Customer refunds report generated",
		slog.Int("count", len(lines)),
		slog.String("total_refunded", total.String()))
	return &domain.CustomerRefundsReport{
		Refunds:       lines,
		TotalRefunded: total,
		Count:         len(lines),
	}, nil
}

// GetSupplierPayments returns money paid to suppliers. The payment details
// live in a free-form notes blob on each purchase transaction; a note that
// fails to parse contributes nothing instead of failing the report.
func (s *cashflowService) GetSupplierPayments(ctx context.Context) (*domain.SupplierPaymentsReport, error) {
	transactions, err := s.cashflowRepo.ListPurchaseTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve purchase transactions")
		return nil, fmt.Errorf("error fetching supplier payments: %w", err)
	}

	lines := make([]domain.SupplierPaymentLine, 0, len(transactions))
	total := decimal.Zero

	for _, tx := range transactions {
		if tx.Notes == nil {
			continue
		}
		note, ok := domain.ParsePurchaseNote(*tx.Notes)
		if !ok {
			s.LogDebug(ctx, "Skipping purchase transaction with unparseable notes",
				slog.Int64("transaction_id", tx.TransactionID))
			continue
		}
		if !note.PaymentAmount.IsPositive() {
			continue
		}

		productNames := make([]string, 0, len(note.Products))
		for _, p := range note.Products {
			productNames = append(productNames, p.Name)
		}
		if len(productNames) == 0 {
			product, err := s.cashflowRepo.FindProductByID(ctx, tx.ProductID)
			if err != nil {
				s.LogError(ctx, err, "Failed to look up product for purchase transaction",
					slog.Int64("product_id", tx.ProductID))
				return nil, fmt.Errorf("error fetching supplier payments: %w", err)
			}
			if product != nil {
				productNames = append(productNames, product.ProductName)
			}
		}

		total = total.Add(note.PaymentAmount)
		lines = append(lines, domain.SupplierPaymentLine{
			TransactionID:        tx.TransactionID,
			SupplierID:           tx.SupplierID,
			SupplierName:         tx.SupplierName,
			BusinessName:         tx.SupplierBusinessName,
			Products:             productNames,
			Quantity:             tx.Quantity,
			AmountPaid:           note.PaymentAmount,
			PaymentMethod:        note.PaymentMethod,
			PaymentStatus:        note.PaymentStatus,
			TransactionDate:      tx.TransactionDate,
			ReferenceNumber:      tx.ReferenceNumber,
			TransactionReference: note.TransactionReference,
		})
	}

	s.LogInfo(ctx, "Supplier payments report generated",
		slog.Int("count", len(lines)),
		slog.String("total_paid", total.String()))
	return &domain.SupplierPaymentsReport{
		Payments:  lines,
		TotalPaid: total,
		Count:     len(lines),
	}, nil
}

// GetSupplierReceipts returns money received back from suppliers for
// completed damaged-goods returns. This is the one report whose failures are
// swallowed: deployments without the supplier-returns subsystem get an empty
// report with a zero total instead of an error.
func (s *cashflowService) GetSupplierReceipts(ctx context.Context) (*domain.SupplierReceiptsReport, error) {
	report, err := s.supplierReceipts(ctx)
	if err != nil {
		s.LogWarn(ctx, "Supplier returns unavailable, returning empty supplier receipts",
			slog.String("error", err.Error()))
		return &domain.SupplierReceiptsReport{
			Receipts:      []domain.SupplierReceiptLine{},
			TotalReceived: decimal.Zero,
			Count:         0,
		}, nil
	}
	return report, nil
}

func (s *cashflowService) supplierReceipts(ctx context.Context) (*domain.SupplierReceiptsReport, error) {
	receipts, err := s.cashflowRepo.ListCompletedSupplierReturns(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching supplier receipts: %w", err)
	}

	lines := make([]domain.SupplierReceiptLine, 0, len(receipts))
	total := decimal.Zero

	for _, r := range receipts {
		productName, err := s.resolveDamagedProductName(ctx, r.DamagedProductID)
		if err != nil {
			return nil, fmt.Errorf("error fetching supplier receipts: %w", err)
		}

		total = total.Add(r.RefundAmount)
		lines = append(lines, domain.SupplierReceiptLine{
			ReturnID:         r.ReturnID,
			ReturnNumber:     r.ReturnNumber,
			SupplierID:       r.SupplierID,
			SupplierName:     r.SupplierName,
			BusinessName:     r.SupplierBusinessName,
			ProductName:      productName,
			RefundAmount:     r.RefundAmount,
			ReturnType:       r.ReturnType,
			ReturnDate:       r.ReturnDate,
			QuantityReturned: r.QuantityReturned,
			Status:           string(r.Status),
		})
	}

	s.LogInfo(ctx, "Supplier receipts report generated",
		slog.Int("count", len(lines)),
		slog.String("total_received", total.String()))
	return &domain.SupplierReceiptsReport{
		Receipts:      lines,
		TotalReceived: total,
		Count:         len(lines),
	}, nil
}

// resolveDamagedProductName follows SupplierReturn -> DamagedProduct ->
// Product; a missing link at either hop yields the placeholder name.
func (s *cashflowService) resolveDamagedProductName(ctx context.Context, damagedProductID *int64) (string, error) {
	if damagedProductID == nil {
		return domain.UnknownProductName, nil
	}
	damaged, err := s.cashflowRepo.FindDamagedProductByID(ctx, *damagedProductID)
	if err != nil {
		return "", err
	}
	if damaged == nil {
		return domain.UnknownProductName, nil
	}
	product, err := s.cashflowRepo.FindProductByID(ctx, damaged.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return domain.UnknownProductName, nil
	}
	return product.ProductName, nil
}

// GetCashflowSummary composes the four base reports into the overall cash
// position. Each base operation runs exactly once; its result is reused for
// both the totals and the detailed breakdown.
func (s *cashflowService) GetCashflowSummary(ctx context.Context) (*domain.CashflowSummary, error) {
	customerPayments, err := s.GetCustomerPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("error generating cash flow summary: %w", err)
	}
	supplierReceipts, err := s.GetSupplierReceipts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error generating cash flow summary: %w", err)
	}
	customerRefunds, err := s.GetCustomerRefunds(ctx)
	if err != nil {
		return nil, fmt.Errorf("error generating cash flow summary: %w", err)
	}
	supplierPayments, err := s.GetSupplierPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("error generating cash flow summary: %w", err)
	}

	totalInflow := customerPayments.TotalReceived.Add(supplierReceipts.TotalReceived)
	totalOutflow := customerRefunds.TotalRefunded.Add(supplierPayments.TotalPaid)
	net := totalInflow.Sub(totalOutflow)

	s.LogInfo(ctx, "Cash flow summary generated",
		slog.String("total_inflow", totalInflow.String()),
		slog.String("total_outflow", totalOutflow.String()),
		slog.String("net_cashflow", net.String()))
	return &domain.CashflowSummary{
		CustomerPayments: *customerPayments,
		CustomerRefunds:  *customerRefunds,
		SupplierPayments: *supplierPayments,
		SupplierReceipts: *supplierReceipts,
		TotalInflow:      totalInflow,
		TotalOutflow:     totalOutflow,
		NetCashflow:      net,
		CashPosition:     domain.CashPositionOf(net),
	}, nil
}

// ListCustomerAdjustmentRefunds returns exchange adjustments where we pay the
// customer, in the narrower shape served by the dedicated customer-refunds
// endpoint. Unlike GetCustomerRefunds it applies no status filter.
func (s *cashflowService) ListCustomerAdjustmentRefunds(ctx context.Context) (*domain.AdjustmentRefundsReport, error) {
	exchanges, err := s.cashflowRepo.ListExchangeReturns(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve exchange returns for adjustment refunds")
		return nil, fmt.Errorf("error fetching customer adjustment refunds: %w", err)
	}

	lines := make([]domain.AdjustmentRefundLine, 0, len(exchanges))
	total := decimal.Zero

	for _, r := range exchanges {
		if r.CashDirection() != domain.CashOutflow {
			continue
		}
		total = total.Add(r.RefundAmount)
		lines = append(lines, domain.AdjustmentRefundLine{
			AdjustmentID:   r.ReturnID,
			ReturnNumber:   r.ReturnNumber,
			CustomerID:     r.CustomerID,
			CustomerName:   r.CustomerName,
			BusinessName:   r.CustomerBusinessName,
			OldProduct:     r.ProductName,
			NewProduct:     r.ExchangeProductName,
			AmountPaid:     r.RefundAmount,
			AdjustmentDate: r.ReturnDate,
			Status:         string(r.Status),
			Reason:         domain.AdjustmentRefundReason,
		})
	}

	s.LogInfo(ctx, "Customer adjustment refunds listed",
		slog.Int("count", len(lines)),
		slog.String("total_paid", total.String()))
	return &domain.AdjustmentRefundsReport{
		Refunds:   lines,
		TotalPaid: total,
		Count:     len(lines),
	}, nil
}
