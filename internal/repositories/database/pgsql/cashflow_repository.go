package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dchu15/store_management_app/internal/core/domain"
	portsrepo "github.com/dchu15/store_management_app/internal/core/ports/repositories"
	"github.com/dchu15/store_management_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashflowRepository struct {
	BaseRepository
}

func newPgxCashflowRepository(db *pgxpool.Pool) portsrepo.CashflowRepository {
	return &PgxCashflowRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxCashflowRepository implements portsrepo.CashflowRepository
var _ portsrepo.CashflowRepository = (*PgxCashflowRepository)(nil)

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:            m.PaymentID,
		InvoiceID:            m.InvoiceID,
		CustomerID:           m.CustomerID,
		AmountPaid:           m.AmountPaid,
		PaymentMethod:        m.PaymentMethod,
		PaymentStatus:        domain.PaymentStatus(m.PaymentStatus),
		PaymentDate:          m.PaymentDate,
		TransactionReference: m.TransactionReference,
	}
}

func toDomainProductReturn(m models.ProductReturn) domain.ProductReturn {
	return domain.ProductReturn{
		ReturnID:                m.ReturnID,
		ReturnNumber:            m.ReturnNumber,
		CustomerID:              m.CustomerID,
		ProductID:               m.ProductID,
		OriginalInvoiceID:       m.OriginalInvoiceID,
		ReturnType:              domain.ReturnType(m.ReturnType),
		RefundAmount:            m.RefundAmount,
		ExchangePriceDifference: m.ExchangePriceDifference,
		Status:                  domain.ReturnStatus(m.Status),
		Reason:                  m.Reason,
		QuantityReturned:        m.QuantityReturned,
		ExchangeProductID:       m.ExchangeProductID,
		ReturnDate:              m.ReturnDate,
	}
}

func toDomainStockTransaction(m models.StockTransaction) domain.StockTransaction {
	d := domain.StockTransaction{
		TransactionID:   m.TransactionID,
		TransactionType: domain.TransactionType(m.TransactionType),
		SupplierID:      m.SupplierID,
		ProductID:       m.ProductID,
		Quantity:        m.Quantity,
		TransactionDate: m.TransactionDate,
		ReferenceNumber: m.ReferenceNumber,
	}
	if m.Notes.Valid {
		notes := m.Notes.String
		d.Notes = &notes
	}
	return d
}

func toDomainSupplierReturn(m models.SupplierReturn) domain.SupplierReturn {
	return domain.SupplierReturn{
		ReturnID:         m.ReturnID,
		ReturnNumber:     m.ReturnNumber,
		SupplierID:       m.SupplierID,
		DamagedProductID: m.DamagedProductID,
		RefundAmount:     m.RefundAmount,
		ReturnType:       m.ReturnType,
		Status:           domain.ReturnStatus(m.Status),
		QuantityReturned: m.QuantityReturned,
		ReturnDate:       m.ReturnDate,
	}
}

func (r *PgxCashflowRepository) ListSettledPayments(ctx context.Context) ([]domain.SettledPayment, error) {
	query := `
		SELECT p.id, p.invoice_id, p.customer_id, p.amount_paid, p.payment_method,
		       p.payment_status, p.payment_date, p.transaction_reference,
		       c.contact_person, c.business_name
		FROM payments p
		JOIN customers c ON c.id = p.customer_id
		WHERE p.payment_status IN ('Successful', 'Partially Paid')
		  AND p.amount_paid > 0
		ORDER BY p.payment_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query settled payments: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.SettledPayment, 0)
	for rows.Next() {
		var m models.Payment
		var contactPerson, businessName string
		if err := rows.Scan(
			&m.PaymentID,
			&m.InvoiceID,
			&m.CustomerID,
			&m.AmountPaid,
			&m.PaymentMethod,
			&m.PaymentStatus,
			&m.PaymentDate,
			&m.TransactionReference,
			&contactPerson,
			&businessName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settled payment row: %w", err)
		}
		payments = append(payments, domain.SettledPayment{
			Payment:              toDomainPayment(m),
			CustomerName:         contactPerson,
			CustomerBusinessName: businessName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settled payment rows: %w", err)
	}
	return payments, nil
}

// returnDetailQuery is shared by the two product-return listings; only the
// WHERE clause differs. The exchange-target product join stays LEFT so rows
// with a dangling or absent exchange product still surface.
const returnDetailQuery = `
	SELECT pr.id, pr.return_number, pr.customer_id, pr.product_id, pr.original_invoice_id,
	       pr.return_type, pr.refund_amount, pr.exchange_price_difference, pr.status,
	       pr.reason, pr.quantity_returned, pr.exchange_product_id, pr.return_date,
	       c.contact_person, c.business_name,
	       pd.product_name, ep.product_name
	FROM product_returns pr
	JOIN customers c ON c.id = pr.customer_id
	JOIN products pd ON pd.id = pr.product_id
	LEFT JOIN products ep ON ep.id = pr.exchange_product_id
	WHERE %s
	ORDER BY pr.return_date DESC;
`

func (r *PgxCashflowRepository) listReturnDetails(ctx context.Context, where string, args ...any) ([]domain.ReturnDetail, error) {
	rows, err := r.Pool.Query(ctx, fmt.Sprintf(returnDetailQuery, where), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query product returns: %w", err)
	}
	defer rows.Close()

	details := make([]domain.ReturnDetail, 0)
	for rows.Next() {
		var m models.ProductReturn
		var contactPerson, businessName, productName string
		var exchangeProductName *string
		if err := rows.Scan(
			&m.ReturnID,
			&m.ReturnNumber,
			&m.CustomerID,
			&m.ProductID,
			&m.OriginalInvoiceID,
			&m.ReturnType,
			&m.RefundAmount,
			&m.ExchangePriceDifference,
			&m.Status,
			&m.Reason,
			&m.QuantityReturned,
			&m.ExchangeProductID,
			&m.ReturnDate,
			&contactPerson,
			&businessName,
			&productName,
			&exchangeProductName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product return row: %w", err)
		}
		details = append(details, domain.ReturnDetail{
			ProductReturn:        toDomainProductReturn(m),
			CustomerName:         contactPerson,
			CustomerBusinessName: businessName,
			ProductName:          productName,
			ExchangeProductName:  exchangeProductName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product return rows: %w", err)
	}
	return details, nil
}

func (r *PgxCashflowRepository) ListExchangeReturns(ctx context.Context) ([]domain.ReturnDetail, error) {
	return r.listReturnDetails(ctx, `pr.return_type = $1`, string(domain.ReturnTypeExchange))
}

func (r *PgxCashflowRepository) ListActiveReturns(ctx context.Context) ([]domain.ReturnDetail, error) {
	return r.listReturnDetails(ctx, `pr.status IN ($1, $2, $3)`,
		string(domain.ReturnPending), string(domain.ReturnProcessed), string(domain.ReturnCompleted))
}

func (r *PgxCashflowRepository) ListPurchaseTransactions(ctx context.Context) ([]domain.PurchaseTransaction, error) {
	query := `
		SELECT st.id, st.transaction_type, st.supplier_id, st.product_id, st.quantity,
		       st.transaction_date, st.reference_number, st.notes,
		       s.contact_person, s.name
		FROM stock_transactions st
		JOIN suppliers s ON s.id = st.supplier_id
		WHERE st.transaction_type = $1
		ORDER BY st.transaction_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.TransactionPurchase))
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.PurchaseTransaction, 0)
	for rows.Next() {
		var m models.StockTransaction
		var contactPerson, supplierName string
		if err := rows.Scan(
			&m.TransactionID,
			&m.TransactionType,
			&m.SupplierID,
			&m.ProductID,
			&m.Quantity,
			&m.TransactionDate,
			&m.ReferenceNumber,
			&m.Notes,
			&contactPerson,
			&supplierName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase transaction row: %w", err)
		}
		transactions = append(transactions, domain.PurchaseTransaction{
			StockTransaction:     toDomainStockTransaction(m),
			SupplierName:         contactPerson,
			SupplierBusinessName: supplierName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase transaction rows: %w", err)
	}
	return transactions, nil
}

func (r *PgxCashflowRepository) ListCompletedSupplierReturns(ctx context.Context) ([]domain.SupplierReturnDetail, error) {
	query := `
		SELECT sr.id, sr.return_number, sr.supplier_id, sr.damaged_product_id,
		       sr.refund_amount, sr.return_type, sr.status, sr.quantity_returned, sr.return_date,
		       s.contact_person, s.name
		FROM supplier_returns sr
		JOIN suppliers s ON s.id = sr.supplier_id
		WHERE sr.refund_amount > 0
		  AND sr.status = $1
		ORDER BY sr.return_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.ReturnCompleted))
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier returns: %w", err)
	}
	defer rows.Close()

	returns := make([]domain.SupplierReturnDetail, 0)
	for rows.Next() {
		var m models.SupplierReturn
		var contactPerson, supplierName string
		if err := rows.Scan(
			&m.ReturnID,
			&m.ReturnNumber,
			&m.SupplierID,
			&m.DamagedProductID,
			&m.RefundAmount,
			&m.ReturnType,
			&m.Status,
			&m.QuantityReturned,
			&m.ReturnDate,
			&contactPerson,
			&supplierName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan supplier return row: %w", err)
		}
		returns = append(returns, domain.SupplierReturnDetail{
			SupplierReturn:       toDomainSupplierReturn(m),
			SupplierName:         contactPerson,
			SupplierBusinessName: supplierName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier return rows: %w", err)
	}
	return returns, nil
}

func (r *PgxCashflowRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `
		SELECT id, product_name, sku, selling_price, created_at
		FROM products
		WHERE id = $1;
	`
	var m models.Product
	err := r.Pool.QueryRow(ctx, query, productID).Scan(
		&m.ProductID,
		&m.ProductName,
		&m.SKU,
		&m.SellingPrice,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by ID %d: %w", productID, err)
	}
	return &domain.Product{
		ProductID:    m.ProductID,
		ProductName:  m.ProductName,
		SKU:          m.SKU,
		SellingPrice: m.SellingPrice,
		CreatedAt:    m.CreatedAt,
	}, nil
}

func (r *PgxCashflowRepository) FindDamagedProductByID(ctx context.Context, damagedProductID int64) (*domain.DamagedProduct, error) {
	query := `
		SELECT id, product_id, quantity, reported_at
		FROM damaged_products
		WHERE id = $1;
	`
	var m models.DamagedProduct
	err := r.Pool.QueryRow(ctx, query, damagedProductID).Scan(
		&m.DamagedProductID,
		&m.ProductID,
		&m.Quantity,
		&m.ReportedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find damaged product by ID %d: %w", damagedProductID, err)
	}
	return &domain.DamagedProduct{
		DamagedProductID: m.DamagedProductID,
		ProductID:        m.ProductID,
		Quantity:         m.Quantity,
		ReportedAt:       m.ReportedAt,
	}, nil
}
