package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fieldpro-api/internal/domain"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, company_id, customer_id, job_id, invoice_number, amount, labor_cost, material_cost,
		tax_amount, status, due_date, paid_date, notes, created_at, updated_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura y asigna su ID. Retorna domain.ErrDuplicate
// si invoice_number choca con el índice único, para que el caso de uso
// reintente con un número fresco.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (company_id, customer_id, job_id, invoice_number, amount, labor_cost, material_cost,
			tax_amount, status, due_date, paid_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		invoice.CompanyID, invoice.CustomerID, invoice.JobID, invoice.InvoiceNumber, invoice.Amount,
		invoice.LaborCost, invoice.MaterialCost, invoice.TaxAmount, invoice.Status,
		invoice.DueDate, invoice.PaidDate, invoice.Notes, invoice.CreatedAt, invoice.UpdatedAt,
	).Scan(&invoice.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID dentro del tenant.
func (r *InvoiceRepo) GetByID(id int64, companyID string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND company_id = $2`
	row := r.q.QueryRow(context.Background(), query, id, companyID)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByCompany lista facturas del tenant, más recientes primero.
// OnlyOverdue aplica el predicado compartido de vencimiento.
func (r *InvoiceRepo) ListByCompany(companyID string, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE company_id = $1`
	args := []any{companyID}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.OnlyOverdue {
		args = append(args, overdueCutoff(f.Today))
		query += fmt.Sprintf(" AND %s$%d", overdueCondition, len(args))
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Update actualiza una factura dentro del tenant.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET customer_id = $3, job_id = $4, amount = $5, labor_cost = $6, material_cost = $7,
			tax_amount = $8, status = $9, due_date = $10, paid_date = $11, notes = $12, updated_at = $13
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.CustomerID, invoice.JobID, invoice.Amount,
		invoice.LaborCost, invoice.MaterialCost, invoice.TaxAmount, invoice.Status,
		invoice.DueDate, invoice.PaidDate, invoice.Notes, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina una factura dentro del tenant.
func (r *InvoiceRepo) Delete(id int64, companyID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM invoices WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var i entity.Invoice
	err := row.Scan(
		&i.ID, &i.CompanyID, &i.CustomerID, &i.JobID, &i.InvoiceNumber, &i.Amount,
		&i.LaborCost, &i.MaterialCost, &i.TaxAmount, &i.Status,
		&i.DueDate, &i.PaidDate, &i.Notes, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
