package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación de EquipmentRepository (usable con pool o tx).
// equipment no lleva company_id: el tenant se resuelve con JOIN al
// cliente dueño, así que un equipo de otro tenant devuelve cero filas.
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

// Create persiste un equipo y asigna su ID. El caller ya validó que el
// cliente dueño pertenece al tenant.
func (r *EquipmentRepo) Create(eq *entity.Equipment) error {
	query := `
		INSERT INTO equipment (customer_id, make, model, serial_number, type, install_date, warranty_expires, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		eq.CustomerID, eq.Make, eq.Model, eq.SerialNumber, eq.Type,
		eq.InstallDate, eq.WarrantyExpires, eq.Notes, eq.CreatedAt,
	).Scan(&eq.ID)
	if err != nil {
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID dentro del tenant (vía su cliente).
func (r *EquipmentRepo) GetByID(id int64, companyID string) (*entity.Equipment, error) {
	query := `
		SELECT e.id, e.customer_id, e.make, e.model, e.serial_number, e.type, e.install_date, e.warranty_expires, e.notes, e.created_at
		FROM equipment e
		JOIN customers c ON c.id = e.customer_id
		WHERE e.id = $1 AND c.company_id = $2`
	var eq entity.Equipment
	err := r.q.QueryRow(context.Background(), query, id, companyID).Scan(
		&eq.ID, &eq.CustomerID, &eq.Make, &eq.Model, &eq.SerialNumber, &eq.Type,
		&eq.InstallDate, &eq.WarrantyExpires, &eq.Notes, &eq.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return &eq, nil
}

// ListByCustomer lista los equipos de un cliente del tenant.
func (r *EquipmentRepo) ListByCustomer(customerID int64, companyID string) ([]*entity.Equipment, error) {
	query := `
		SELECT e.id, e.customer_id, e.make, e.model, e.serial_number, e.type, e.install_date, e.warranty_expires, e.notes, e.created_at
		FROM equipment e
		JOIN customers c ON c.id = e.customer_id
		WHERE e.customer_id = $1 AND c.company_id = $2
		ORDER BY e.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, customerID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipment
	for rows.Next() {
		var eq entity.Equipment
		if err := rows.Scan(&eq.ID, &eq.CustomerID, &eq.Make, &eq.Model, &eq.SerialNumber, &eq.Type,
			&eq.InstallDate, &eq.WarrantyExpires, &eq.Notes, &eq.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, &eq)
	}
	return list, rows.Err()
}

// Update actualiza un equipo dentro del tenant.
func (r *EquipmentRepo) Update(eq *entity.Equipment, companyID string) error {
	query := `
		UPDATE equipment e SET make = $3, model = $4, serial_number = $5, type = $6, install_date = $7, warranty_expires = $8, notes = $9
		FROM customers c
		WHERE e.id = $1 AND c.id = e.customer_id AND c.company_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		eq.ID, companyID, eq.Make, eq.Model, eq.SerialNumber, eq.Type,
		eq.InstallDate, eq.WarrantyExpires, eq.Notes,
	)
	if err != nil {
		return fmt.Errorf("update equipment: %w", err)
	}
	return nil
}

// Delete elimina un equipo dentro del tenant.
func (r *EquipmentRepo) Delete(id int64, companyID string) error {
	query := `
		DELETE FROM equipment e
		USING customers c
		WHERE e.id = $1 AND c.id = e.customer_id AND c.company_id = $2`
	_, err := r.q.Exec(context.Background(), query, id, companyID)
	if err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	return nil
}
