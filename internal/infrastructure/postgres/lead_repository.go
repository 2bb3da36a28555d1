package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación de LeadRepository (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Create persiste un nuevo lead.
func (r *LeadRepo) Create(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, customer_id, title, description, status, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.CustomerID, lead.Title, lead.Description, lead.Status, lead.Value,
		lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por ID. Devuelve nil, nil si no existe.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	query := `
		SELECT id, customer_id, title, description, status, value, created_at, updated_at
		FROM leads WHERE id = $1`
	var l entity.Lead
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.CustomerID, &l.Title, &l.Description, &l.Status, &l.Value, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// List lista leads del cliente con paginación y filtro opcional de status.
func (r *LeadRepo) List(filter repository.LeadFilter) ([]*entity.Lead, error) {
	query := `
		SELECT id, customer_id, title, description, status, value, created_at, updated_at
		FROM leads WHERE customer_id = $1`
	args := []any{filter.CustomerID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.CustomerID, &l.Title, &l.Description, &l.Status, &l.Value, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Count cuenta leads con el mismo filtro que List.
func (r *LeadRepo) Count(filter repository.LeadFilter) (int, error) {
	query := `SELECT COUNT(*) FROM leads WHERE customer_id = $1`
	args := []any{filter.CustomerID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return total, nil
}

// ListByCustomer lista todos los leads del cliente sin paginar
// (detalle GET /customers/:id).
func (r *LeadRepo) ListByCustomer(customerID string) ([]*entity.Lead, error) {
	query := `
		SELECT id, customer_id, title, description, status, value, created_at, updated_at
		FROM leads WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list leads by customer: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.CustomerID, &l.Title, &l.Description, &l.Status, &l.Value, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza un lead. customer_id no cambia nunca.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	query := `
		UPDATE leads SET title = $2, description = $3, status = $4, value = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.Title, lead.Description, lead.Status, lead.Value, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete elimina un lead por ID.
func (r *LeadRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

// DeleteByCustomer borra todos los leads del cliente (cascade, dentro de tx).
func (r *LeadRepo) DeleteByCustomer(customerID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM leads WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete leads by customer: %w", err)
	}
	return nil
}
