package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/resto-admin-api/internal/domain"
	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
	"github.com/jhoicas/resto-admin-api/internal/domain/repository"
)

var _ repository.CustomerGroupRepository = (*CustomerGroupRepo)(nil)

const groupColumns = `id, active, created_by, created_on, modified_by, modified_on, name, status`

// CustomerGroupRepo implementación de CustomerGroupRepository (usable con pool o tx).
type CustomerGroupRepo struct {
	q Querier
}

// NewCustomerGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerGroupRepository(q Querier) *CustomerGroupRepo {
	return &CustomerGroupRepo{q: q}
}

func scanGroup(row pgx.Row) (*entity.CustomerGroup, error) {
	var g entity.CustomerGroup
	err := row.Scan(
		&g.ID, &g.Active, &g.CreatedBy, &g.CreatedOn, &g.ModifiedBy, &g.ModifiedOn,
		&g.CustomerGroupName, &g.CustomerGroupStatus,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// List devuelve todos los grupos.
func (r *CustomerGroupRepo) List(ctx context.Context) ([]*entity.CustomerGroup, error) {
	rows, err := r.q.Query(ctx, `SELECT `+groupColumns+` FROM customer_groups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list customer_groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomerGroup
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer_group: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// GetByID obtiene un grupo por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerGroupRepo) GetByID(ctx context.Context, id string) (*entity.CustomerGroup, error) {
	g, err := scanGroup(r.q.QueryRow(ctx, `SELECT `+groupColumns+` FROM customer_groups WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer_group: %w", err)
	}
	return g, nil
}

// Insert persiste un nuevo grupo. El id sale de la secuencia de la tabla y
// queda asignado en el argumento.
func (r *CustomerGroupRepo) Insert(ctx context.Context, g *entity.CustomerGroup) error {
	query := `
		INSERT INTO customer_groups (id, active, created_by, created_on, modified_by, modified_on, name, status)
		VALUES (nextval('customer_groups_id_seq')::text, $1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		g.Active, g.CreatedBy, g.CreatedOn, g.ModifiedBy, g.ModifiedOn,
		g.CustomerGroupName, g.CustomerGroupStatus,
	).Scan(&g.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer_group: %w", err)
	}
	return nil
}

// Update actualiza un grupo existente.
func (r *CustomerGroupRepo) Update(ctx context.Context, g *entity.CustomerGroup) error {
	query := `
		UPDATE customer_groups
		SET active = $2, modified_by = $3, modified_on = $4, name = $5, status = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		g.ID, g.Active, g.ModifiedBy, g.ModifiedOn, g.CustomerGroupName, g.CustomerGroupStatus,
	)
	if err != nil {
		return fmt.Errorf("update customer_group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un grupo por ID.
func (r *CustomerGroupRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customer_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer_group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
