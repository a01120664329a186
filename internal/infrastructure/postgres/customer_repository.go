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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, active, created_by, created_on, modified_by, modified_on,
	first_name, last_name, phone_number, email_address, gender, date_of_birth,
	anniversary_date, address, company_name, company_address, gst_number,
	tax_state_code, amount_due, customer_group_id`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Active, &c.CreatedBy, &c.CreatedOn, &c.ModifiedBy, &c.ModifiedOn,
		&c.FirstName, &c.LastName, &c.PhoneNumber, &c.EmailAddress, &c.Gender,
		&c.DateOfBirth, &c.AnniversaryDate, &c.Address, &c.CompanyName,
		&c.CompanyAddress, &c.GSTNumber, &c.TaxStateCode, &c.AmountDue,
		&c.CustomerGroupID,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List devuelve todos los clientes.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Insert persiste un nuevo cliente. El id sale de la secuencia de la tabla y
// queda asignado en el argumento.
func (r *CustomerRepo) Insert(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, active, created_by, created_on, modified_by, modified_on,
			first_name, last_name, phone_number, email_address, gender, date_of_birth,
			anniversary_date, address, company_name, company_address, gst_number,
			tax_state_code, amount_due, customer_group_id)
		VALUES (nextval('customers_id_seq')::text, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Active, c.CreatedBy, c.CreatedOn, c.ModifiedBy, c.ModifiedOn,
		c.FirstName, c.LastName, c.PhoneNumber, c.EmailAddress, c.Gender,
		c.DateOfBirth, c.AnniversaryDate, c.Address, c.CompanyName,
		c.CompanyAddress, c.GSTNumber, c.TaxStateCode, c.AmountDue,
		c.CustomerGroupID,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update actualiza un cliente existente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET active = $2, modified_by = $3, modified_on = $4, first_name = $5, last_name = $6,
			phone_number = $7, email_address = $8, gender = $9, date_of_birth = $10,
			anniversary_date = $11, address = $12, company_name = $13, company_address = $14,
			gst_number = $15, tax_state_code = $16, amount_due = $17, customer_group_id = $18
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Active, c.ModifiedBy, c.ModifiedOn, c.FirstName, c.LastName,
		c.PhoneNumber, c.EmailAddress, c.Gender, c.DateOfBirth,
		c.AnniversaryDate, c.Address, c.CompanyName, c.CompanyAddress,
		c.GSTNumber, c.TaxStateCode, c.AmountDue, c.CustomerGroupID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
