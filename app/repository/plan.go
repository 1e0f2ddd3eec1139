package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/recargaexpress/ms-go-recharges/app/entity"
)

var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrPlanAlreadyExists = errors.New("plan already exists")
)

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, plan *entity.Plan) error {
	options, err := encodePaymentOptions(plan.PaymentOptions)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO plans (id, name, description, payment_options, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		plan.ID,
		plan.Name,
		plan.Description,
		options,
		plan.CreatedAt,
		plan.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrPlanAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PlanRepository) Update(ctx context.Context, plan *entity.Plan) error {
	options, err := encodePaymentOptions(plan.PaymentOptions)
	if err != nil {
		return err
	}

	query := `
		UPDATE plans
		SET name = ?, description = ?, payment_options = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		plan.Name,
		plan.Description,
		options,
		plan.UpdatedAt,
		plan.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPlanNotFound
	}

	return nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id string) (*entity.Plan, error) {
	query := `
		SELECT id, name, description, payment_options, created_at, updated_at
		FROM plans
		WHERE id = ?
	`

	item := &entity.Plan{}
	if err := scanPlan(r.db.QueryRowContext(ctx, query, id), item); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *PlanRepository) List(ctx context.Context) ([]*entity.Plan, error) {
	query := `
		SELECT id, name, description, payment_options, created_at, updated_at
		FROM plans
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Plan, 0)
	for rows.Next() {
		item := &entity.Plan{}
		if err := scanPlan(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPlanNotFound
	}

	return nil
}

// RepairPaymentOptions resets rows whose payment_options column holds NULL,
// an empty string or the literal "undefined" back to an empty list. Returns
// the ids of the repaired plans.
func (r *PlanRepository) RepairPaymentOptions(ctx context.Context) ([]string, error) {
	selectQuery := `
		SELECT id
		FROM plans
		WHERE payment_options IS NULL OR payment_options = '' OR payment_options = 'undefined'
	`

	rows, err := r.db.QueryContext(ctx, selectQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return ids, nil
	}

	updateQuery := `
		UPDATE plans
		SET payment_options = '[]'
		WHERE payment_options IS NULL OR payment_options = '' OR payment_options = 'undefined'
	`
	if _, err := r.db.ExecContext(ctx, updateQuery); err != nil {
		return nil, err
	}

	return ids, nil
}

func scanPlan(scanner rowScanner, item *entity.Plan) error {
	var description sql.NullString
	var options sql.NullString

	err := scanner.Scan(
		&item.ID,
		&item.Name,
		&description,
		&options,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if description.Valid {
		item.Description = description.String
	} else {
		item.Description = ""
	}
	item.PaymentOptions = decodePaymentOptions(options.String)

	return nil
}
