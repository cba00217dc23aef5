package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"weddingsite/internal/models"
)

type ContactRepositoryImpl struct {
	DB *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepositoryImpl {
	return &ContactRepositoryImpl{DB: db}
}

func (r *ContactRepositoryImpl) List(ctx context.Context) ([]models.Contact, error) {
	query := `
		SELECT id, side, relationship, name, phone, bank_name, account_number, kakao_pay_url, created_at
		FROM contacts
		ORDER BY (side = 'groom') DESC, id
	`

	contacts := []models.Contact{}
	if err := r.DB.SelectContext(ctx, &contacts, query); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}

func (r *ContactRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	var contact models.Contact

	query := `
		SELECT id, side, relationship, name, phone, bank_name, account_number, kakao_pay_url, created_at
		FROM contacts WHERE id = $1
	`

	err := r.DB.GetContext(ctx, &contact, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("contact %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}

	return &contact, nil
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (side, relationship, name, phone, bank_name, account_number, kakao_pay_url)
		VALUES (:side, :relationship, :name, :phone, :bank_name, :account_number, :kakao_pay_url)
		RETURNING id, created_at
	`

	rows, err := r.DB.NamedQueryContext(ctx, query, contact)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("insert contact: %w", err)
		}
		return fmt.Errorf("insert contact: no id returned")
	}

	if err := rows.Scan(&contact.ID, &contact.CreatedAt); err != nil {
		return fmt.Errorf("scan inserted contact: %w", err)
	}

	return nil
}

func (r *ContactRepositoryImpl) Update(ctx context.Context, contact *models.Contact) error {
	query := `
		UPDATE contacts SET
			side = :side,
			relationship = :relationship,
			name = :name,
			phone = :phone,
			bank_name = :bank_name,
			account_number = :account_number,
			kakao_pay_url = :kakao_pay_url
		WHERE id = :id
	`

	result, err := r.DB.NamedExecContext(ctx, query, contact)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("contact %d: %w", contact.ID, ErrNotFound)
	}

	return nil
}

func (r *ContactRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("contact %d: %w", id, ErrNotFound)
	}

	return nil
}
