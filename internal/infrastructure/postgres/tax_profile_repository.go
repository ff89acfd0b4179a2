package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

var _ repository.TaxProfileRepository = (*TaxProfileRepo)(nil)

// TaxProfileRepo implementación pgx de TaxProfileRepository.
type TaxProfileRepo struct {
	q Querier
}

func NewTaxProfileRepository(q Querier) *TaxProfileRepo {
	return &TaxProfileRepo{q: q}
}

// Upsert inserta o actualiza el perfil del cliente. Hay a lo sumo una fila
// por cliente (unique sobre customer_id).
func (r *TaxProfileRepo) Upsert(profile *entity.TaxProfile) error {
	query := `
		INSERT INTO tax_profiles (
			id, customer_id, tax_id_validated, tax_registered, registration_number,
			exempt, exempt_valid_until, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (customer_id) DO UPDATE SET
			tax_id_validated    = EXCLUDED.tax_id_validated,
			tax_registered      = EXCLUDED.tax_registered,
			registration_number = EXCLUDED.registration_number,
			exempt              = EXCLUDED.exempt,
			exempt_valid_until  = EXCLUDED.exempt_valid_until,
			updated_at          = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.CustomerID, profile.TaxIDValidated, profile.TaxRegistered,
		profile.RegistrationNumber, profile.Exempt, profile.ExemptValidUntil,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert tax profile: %w", err)
	}
	return nil
}

// GetByCustomer devuelve el perfil del cliente, o nil si no existe.
func (r *TaxProfileRepo) GetByCustomer(customerID string) (*entity.TaxProfile, error) {
	query := `
		SELECT id, customer_id, tax_id_validated, tax_registered, registration_number,
		       exempt, exempt_valid_until, created_at, updated_at
		FROM tax_profiles WHERE customer_id = $1`
	var p entity.TaxProfile
	err := r.q.QueryRow(context.Background(), query, customerID).Scan(
		&p.ID, &p.CustomerID, &p.TaxIDValidated, &p.TaxRegistered, &p.RegistrationNumber,
		&p.Exempt, &p.ExemptValidUntil, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tax profile: %w", err)
	}
	return &p, nil
}
