package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// TaxProfileRepository define el puerto de persistencia para TaxProfile.
// GetByCustomer devuelve nil (sin error) si el cliente no tiene perfil:
// la ausencia es un estado válido que el scorer penaliza, no un fallo.
type TaxProfileRepository interface {
	Upsert(profile *entity.TaxProfile) error
	GetByCustomer(customerID string) (*entity.TaxProfile, error)
}
