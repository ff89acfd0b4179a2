package entity

import "time"

// TaxProfile es el perfil tributario de un cliente: las marcas y documentos
// que alimentan el puntaje de cumplimiento. Una fila por cliente.
type TaxProfile struct {
	ID                 string
	CustomerID         string
	TaxIDValidated     bool       // el identificador fue verificado contra el RUT
	TaxRegistered      bool       // responsable de impuestos
	RegistrationNumber string     // número de registro tributario, si aplica
	Exempt             bool       // exento de retención
	ExemptValidUntil   *time.Time // vigencia del certificado de exención
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
