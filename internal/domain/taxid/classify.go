package taxid

// Kind clasifica el tipo de contribuyente sugerido por el identificador.
type Kind string

const (
	KindIndividual Kind = "individual"
	KindCompany    Kind = "company"
	KindUnknown    Kind = "unknown"
)

// Classify mapea el primer dígito del identificador limpio a una categoría.
//
// HEURÍSTICA, no autoritativa: sigue la convención de rangos de NIT (8 y 9
// inician personas jurídicas) pero no tiene respaldo normativo. Sirve para pre-llenar formularios; ninguna decisión de
// negocio debe depender de este valor.
func Classify(cleaned string) Kind {
	if cleaned == "" || cleaned[0] < '0' || cleaned[0] > '9' {
		return KindUnknown
	}
	switch cleaned[0] {
	case '8', '9':
		return KindCompany
	default:
		return KindIndividual
	}
}
