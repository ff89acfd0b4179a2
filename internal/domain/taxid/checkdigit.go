package taxid

import "fmt"

// pesos del algoritmo módulo 11 para el dígito de verificación del NIT
// (Orden Administrativa 4 de 1989, DIAN). Se aplican a los 9 primeros
// dígitos, de izquierda a derecha.
var mod11Weights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// Mod11CheckDigit es una estrategia CheckDigitFunc de ejemplo: valida el
// dígito de verificación módulo 11 estilo NIT colombiano sobre un
// identificador de 10 dígitos (9 base + 1 de verificación). Se inyecta vía
// Config.CheckDigit cuando la jurisdicción lo requiere; no es el
// comportamiento por defecto.
func Mod11CheckDigit(digits string) error {
	if len(digits) != 10 {
		return fmt.Errorf("se requieren 10 dígitos (9 base + dígito de verificación), se recibieron %d", len(digits))
	}
	var sum int
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * mod11Weights[i]
	}
	remainder := sum % 11
	var expected byte
	if remainder == 0 || remainder == 1 {
		expected = byte('0' + remainder)
	} else {
		expected = byte('0' + (11 - remainder))
	}
	if digits[9] != expected {
		return fmt.Errorf("dígito de verificación inválido: esperado %c, recibido %c", expected, digits[9])
	}
	return nil
}
