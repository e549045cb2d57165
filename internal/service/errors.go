package service

import "fmt"

// ValidationError indica input invalido del cliente: el largo del vector
// de respuestas no coincide con la cantidad de preguntas.
type ValidationError struct {
	Expected int
	Got      int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("answer vector has %d values, expected %d", e.Got, e.Expected)
}

// DataIntegrityError indica que el resultado quedaria incompleto.
// Es un bug de curacion o de programa, nunca un error de usuario:
// se falla fuerte en vez de degradar en silencio.
type DataIntegrityError struct {
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return "data integrity violation: " + e.Reason
}
