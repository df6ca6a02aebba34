// Package codegen genera identificadores de aeronave.
package codegen

import (
	"strings"

	"github.com/google/uuid"
)

// CodeLength longitud del código de aeronave.
const CodeLength = 8

// AircraftCode código de 8 caracteres hexadecimales en mayúsculas derivado de un UUID v4.
func AircraftCode() string {
	return strings.ToUpper(uuid.NewString()[:CodeLength])
}
