package tariff

import (
	"math/rand"
	"strconv"
	"strings"
)

// DefaultCustomerIDPrefix prefijo de los IDs de cliente.
const DefaultCustomerIDPrefix = "CUST"

// customerIDRange cota superior (exclusiva) del número aleatorio del ID.
const customerIDRange = 10000

// CustomerIDGenerator genera IDs de cliente: prefijo + entero aleatorio en [0, 10000).
// No garantiza unicidad; las colisiones no se detectan.
type CustomerIDGenerator struct {
	Prefix string
	// IntN permite inyectar una fuente determinista en tests; nil usa math/rand.
	IntN func(n int) int
}

// NewCustomerIDGenerator construye el generador. Prefijo vacío usa DefaultCustomerIDPrefix.
func NewCustomerIDGenerator(prefix string) *CustomerIDGenerator {
	if prefix == "" {
		prefix = DefaultCustomerIDPrefix
	}
	return &CustomerIDGenerator{Prefix: prefix}
}

// Next devuelve un ID nuevo.
func (g *CustomerIDGenerator) Next() string {
	intN := g.IntN
	if intN == nil {
		intN = rand.Intn
	}
	return g.Prefix + strconv.Itoa(intN(customerIDRange))
}

// IsCustomerID verifica que id sea el prefijo seguido solo de dígitos.
func IsCustomerID(prefix, id string) bool {
	digits, ok := strings.CutPrefix(id, prefix)
	if !ok || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
