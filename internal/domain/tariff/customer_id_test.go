package tariff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/electricity-billing/internal/domain/tariff"
)

func TestCustomerIDGenerator_Next(t *testing.T) {
	g := tariff.NewCustomerIDGenerator("")
	for i := 0; i < 200; i++ {
		id := g.Next()
		assert.True(t, tariff.IsCustomerID(tariff.DefaultCustomerIDPrefix, id), "id %q", id)
	}
}

func TestCustomerIDGenerator_FuenteDeterminista(t *testing.T) {
	var gotN int
	g := &tariff.CustomerIDGenerator{Prefix: "MTR", IntN: func(n int) int { gotN = n; return 42 }}

	assert.Equal(t, "MTR42", g.Next())
	assert.Equal(t, 10000, gotN, "el número aleatorio debe estar en [0, 10000)")
}

func TestIsCustomerID(t *testing.T) {
	assert.True(t, tariff.IsCustomerID("CUST", "CUST0"))
	assert.True(t, tariff.IsCustomerID("CUST", "CUST9999"))
	assert.False(t, tariff.IsCustomerID("CUST", "CUST"))
	assert.False(t, tariff.IsCustomerID("CUST", "CUST12a"))
	assert.False(t, tariff.IsCustomerID("CUST", "MTR12"))
}
