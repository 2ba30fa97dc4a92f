package flatfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/electricity-billing/internal/domain"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
	"github.com/jhoicas/electricity-billing/internal/infrastructure/flatfile"
)

func sampleRecord(id, name string) *entity.BillingRecord {
	return &entity.BillingRecord{
		CustomerID:     id,
		CustomerName:   name,
		ConnectionType: entity.ConnectionResidential,
		BillingDate:    time.Date(2026, 10, 15, 0, 0, 0, 0, time.Local),
		UnitsConsumed:  100,
		BillAmount:     decimal.RequireFromString("500"),
		TotalAmount:    decimal.RequireFromString("590"),
	}
}

func collect(t *testing.T, l *flatfile.BillLog) []*entity.BillingRecord {
	t.Helper()
	var out []*entity.BillingRecord
	require.NoError(t, l.Scan(context.Background(), func(r *entity.BillingRecord) bool {
		out = append(out, r)
		return true
	}))
	return out
}

func TestAppend_FormatoDeLinea(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.csv")
	l := flatfile.NewBillLog(path, "₹", nil)

	require.NoError(t, l.Append(context.Background(), sampleRecord("CUST42", "Asha Rao")))
	require.NoError(t, l.Append(context.Background(), sampleRecord("CUST7", "Ravi")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"CUST42,Asha Rao,Residential,2026-10-15,100,500.00,590.00\n"+
			"CUST7,Ravi,Residential,2026-10-15,100,500.00,590.00\n",
		string(raw))
	assert.NotContains(t, string(raw), "₹", "los montos se guardan sin símbolo de moneda")
}

func TestScan_RoundTrip(t *testing.T) {
	l := flatfile.NewBillLog(filepath.Join(t.TempDir(), "bills.csv"), "₹", nil)
	in := sampleRecord("CUST9", "Meera")
	in.ConnectionType = entity.ConnectionCommercial
	in.BillAmount = decimal.RequireFromString("7.50")
	in.TotalAmount = decimal.RequireFromString("52.29")
	require.NoError(t, l.Append(context.Background(), in))

	got := collect(t, l)
	require.Len(t, got, 1)
	r := got[0]
	assert.Equal(t, in.CustomerID, r.CustomerID)
	assert.Equal(t, in.CustomerName, r.CustomerName)
	assert.Equal(t, in.ConnectionType, r.ConnectionType)
	assert.True(t, in.BillingDate.Equal(r.BillingDate))
	assert.Equal(t, in.UnitsConsumed, r.UnitsConsumed)
	assert.Equal(t, "7.50", r.BillAmount.StringFixed(2))
	assert.Equal(t, "52.29", r.TotalAmount.StringFixed(2))
}

func TestScan_ArchivoInexistente(t *testing.T) {
	l := flatfile.NewBillLog(filepath.Join(t.TempDir(), "no-existe.csv"), "₹", nil)

	err := l.Scan(context.Background(), func(*entity.BillingRecord) bool { return true })
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
}

func TestScan_DetieneCuandoFnDevuelveFalse(t *testing.T) {
	l := flatfile.NewBillLog(filepath.Join(t.TempDir(), "bills.csv"), "", nil)
	for _, id := range []string{"CUST1", "CUST2", "CUST3"} {
		require.NoError(t, l.Append(context.Background(), sampleRecord(id, "x")))
	}

	var seen []string
	require.NoError(t, l.Scan(context.Background(), func(r *entity.BillingRecord) bool {
		seen = append(seen, r.CustomerID)
		return len(seen) < 2
	}))
	assert.Equal(t, []string{"CUST1", "CUST2"}, seen)
}

func TestScan_OmiteLineasMalFormadas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.csv")
	content := "CUST1,Asha,Residential,2026-10-15,100,500.00,590.00\n" +
		"\n" +
		"CUST2,Rao, Asha,Residential,2026-10-15,100,500.00,590.00\n" + // nombre con coma
		"CUST3,Ravi,Industrial,2026-10-15,abc,500.00,590.00\n" +
		"CUST4,Meera,Commercial,2026-10-15,10,₹75.00,₹131.00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got := collect(t, flatfile.NewBillLog(path, "₹", nil))
	require.Len(t, got, 2)
	assert.Equal(t, "CUST1", got[0].CustomerID)
	assert.Equal(t, "CUST4", got[1].CustomerID)
	assert.Equal(t, "131.00", got[1].TotalAmount.StringFixed(2), "un símbolo heredado se elimina al leer")
}

func TestScan_LineasLargasYSinSaltoFinal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.csv")
	long := strings.Repeat("A", 70*1024)
	content := "CUST1," + long + ",Residential,2026-10-15,100,500.00,590.00\r\n" +
		"CUST2,Ravi,Industrial,2026-10-15,1,10.00,60.80" // última línea sin salto
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got := collect(t, flatfile.NewBillLog(path, "₹", nil))
	require.Len(t, got, 2)
	assert.Equal(t, long, got[0].CustomerName)
	assert.Equal(t, "590.00", got[0].TotalAmount.StringFixed(2))
	assert.Equal(t, "CUST2", got[1].CustomerID)
	assert.Equal(t, "60.80", got[1].TotalAmount.StringFixed(2))
}

func TestAppend_DirectorioInexistente(t *testing.T) {
	l := flatfile.NewBillLog(filepath.Join(t.TempDir(), "falta", "bills.csv"), "₹", nil)
	err := l.Append(context.Background(), sampleRecord("CUST1", "Asha"))
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
}

func TestDecodeLine_CamposIncorrectos(t *testing.T) {
	_, err := flatfile.DecodeLine("CUST1,Asha", "")
	assert.True(t, errors.Is(err, flatfile.ErrMalformedLine))

	_, err = flatfile.DecodeLine("CUST1,Asha,Residential,15/10/2026,1,5.00,55.40", "")
	assert.True(t, errors.Is(err, flatfile.ErrMalformedLine))
}
