package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtreme-academy/cuentas-api/pkg/validation"
)

func TestTextoObligatorio_RecortaEspacios(t *testing.T) {
	valor, err := validation.TextoObligatorio("  hola  ", "el nombre")
	require.NoError(t, err)
	assert.Equal(t, "hola", valor)
}

func TestTextoObligatorio_RechazaVacio(t *testing.T) {
	_, err := validation.TextoObligatorio("   ", "el nombre")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "el nombre")
}

func TestFechaObligatoria_AceptaISO(t *testing.T) {
	valor, err := validation.FechaObligatoria("2024-12-01", "la fecha")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01", valor)
}

func TestFechaObligatoria_RechazaVacia(t *testing.T) {
	_, err := validation.FechaObligatoria("", "la fecha")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fecha")
}

func TestMontoPositivo_ParseaValidos(t *testing.T) {
	monto, err := validation.MontoPositivo("1500.5", "este ingreso")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(1500.5).Equal(monto))
}

func TestMontoPositivo_RechazaCeroYNegativos(t *testing.T) {
	_, err := validation.MontoPositivo("0", "el monto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mayor a 0")

	_, err = validation.MontoPositivo("-2", "el monto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mayor a 0")
}

func TestMontoPositivo_RechazaNoNumericos(t *testing.T) {
	_, err := validation.MontoPositivo("abc", "el monto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monto")
}
