package fechas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVentanaDia(t *testing.T) {
	loc := Zona(ZonaNegocio)
	// mid-afternoon local time
	ahora := time.Date(2025, 3, 12, 15, 30, 0, 0, loc)

	inicio, fin := Ventana(PeriodoDia, loc, ahora)

	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, loc), inicio)
	assert.Equal(t, time.Date(2025, 3, 13, 0, 0, 0, 0, loc).Add(-time.Nanosecond), fin)
}

func TestVentanaSemanaEmpiezaDomingo(t *testing.T) {
	loc := Zona(ZonaNegocio)
	// 2025-03-12 is a Wednesday; the week starts Sunday 2025-03-09
	ahora := time.Date(2025, 3, 12, 10, 0, 0, 0, loc)

	inicio, fin := Ventana(PeriodoSemana, loc, ahora)

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, loc), inicio)
	assert.Equal(t, time.Weekday(0), inicio.Weekday())
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, loc).Add(-time.Nanosecond), fin)
}

func TestVentanaSemanaEnDomingo(t *testing.T) {
	loc := Zona(ZonaNegocio)
	domingo := time.Date(2025, 3, 9, 8, 0, 0, 0, loc)

	inicio, _ := Ventana(PeriodoSemana, loc, domingo)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, loc), inicio)
}

func TestVentanaMes(t *testing.T) {
	loc := Zona(ZonaNegocio)
	ahora := time.Date(2025, 2, 20, 23, 59, 0, 0, loc)

	inicio, fin := Ventana(PeriodoMes, loc, ahora)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, loc), inicio)
	// February 2025 ends on the 28th
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, loc).Add(-time.Nanosecond), fin)
}

func TestVentanaPeriodoDesconocidoCaeEnDia(t *testing.T) {
	loc := Zona(ZonaNegocio)
	ahora := time.Date(2025, 6, 5, 12, 0, 0, 0, loc)

	inicio, fin := Ventana("trimestre", loc, ahora)
	inicioDia, finDia := Ventana(PeriodoDia, loc, ahora)

	assert.Equal(t, inicioDia, inicio)
	assert.Equal(t, finDia, fin)
}

func TestVentanaUsaLaZonaDelNegocio(t *testing.T) {
	loc := Zona(ZonaNegocio)
	require.NotNil(t, loc)

	// 02:00 UTC is still the previous day in La Paz (UTC-4)
	ahora := time.Date(2025, 3, 12, 2, 0, 0, 0, time.UTC)
	inicio, _ := Ventana(PeriodoDia, loc, ahora)

	assert.Equal(t, 11, inicio.Day())
}

func TestZonaInvalidaCaeEnUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Zona("No/Existe"))
}
