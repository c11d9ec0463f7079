// Package fechas resolves report windows (day / week / month) in the
// business timezone. A single pure function replaces the several competing
// date-math snippets the reporting endpoints accumulated over time.
package fechas

import "time"

// ZonaNegocio is the fixed business timezone used by every report.
const ZonaNegocio = "America/La_Paz"

// Periodos accepted by the reporting endpoints.
const (
	PeriodoDia    = "dia"
	PeriodoSemana = "semana"
	PeriodoMes    = "mes"
)

// Ventana returns the [inicio, fin] bounds of the period containing ahora,
// computed in loc. Weeks start on Sunday. fin is the last representable
// instant of the period so that `creado_en BETWEEN inicio AND fin` matches
// the whole bucket. Unknown periods fall back to the day window.
func Ventana(periodo string, loc *time.Location, ahora time.Time) (time.Time, time.Time) {
	local := ahora.In(loc)

	var inicio time.Time
	var fin time.Time

	switch periodo {
	case PeriodoSemana:
		diaSemana := int(local.Weekday()) // Sunday = 0
		inicio = time.Date(local.Year(), local.Month(), local.Day()-diaSemana, 0, 0, 0, 0, loc)
		fin = inicio.AddDate(0, 0, 7).Add(-time.Nanosecond)
	case PeriodoMes:
		inicio = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		fin = inicio.AddDate(0, 1, 0).Add(-time.Nanosecond)
	default: // PeriodoDia
		inicio = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		fin = inicio.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return inicio, fin
}

// Zona loads the business timezone, falling back to UTC if the tz database
// is unavailable.
func Zona(nombre string) *time.Location {
	loc, err := time.LoadLocation(nombre)
	if err != nil {
		return time.UTC
	}
	return loc
}
