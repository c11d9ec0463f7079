package pagos

import "github.com/shopspring/decimal"

// ReconciliarDividido validates an explicit list of payment legs against the
// target total. The sum must match within Epsilon; the per-leg Cambio values
// were computed incrementally by the client and are trusted, only the total
// is re-validated. Returns the finalized legs plus the total change owed to
// the customer (cash legs only).
func ReconciliarDividido(entradas []Entrada, objetivo decimal.Decimal) ([]Entrada, decimal.Decimal, error) {
	if len(entradas) == 0 {
		return nil, decimal.Zero, ErrPagosFaltantes
	}

	pagado := decimal.Zero
	cambioTotal := decimal.Zero
	for _, e := range entradas {
		if !MetodoValido(e.Metodo) {
			return nil, decimal.Zero, &ErrMetodoInvalido{Metodo: e.Metodo}
		}
		pagado = pagado.Add(e.Monto)
		if e.Metodo == MetodoEfectivo {
			cambioTotal = cambioTotal.Add(e.Cambio)
		}
	}

	if !igualConTolerancia(pagado, objetivo) {
		return nil, decimal.Zero, &ErrPagoNoCoincide{Pagado: pagado, Esperado: objetivo}
	}
	return entradas, cambioTotal, nil
}

// ReconciliarSimple handles the legacy single-payment shape. EFECTIVO
// requires recibido >= objetivo and yields change; QR requires an exact
// amount (defaulting to the target when the client omits it) and no change.
func ReconciliarSimple(metodo string, montoRecibido *decimal.Decimal, objetivo decimal.Decimal) ([]Entrada, decimal.Decimal, error) {
	if !MetodoValido(metodo) {
		return nil, decimal.Zero, &ErrMetodoInvalido{Metodo: metodo}
	}

	if metodo == MetodoEfectivo {
		if montoRecibido == nil {
			return nil, decimal.Zero, &ErrMontoInsuficiente{Recibido: decimal.Zero, Total: objetivo}
		}
		recibido := *montoRecibido
		if recibido.LessThan(objetivo) {
			return nil, decimal.Zero, &ErrMontoInsuficiente{Recibido: recibido, Total: objetivo}
		}
		cambio := recibido.Sub(objetivo)
		return []Entrada{{Metodo: metodo, Monto: recibido, Cambio: cambio}}, cambio, nil
	}

	// Non-cash: exact payment, no change.
	recibido := objetivo
	if montoRecibido != nil {
		recibido = *montoRecibido
	}
	if !igualConTolerancia(recibido, objetivo) {
		return nil, decimal.Zero, &ErrPagoNoCoincide{Pagado: recibido, Esperado: objetivo}
	}
	return []Entrada{{Metodo: metodo, Monto: recibido, Cambio: decimal.Zero}}, decimal.Zero, nil
}
