// Package moneda formatea importes en pesos mexicanos para reportes y
// respuestas de presentación. Los montos crudos siempre viajan como decimal;
// el formateo es solo de salida.
package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-MX"))

// Formatear devuelve el importe con símbolo y 2 decimales, ej. "MX$ 1,600.00".
func Formatear(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("%v", currency.Symbol(currency.MXN.Amount(f)))
}

// FormatearCompacto abrevia importes grandes (≥ 10,000) para vistas angostas:
// "MX$ 58.0k", "MX$ 1.2M". Por debajo del umbral delega en Formatear.
func FormatearCompacto(v decimal.Decimal) string {
	abs := v.Abs()
	millon := decimal.NewFromInt(1_000_000)
	umbral := decimal.NewFromInt(10_000)
	switch {
	case abs.GreaterThanOrEqual(millon):
		f, _ := v.Div(millon).Round(1).Float64()
		return printer.Sprintf("MX$ %.1fM", f)
	case abs.GreaterThanOrEqual(umbral):
		f, _ := v.Div(decimal.NewFromInt(1000)).Round(1).Float64()
		return printer.Sprintf("MX$ %.1fk", f)
	default:
		return Formatear(v)
	}
}
