package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura emitida a una empresa.
// PaidDate es nil mientras la factura esté sin pagar; se fija en la
// transición no-pagada -> pagada y se limpia al volver a no-pagada.
type Invoice struct {
	ID       int
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}
