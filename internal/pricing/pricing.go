// Package pricing implements the quotation pricing engine: totals, payment
// plan breakdowns, currency formatting and quotation metadata generation.
// All functions are pure apart from the random component of quotation
// numbers.
package pricing

import (
	"fmt"
	"math/rand"
	"time"

	"gatequote/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultValidityDays is the validity window applied to quotations when no
// override is configured.
const DefaultValidityDays = 30

// Quotations are priced in Malaysian Ringgit; the printer localizes digit
// grouping for the fixed en-MY locale.
var printer = message.NewPrinter(language.MustParse("en-MY"))

// BaseTotal sums unit price times quantity over every selected product that
// resolves in the catalog, then adds the flat warranty price. Product ids
// that do not resolve are silently skipped: a selection may reference
// discontinued items and that is not an error. Quantities of zero or less
// contribute nothing.
func BaseTotal(items map[string]int, warrantyPrice float64, catalog *models.Catalog) float64 {
	total := warrantyPrice
	for id, qty := range items {
		if qty <= 0 {
			continue
		}
		product := catalog.ProductByID(id)
		if product == nil {
			continue
		}
		total += product.UnitPrice * float64(qty)
	}
	return total
}

// Total is BaseTotal with the payment plan multiplier applied. A multiplier
// of 1 means no plan adjustment.
func Total(items map[string]int, warrantyPrice float64, catalog *models.Catalog, multiplier float64) float64 {
	return BaseTotal(items, warrantyPrice, catalog) * multiplier
}

// Breakdown splits a total price into the financing figures of the given
// payment plan. A nil option, a one-off plan, or a plan without a positive
// term all produce the upfront shape: the full amount due as deposit, no
// monthly figure.
//
// For rental plans the plan multiplier is applied again on top of the
// already-multiplied total price when deriving the monthly payment. This
// compounding is intentional and matches the published rate card.
func Breakdown(totalPrice float64, opt *models.PaymentOption) models.PaymentBreakdown {
	if opt == nil || opt.Type == models.PaymentOneOff || opt.TermMonths <= 0 {
		return models.PaymentBreakdown{
			TotalCost: totalPrice,
			Deposit:   totalPrice,
		}
	}

	term := opt.TermMonths
	switch opt.Type {
	case models.PaymentLease:
		deposit := totalPrice * opt.DepositPercentage / 100
		monthly := (totalPrice - deposit) / float64(term)
		return models.PaymentBreakdown{
			TotalCost:      totalPrice,
			Deposit:        deposit,
			MonthlyPayment: &monthly,
			TermMonths:     &term,
		}
	case models.PaymentRental:
		deposit := totalPrice * opt.DepositPercentage / 100
		monthly := totalPrice * opt.Multiplier / float64(term)
		totalCost := deposit + monthly*float64(term)
		return models.PaymentBreakdown{
			TotalCost:      totalCost,
			Deposit:        deposit,
			MonthlyPayment: &monthly,
			TermMonths:     &term,
		}
	}

	return models.PaymentBreakdown{
		TotalCost: totalPrice,
		Deposit:   totalPrice,
	}
}

// FormatCurrency renders a monetary amount with two decimal places and
// locale digit grouping, e.g. "RM 11,700.00".
func FormatCurrency(amount float64) string {
	return printer.Sprintf("RM %.2f", amount)
}

// GenerateQuotationNumber returns a quotation number of the form
// QT-YYMM-NNNN, where YYMM derives from the current date and NNNN is a
// zero-padded random value. Numbers are not guaranteed globally unique;
// for a low-volume quoting tool without persistence that is acceptable.
func GenerateQuotationNumber() string {
	now := time.Now()
	return fmt.Sprintf("QT-%02d%02d-%04d", now.Year()%100, int(now.Month()), rand.Intn(10000))
}

// ValidUntil returns the quotation validity deadline: the issue date plus
// daysValid calendar days.
func ValidUntil(issueDate time.Time, daysValid int) time.Time {
	return issueDate.AddDate(0, 0, daysValid)
}
