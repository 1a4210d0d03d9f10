package report

import (
	"fmt"
	"strings"
	"time"

	"finledger/internal/core"
)

// csvHeader fixes the export field order. Descriptions and dates are always
// quoted; amount and type are bare. Categories are free-form text, so they
// are quoted whenever they contain CSV metacharacters. A standard CSV
// reader reconstructs the exact field values, so the document round-trips.
const csvHeader = `Title,Amount,Type,Category,Date`

// ToCSV renders the snapshot as a CSV document, one row per entry in
// ledger order, rows joined with \n and no trailing newline.
func ToCSV(entries []core.Entry) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	for _, e := range entries {
		b.WriteByte('\n')
		b.WriteString(quoteField(e.Description))
		b.WriteByte(',')
		b.WriteString(core.FormatAmount(e.Amount.Cents))
		b.WriteByte(',')
		b.WriteString(string(e.Type))
		b.WriteByte(',')
		b.WriteString(categoryField(e.Category))
		b.WriteByte(',')
		b.WriteString(quoteField(e.OccurredOn.ISO()))
	}
	return b.String()
}

// quoteField wraps a value in double quotes, doubling embedded quotes.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// categoryField emits the category bare, quoting only when the value would
// otherwise break the row.
func categoryField(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return quoteField(s)
	}
	return s
}

// ExportFilename suggests the download name for a CSV export. Month and
// day are 1-based without zero padding, matching calendar display.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("finance-export-%d-%d-%d.csv", now.Year(), int(now.Month()), now.Day())
}

// PrintableRow is one line of the print-friendly table, in ledger order.
type PrintableRow struct {
	Date        string
	Description string
	Category    string
	Type        string
	Amount      string
}

// Printable renders the snapshot for tabular display by an external
// collaborator: a one-line totals summary plus one row per entry.
func Printable(entries []core.Entry) (string, []PrintableRow) {
	t := ComputeTotals(entries)
	summary := fmt.Sprintf("Income: $%s | Expense: $%s | Balance: $%s",
		core.FormatAmount(t.Income), core.FormatAmount(t.Expense), core.FormatAmount(t.Balance))

	rows := make([]PrintableRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, PrintableRow{
			Date:        e.OccurredOn.ISO(),
			Description: e.Description,
			Category:    e.Category,
			Type:        string(e.Type),
			Amount:      core.FormatAmount(e.Amount.Cents),
		})
	}
	return summary, rows
}
