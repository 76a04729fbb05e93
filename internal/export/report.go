// Package export turns an already-shaped row table into downloadable
// artifacts (CSV, PDF, TXT, XLSX). Formatters are pure and synchronous: no
// state, no network, no knowledge of which entity produced the rows.
package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/dto"

	"github.com/shopspring/decimal"
)

// Kind discriminates cell values so currency and date formatting stay in one
// place instead of being re-derived per output format.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindMoney
	KindPercent
	KindDate
)

// Value is one typed cell.
type Value struct {
	Kind    Kind
	Text    string
	Int     int
	Decimal decimal.Decimal
	Time    time.Time
}

func Text(s string) Value            { return Value{Kind: KindText, Text: s} }
func Int(n int) Value                { return Value{Kind: KindInt, Int: n} }
func Money(d decimal.Decimal) Value  { return Value{Kind: KindMoney, Decimal: d} }
func Percent(d decimal.Decimal) Value { return Value{Kind: KindPercent, Decimal: d} }
func Date(t time.Time) Value         { return Value{Kind: KindDate, Time: t} }

// String renders the cell for any text-based output.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindMoney:
		return "₱" + v.Decimal.StringFixed(2)
	case KindPercent:
		return v.Decimal.StringFixed(1) + "%"
	case KindDate:
		return v.Time.Format("2006-01-02")
	default:
		return v.Text
	}
}

// DateRange is an optional filter annotation rendered in PDF/TXT headers.
type DateRange struct {
	From, To time.Time
}

// Table is the formatter input: a title plus an explicit ordered column list
// and typed rows. Column order is part of the contract.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]Value
	Range   *DateRange
}

// Filename builds the download name: <report-type>-report-<ISO-date>.<ext>.
func Filename(reportType, ext string) string {
	return fmt.Sprintf("%s-report-%s.%s", reportType, time.Now().Format("2006-01-02"), ext)
}

// ── Report shaping ───────────────────────────────────────────────────────────

// BuildInventoryTable shapes the full inventory list.
func BuildInventoryTable(items []dto.ItemResponse) Table {
	t := Table{
		Title: "Inventory Report",
		Columns: []string{"Product Name", "SKU", "Category", "Supplier", "Quantity",
			"Min Quantity", "Price", "Total Value", "Status", "Last Updated"},
	}
	for _, item := range items {
		status := "In Stock"
		if item.LowStock {
			status = "Low Stock"
		}
		updated, _ := time.Parse(time.RFC3339, item.UpdatedAt)
		t.Rows = append(t.Rows, []Value{
			Text(item.Name), Text(item.SKU),
			Text(orNA(item.CategoryName)), Text(orNA(item.SupplierName)),
			Int(item.Quantity), Int(item.MinQuantity),
			Money(item.Price), Money(item.LineValue),
			Text(status), Date(updated),
		})
	}
	return t
}

// BuildLowStockTable shapes the low-stock subset with shortage amounts.
func BuildLowStockTable(items []dto.ItemResponse) Table {
	t := Table{
		Title: "Low-stock Report",
		Columns: []string{"Product Name", "SKU", "Category", "Current Stock",
			"Min Required", "Shortage", "Price", "Supplier", "Last Updated"},
	}
	for _, item := range items {
		updated, _ := time.Parse(time.RFC3339, item.UpdatedAt)
		t.Rows = append(t.Rows, []Value{
			Text(item.Name), Text(item.SKU), Text(orNA(item.CategoryName)),
			Int(item.Quantity), Int(item.MinQuantity),
			Int(item.MinQuantity - item.Quantity),
			Money(item.Price), Text(orNA(item.SupplierName)), Date(updated),
		})
	}
	return t
}

// BuildValueTable shapes the inventory sorted by line value, highest first,
// with each item's share of the total.
func BuildValueTable(items []dto.ItemResponse, totalValue decimal.Decimal) Table {
	sorted := make([]dto.ItemResponse, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LineValue.GreaterThan(sorted[j].LineValue)
	})

	t := Table{
		Title: "Value Report",
		Columns: []string{"Product Name", "SKU", "Category", "Quantity",
			"Unit Price", "Total Value", "Percentage of Total"},
	}
	hundred := decimal.NewFromInt(100)
	for _, item := range sorted {
		pct := decimal.Zero
		if !totalValue.IsZero() {
			pct = item.LineValue.Div(totalValue).Mul(hundred)
		}
		t.Rows = append(t.Rows, []Value{
			Text(item.Name), Text(item.SKU), Text(orNA(item.CategoryName)),
			Int(item.Quantity), Money(item.Price), Money(item.LineValue),
			Percent(pct),
		})
	}
	return t
}

// BuildTransactionsTable shapes the audit trail.
func BuildTransactionsTable(txs []dto.TransactionResponse) Table {
	t := Table{
		Title: "Transactions Report",
		Columns: []string{"Date", "Type", "Product", "SKU", "Quantity Change",
			"Previous Qty", "New Qty", "User", "Notes"},
	}
	for _, tx := range txs {
		created, _ := time.Parse(time.RFC3339, tx.CreatedAt)
		t.Rows = append(t.Rows, []Value{
			Date(created), Text(tx.TransactionType),
			Text(orNA(tx.ItemName)), Text(orNA(tx.ItemSKU)),
			Int(tx.QuantityChange), Int(tx.PreviousQuantity), Int(tx.NewQuantity),
			Text(orNA(tx.UserName)), Text(tx.Notes),
		})
	}
	return t
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
