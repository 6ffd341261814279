package storage

import (
	"strconv"

	"datagen/catalog"
	"datagen/generator"
)

const timestampLayout = "2006-01-02 15:04:05"

// Column headers of the two output tables.
var (
	ProductColumns = []string{"product_id", "name", "category", "cost"}
	SaleColumns    = []string{"transaction_id", "timestamp", "location", "product_id", "quantity", "revenue", "payment_method", "loyalty_member"}
)

// ProductRows renders the catalog as table rows.
func ProductRows(products []catalog.Product) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Category.String(),
			p.Cost.StringFixed(2),
		})
	}
	return rows
}

// SaleRows renders the transaction set as table rows. Nulled quantity and
// revenue cells come out empty.
func SaleRows(transactions []generator.Transaction) [][]string {
	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		quantity := ""
		if t.Quantity != nil {
			quantity = strconv.Itoa(*t.Quantity)
		}
		revenue := ""
		if t.Revenue != nil {
			revenue = t.Revenue.StringFixed(2)
		}
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			t.Timestamp.Format(timestampLayout),
			t.Location.String(),
			strconv.Itoa(t.ProductID),
			quantity,
			revenue,
			t.PaymentMethod.String(),
			strconv.FormatBool(t.LoyaltyMember),
		})
	}
	return rows
}
