package storage_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"datagen/catalog"
	"datagen/generator"
	"datagen/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTable(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func sampleSales() []generator.Transaction {
	quantity := 2
	revenue := decimal.RequireFromString("9.86")
	return []generator.Transaction{
		{
			ID:            1000,
			Timestamp:     time.Date(2024, 11, 5, 8, 12, 0, 0, time.UTC),
			Location:      catalog.Campus,
			ProductID:     103,
			Quantity:      &quantity,
			Revenue:       &revenue,
			PaymentMethod: catalog.Mobile,
			LoyaltyMember: true,
		},
		{
			ID:            1001,
			Timestamp:     time.Date(2024, 11, 5, 12, 45, 0, 0, time.UTC),
			Location:      catalog.Downtown,
			ProductID:     199,
			Quantity:      nil,
			Revenue:       nil,
			PaymentMethod: catalog.Cash,
			LoyaltyMember: false,
		},
	}
}

func TestSaveWritesBothTables(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	products := catalog.Products()
	sales := sampleSales()

	require.NoError(t, storage.Save(dataDir, products, sales))

	productRecords := readTable(t, filepath.Join(dataDir, storage.ProductsFileName))
	require.Len(t, productRecords, len(products)+1)
	assert.Equal(t, storage.ProductColumns, productRecords[0])
	assert.Equal(t, []string{"101", "Espresso", "Coffee", "1.20"}, productRecords[1])
	assert.Equal(t, []string{"118", "Steak Panini", "Sandwich", "5.50"}, productRecords[len(products)])

	saleRecords := readTable(t, filepath.Join(dataDir, storage.SalesFileName))
	require.Len(t, saleRecords, len(sales)+1)
	assert.Equal(t, storage.SaleColumns, saleRecords[0])
	assert.Equal(t, []string{"1000", "2024-11-05 08:12:00", "Campus", "103", "2", "9.86", "Mobile", "true"}, saleRecords[1])

	// Nulled cells come out empty, dangling product ids pass through.
	assert.Equal(t, []string{"1001", "2024-11-05 12:45:00", "Downtown", "199", "", "", "Cash", "false"}, saleRecords[2])
}

func TestSaveIsDeterministic(t *testing.T) {
	products := catalog.Products()
	sales := sampleSales()

	firstDir := t.TempDir()
	secondDir := t.TempDir()
	require.NoError(t, storage.Save(firstDir, products, sales))
	require.NoError(t, storage.Save(secondDir, products, sales))

	first, err := os.ReadFile(filepath.Join(firstDir, storage.SalesFileName))
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(secondDir, storage.SalesFileName))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
