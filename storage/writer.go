// Package storage persists the generated tables as CSV files.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"datagen/catalog"
	"datagen/generator"
)

const (
	ProductsFileName = "products.csv"
	SalesFileName    = "sales.csv"
)

// Save writes products.csv and sales.csv under dataDir, creating the
// directory if needed.
func Save(dataDir string, products []catalog.Product, sales []generator.Transaction) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	if err := writeTable(filepath.Join(dataDir, ProductsFileName), ProductColumns, ProductRows(products)); err != nil {
		return err
	}
	return writeTable(filepath.Join(dataDir, SalesFileName), SaleColumns, SaleRows(sales))
}

func writeTable(path string, columns []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("could not write header of %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("could not write row of %s: %w", path, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
