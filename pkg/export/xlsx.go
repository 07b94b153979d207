// Package export writes sale records to spreadsheet files.
package export

import (
	"fmt"
	"time"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const salesSheet = "Sales"

var salesHeaders = []string{
	"ID", "Medicine", "Customer", "Quantity", "Price per Unit", "Total Price", "Timestamp",
}

var salesColumnWidths = []float64{8, 30, 25, 10, 15, 15, 20}

// SalesFilename builds the export filename stamped with the given time
func SalesFilename(t time.Time) string {
	return fmt.Sprintf("sales_export_%s.xlsx", t.Format("20060102_150405"))
}

// SalesWorkbook renders the given sales into an xlsx workbook. The caller
// owns the returned file and should Close it when done.
func SalesWorkbook(sales []entity.Sale) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", salesSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: ptr("#,##0.00"),
	})
	if err != nil {
		return nil, err
	}

	for i, header := range salesHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(salesSheet, cell, header); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(salesSheet, "A1", "G1", headerStyle); err != nil {
		return nil, err
	}

	for i, width := range salesColumnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(salesSheet, col, col, width); err != nil {
			return nil, err
		}
	}

	for i, sale := range sales {
		row := i + 2
		customer := ""
		if sale.Customer != nil {
			customer = sale.Customer.Name
		}
		values := []interface{}{
			sale.ID,
			sale.Medicine.Name,
			customer,
			sale.Quantity,
			float64(sale.PricePerUnit) / 100,
			float64(sale.TotalPrice) / 100,
			sale.Timestamp.Format("2006-01-02 15:04:05"),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(salesSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if len(sales) > 0 {
		lastRow := len(sales) + 1
		if err := f.SetCellStyle(salesSheet, "E2", fmt.Sprintf("F%d", lastRow), moneyStyle); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func ptr(s string) *string { return &s }
