package export

import (
	"testing"
	"time"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesFilename(t *testing.T) {
	at := time.Date(2024, 3, 15, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "sales_export_20240315_143005.xlsx", SalesFilename(at))
}

func TestSalesWorkbook(t *testing.T) {
	customer := &entity.Customer{Name: "Alice Wanjiku"}
	sales := []entity.Sale{
		{
			ID:           42,
			Quantity:     3,
			PricePerUnit: 1000,
			TotalPrice:   3000,
			Timestamp:    time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
			Medicine:     entity.Medicine{Name: "Paracetamol"},
			Customer:     customer,
		},
		{
			ID:           43,
			Quantity:     1,
			PricePerUnit: 450,
			TotalPrice:   450,
			Timestamp:    time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC),
			Medicine:     entity.Medicine{Name: "Ibuprofen"},
		},
	}

	f, err := SalesWorkbook(sales)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Sales", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "ID", get("A1"))
	assert.Equal(t, "Total Price", get("F1"))

	assert.Equal(t, "42", get("A2"))
	assert.Equal(t, "Paracetamol", get("B2"))
	assert.Equal(t, "Alice Wanjiku", get("C2"))
	assert.Equal(t, "3", get("D2"))
	assert.Equal(t, "30.00", get("F2"))
	assert.Equal(t, "2024-03-15 14:30:00", get("G2"))

	// Walk-in sale has a blank customer column
	assert.Equal(t, "", get("C3"))
	assert.Equal(t, "4.50", get("F3"))
}

func TestSalesWorkbookEmpty(t *testing.T) {
	f, err := SalesWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
