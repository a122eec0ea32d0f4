package excel

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"goeda/domain/dataset"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Amount", "FraudResult", "ProductCategory"},
		{120.5, 0, "airtime"},
		{-40, 1, "utility_bill"},
		{nil, 0, "airtime"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "transactions.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReader_Read(t *testing.T) {
	ds, err := NewReader(writeWorkbook(t), "").Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if ds.Rows() != 3 {
		t.Errorf("Rows = %d, want 3", ds.Rows())
	}

	amount, ok := ds.Column("Amount")
	if !ok {
		t.Fatal("Amount column missing")
	}
	if amount.Type != dataset.TypeNumeric {
		t.Errorf("Amount type = %s, want numeric", amount.Type)
	}
	if amount.Floats[0] != 120.5 {
		t.Errorf("Amount[0] = %v, want 120.5", amount.Floats[0])
	}
	if !math.IsNaN(amount.Floats[2]) {
		t.Errorf("empty cell should load as NaN, got %v", amount.Floats[2])
	}

	fraud, ok := ds.Column("FraudResult")
	if !ok {
		t.Fatal("FraudResult column missing")
	}
	if fraud.Type != dataset.TypeBoolean {
		t.Errorf("FraudResult type = %s, want boolean", fraud.Type)
	}

	category, ok := ds.Column("ProductCategory")
	if !ok {
		t.Fatal("ProductCategory column missing")
	}
	if category.Type != dataset.TypeCategorical {
		t.Errorf("ProductCategory type = %s, want categorical", category.Type)
	}
}

func TestReader_MissingFile(t *testing.T) {
	if _, err := NewReader("does-not-exist.xlsx", "").Read(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBuildColumn_Inference(t *testing.T) {
	numeric := buildColumn("Amount", []string{"1.5", "2", ""})
	if numeric.Type != dataset.TypeNumeric {
		t.Errorf("Amount inferred as %s, want numeric", numeric.Type)
	}

	boolean := buildColumn("FraudResult", []string{"0", "1", "0"})
	if boolean.Type != dataset.TypeBoolean {
		t.Errorf("FraudResult inferred as %s, want boolean", boolean.Type)
	}

	categorical := buildColumn("ChannelId", []string{"ChannelId_3", "ChannelId_2"})
	if categorical.Type != dataset.TypeCategorical {
		t.Errorf("ChannelId inferred as %s, want categorical", categorical.Type)
	}

	empty := buildColumn("Blank", []string{"", ""})
	if empty.Type != dataset.TypeCategorical {
		t.Errorf("all-empty column inferred as %s, want categorical", empty.Type)
	}
}
