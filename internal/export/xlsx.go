package export

import (
	"fmt"

	"github.com/N05TR4/gdt-sistema/internal/declaration"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the declaration rows.
const SheetName = "Declarations"

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []string{
	"Filing Number",
	"Period",
	"Tax Type",
	"Status",
	"Income",
	"Expenses",
	"Taxable Base",
	"Computed Tax",
	"Penalty",
	"Total Payable",
	"Due Date",
	"Filed At",
	"Created At",
	"Rejection Remarks",
}

// DeclarationsXLSX renders declarations as a workbook, one row each in the
// order given.
func DeclarationsXLSX(list []*declaration.Declaration) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	headStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, sheet: SheetName}
	for i, h := range headers {
		w.set(i+1, 1, h)
	}
	w.style(1, 1, len(headers), 1, headStyle)

	for i, d := range list {
		row := i + 2
		w.set(1, row, d.FilingNumber())
		w.set(2, row, d.Period().String())
		w.set(3, row, d.TaxType().String())
		w.set(4, row, d.Status().String())
		w.set(5, row, d.Income().InexactFloat64())
		w.set(6, row, d.Expenses().InexactFloat64())
		w.set(7, row, d.TaxableBase().InexactFloat64())
		w.set(8, row, d.ComputedTax().InexactFloat64())
		w.set(9, row, d.Penalty().InexactFloat64())
		w.set(10, row, d.TotalPayable().InexactFloat64())
		w.set(11, row, d.DueDate().Format("2006-01-02"))
		if at := d.FiledAt(); at != nil {
			w.set(12, row, at.Format("2006-01-02 15:04:05"))
		}
		w.set(13, row, d.CreatedAt().Format("2006-01-02 15:04:05"))
		if r := d.RejectionRemarks(); r != nil {
			w.set(14, row, *r)
		}
	}

	if len(list) > 0 {
		w.style(5, 2, 10, len(list)+1, moneyStyle)
	}

	w.width("A", "A", 20) // filing number
	w.width("B", "D", 12)
	w.width("E", "J", 16) // amounts
	w.width("K", "M", 20) // dates
	w.width("N", "N", 48)
	if w.err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter writes to one worksheet and keeps the first error. Calls after
// a failure are no-ops.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, v any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(w.sheet, cell, v)
}

func (w *sheetWriter) style(fromCol, fromRow, toCol, toRow, style int) {
	if w.err != nil {
		return
	}
	from, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		w.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, from, to, style)
}

func (w *sheetWriter) width(fromCol, toCol string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(w.sheet, fromCol, toCol, width)
}
