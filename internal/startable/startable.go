// Public domain.

// Package startable accumulates generated star table entries as an Apache
// Arrow record and writes it as an Arrow IPC file.
//
// Rows are in star table order, so row i holds the entry the generated
// Java code stores at index i.  Missing values are nulls.
package startable

import (
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"

	"github.com/mkreidl/bsc2java/bsc"
)

// column indexes into Schema
const (
	colCount = iota
	colHR
	colProperName
	colIAUName
	colMag
	colParallax
	colDistance
	colRA
	colDec
	colRV
	colPMRA
	colPMDec
	colSpType
)

// Schema is the schema of the star table.
var Schema = arrow.NewSchema([]arrow.Field{
	{Name: "count", Type: arrow.PrimitiveTypes.Int32},
	{Name: "hr", Type: arrow.PrimitiveTypes.Int32},
	{Name: "proper_name", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "iau_name", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "mag", Type: arrow.PrimitiveTypes.Float64},
	{Name: "parallax", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "distance", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "ra", Type: arrow.PrimitiveTypes.Float64},
	{Name: "dec", Type: arrow.PrimitiveTypes.Float64},
	{Name: "rv", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "pm_ra", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "pm_dec", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "spectral_type", Type: arrow.BinaryTypes.String},
}, nil)

// Table builds the star table.
type Table struct {
	mem memory.Allocator
	b   *array.RecordBuilder
	n   int
}

// New returns an empty table.  A nil allocator selects the Go allocator.
func New(mem memory.Allocator) *Table {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &Table{mem: mem, b: array.NewRecordBuilder(mem, Schema)}
}

// Append adds e as the row for star table index count.
func (t *Table) Append(count int, e *bsc.Entry) {
	b := t.b
	b.Field(colCount).(*array.Int32Builder).Append(int32(count))
	b.Field(colHR).(*array.Int32Builder).Append(int32(e.HR))
	appendString(b.Field(colProperName).(*array.StringBuilder), e.ProperName)
	appendString(b.Field(colIAUName).(*array.StringBuilder), e.IAUName)
	b.Field(colMag).(*array.Float64Builder).Append(e.Mag)
	appendFloat(b.Field(colParallax).(*array.Float64Builder), e.Parallax)
	appendFloat(b.Field(colDistance).(*array.Float64Builder), e.Distance)
	ra, dec := e.RADec()
	b.Field(colRA).(*array.Float64Builder).Append(ra)
	b.Field(colDec).(*array.Float64Builder).Append(dec)
	appendFloat(b.Field(colRV).(*array.Float64Builder), e.RV)
	appendFloat(b.Field(colPMRA).(*array.Float64Builder), e.PMRA)
	appendFloat(b.Field(colPMDec).(*array.Float64Builder), e.PMDec)
	b.Field(colSpType).(*array.StringBuilder).Append(string(e.SpType))
	t.n++
}

func appendString(b *array.StringBuilder, s string) {
	if s == "" {
		b.AppendNull()
		return
	}
	b.Append(s)
}

func appendFloat(b *array.Float64Builder, f bsc.Float) {
	if !f.Valid {
		b.AppendNull()
		return
	}
	b.Append(f.V)
}

// Len returns the number of rows appended.
func (t *Table) Len() int { return t.n }

// Encode writes all rows appended so far to w as an Arrow IPC file
// holding a single record batch.  The table is empty afterwards.
func (t *Table) Encode(w io.Writer) error {
	rec := t.b.NewRecord()
	defer rec.Release()
	t.n = 0
	fw, err := ipc.NewFileWriter(w, ipc.WithSchema(Schema), ipc.WithAllocator(t.mem))
	if err != nil {
		return err
	}
	if err := fw.Write(rec); err != nil {
		fw.Close()
		return err
	}
	return fw.Close()
}

// Release frees the builder memory.
func (t *Table) Release() { t.b.Release() }
