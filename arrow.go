package influx

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// ToArrowRecord converts the series grid into an Arrow record batch, one
// field per column. The caller owns the record and must Release it.
//
// Column types are unified from the cells: all-boolean columns map to
// Boolean, all-integer to Int64, numeric mixes to Float64, and anything else
// to String (cells rendered in their native textual form). Null cells map to
// Arrow nulls, and every field is nullable.
func (s *Series) ToArrowRecord() (arrow.Record, error) {
	fields := make([]arrow.Field, len(s.Columns))
	types := make([]arrow.DataType, len(s.Columns))
	for i, name := range s.Columns {
		typ := columnType(s.Values, i)
		types[i] = typ
		fields[i] = arrow.Field{Name: name, Type: typ, Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	pool := memory.NewGoAllocator()
	b := array.NewRecordBuilder(pool, schema)
	defer b.Release()

	for _, row := range s.Values {
		for i, cell := range row {
			if err := appendCell(b.Field(i), types[i], cell); err != nil {
				return nil, fmt.Errorf("series %q column %q: %w", s.Name, s.Columns[i], err)
			}
		}
	}
	return b.NewRecord(), nil
}

// columnType unifies the value types observed in one column of the grid.
func columnType(values [][]Value, col int) arrow.DataType {
	var bools, ints, floats, others int
	for _, row := range values {
		switch row[col].Type() {
		case NullType:
		case BooleanType:
			bools++
		case IntegerType:
			ints++
		case FloatType:
			floats++
		default:
			others++
		}
	}

	switch {
	case others > 0:
		return arrow.BinaryTypes.String
	case bools > 0 && ints == 0 && floats == 0:
		return arrow.FixedWidthTypes.Boolean
	case floats > 0 && bools == 0:
		return arrow.PrimitiveTypes.Float64
	case ints > 0 && bools == 0:
		return arrow.PrimitiveTypes.Int64
	default:
		return arrow.BinaryTypes.String
	}
}

func appendCell(fb array.Builder, typ arrow.DataType, cell Value) error {
	if cell.IsNull() {
		fb.AppendNull()
		return nil
	}

	switch typ {
	case arrow.FixedWidthTypes.Boolean:
		v, ok := cell.Bool()
		if !ok {
			return fmt.Errorf("cannot convert %s cell to boolean", cell.Type())
		}
		fb.(*array.BooleanBuilder).Append(v)
	case arrow.PrimitiveTypes.Int64:
		v, ok := cell.Int()
		if !ok {
			return fmt.Errorf("cannot convert %s cell to int64", cell.Type())
		}
		fb.(*array.Int64Builder).Append(v)
	case arrow.PrimitiveTypes.Float64:
		v, ok := cell.Float64()
		if !ok {
			i, ok := cell.Int()
			if !ok {
				return fmt.Errorf("cannot convert %s cell to float64", cell.Type())
			}
			v = float64(i)
		}
		fb.(*array.Float64Builder).Append(v)
	default:
		fb.(*array.StringBuilder).Append(cellText(cell))
	}
	return nil
}

// cellText renders any cell in its native textual form, without the quoting
// and suffixes the line protocol would add.
func cellText(cell Value) string {
	switch cell.Type() {
	case StringType:
		return cell.Text()
	case NullType:
		return ""
	default:
		if cell.Text() != "" {
			return cell.Text()
		}
		s := cell.Encode()
		if cell.Type() == IntegerType && len(s) > 0 && s[len(s)-1] == 'i' {
			return s[:len(s)-1]
		}
		return s
	}
}
