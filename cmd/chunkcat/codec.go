// Copyright (C) 2026 Sneller Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"

	"github.com/sneller-labs/chunkwise/bitmap"
	"github.com/sneller-labs/chunkwise/chunk"
	"github.com/sneller-labs/chunkwise/column"
	"github.com/sneller-labs/chunkwise/ion"
)

// chunkcat's on-disk format is deliberately narrow: it round-trips the
// element kinds needed to drive the concat kernel from the command
// line (Null, Number[int64], Number[float64], Boolean, String) rather
// than the kernel's full type system. Array, Nullable and Tuple are
// fully implemented in the column package and exercised by its test
// suite; wiring them into this CLI's wire format is a mechanical
// recursive extension left undone here, since it would not exercise
// anything column.Concat doesn't already cover.
//
// Each chunk is one ion struct:
//
//	{row_count: <int>, columns: [<column>, ...]}
//
// and each column is one ion struct tagged by "kind":
//
//	{kind: "null", len: <int>}
//	{kind: "i64", values: [<int>, ...]}
//	{kind: "f64", values: [<float>, ...]}
//	{kind: "bool", values: [<bool>, ...]}
//	{kind: "string", values: [<string>, ...]}

func encodeChunk(st *ion.Symtab, c chunk.Chunk) ion.Datum {
	cols := make([]ion.Datum, len(c.Columns))
	for i, v := range c.Columns {
		cols[i] = encodeColumn(st, v.Broadcast(c.RowCount))
	}
	return ion.NewStruct(st, []ion.Field{
		{Label: "row_count", Value: ion.Int(int64(c.RowCount))},
		{Label: "columns", Value: ion.NewList(st, cols).Datum()},
	}).Datum()
}

func encodeColumn(st *ion.Symtab, c column.Column) ion.Datum {
	switch v := c.(type) {
	case column.Null:
		return ion.NewStruct(st, []ion.Field{
			{Label: "kind", Value: ion.String("null")},
			{Label: "len", Value: ion.Int(int64(v.Len()))},
		}).Datum()
	case column.Number[int64]:
		items := make([]ion.Datum, v.Len())
		for i := 0; i < v.Len(); i++ {
			items[i] = ion.Int(v.At(i))
		}
		return columnStruct(st, "i64", items)
	case column.Number[float64]:
		items := make([]ion.Datum, v.Len())
		for i := 0; i < v.Len(); i++ {
			items[i] = ion.Float(v.At(i))
		}
		return columnStruct(st, "f64", items)
	case column.Boolean:
		items := make([]ion.Datum, v.Len())
		for i := 0; i < v.Len(); i++ {
			items[i] = ion.Bool(v.At(i))
		}
		return columnStruct(st, "bool", items)
	case column.String:
		items := make([]ion.Datum, v.Len())
		for i := 0; i < v.Len(); i++ {
			items[i] = ion.String(string(v.At(i)))
		}
		return columnStruct(st, "string", items)
	default:
		panic(fmt.Sprintf("chunkcat: column kind %s is not supported by the wire format", c.Kind()))
	}
}

func columnStruct(st *ion.Symtab, kind string, values []ion.Datum) ion.Datum {
	return ion.NewStruct(st, []ion.Field{
		{Label: "kind", Value: ion.String(kind)},
		{Label: "values", Value: ion.NewList(st, values).Datum()},
	}).Datum()
}

func decodeChunk(d ion.Datum) (chunk.Chunk, error) {
	rc, ok := d.Field("row_count").Int()
	if !ok {
		return chunk.Chunk{}, fmt.Errorf("chunkcat: chunk missing row_count")
	}
	lst, ok := d.Field("columns").List()
	if !ok {
		return chunk.Chunk{}, fmt.Errorf("chunkcat: chunk missing columns")
	}
	var items []ion.Datum
	items = lst.Items(items)
	cols := make([]chunk.Value, len(items))
	for i, it := range items {
		c, err := decodeColumn(it)
		if err != nil {
			return chunk.Chunk{}, err
		}
		cols[i] = chunk.FromColumn(c)
	}
	return chunk.New(cols, int(rc)), nil
}

func decodeColumn(d ion.Datum) (column.Column, error) {
	kind, ok := d.Field("kind").String()
	if !ok {
		return nil, fmt.Errorf("chunkcat: column missing kind")
	}
	switch kind {
	case "null":
		n, _ := d.Field("len").Int()
		return column.NewNull(int(n)), nil
	case "i64":
		lst, _ := d.Field("values").List()
		var items []ion.Datum
		items = lst.Items(items)
		b := column.NewNumberBuilder[int64](len(items))
		for _, it := range items {
			v, _ := it.Int()
			b.Push(v)
		}
		return b.Build(), nil
	case "f64":
		lst, _ := d.Field("values").List()
		var items []ion.Datum
		items = lst.Items(items)
		b := column.NewNumberBuilder[float64](len(items))
		for _, it := range items {
			v, _ := it.Float()
			b.Push(v)
		}
		return b.Build(), nil
	case "bool":
		lst, _ := d.Field("values").List()
		var items []ion.Datum
		items = lst.Items(items)
		bb := bitmap.NewBuilder(len(items))
		for _, it := range items {
			v, _ := it.Bool()
			bb.Push(v)
		}
		return column.NewBoolean(bb.Build()), nil
	case "string":
		lst, _ := d.Field("values").List()
		var items []ion.Datum
		items = lst.Items(items)
		sb := column.NewStringBuilder(len(items), 0)
		for _, it := range items {
			v, _ := it.String()
			sb.Push([]byte(v))
		}
		return sb.Build(), nil
	default:
		return nil, fmt.Errorf("chunkcat: unsupported column kind %q in wire format", kind)
	}
}
