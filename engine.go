package visitparam

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/arloliu/visitparam/batch"
	"github.com/arloliu/visitparam/column"
	"github.com/arloliu/visitparam/errs"
	"github.com/arloliu/visitparam/extract"
	"github.com/arloliu/visitparam/internal/options"
)

// Engine dispatches extractions by Kind.
//
// An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	logger           *slog.Logger
	parallelism      int
	minRowsPerWorker int
}

// New creates an Engine.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		logger:           discardLogger(),
		parallelism:      1,
		minRowsPerWorker: DefaultMinRowsPerWorker,
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Extract runs the extraction selected by kind over text with key.
//
// text may be a constant or a column; key must be a constant. A column key
// fails with errs.ErrNonConstantKey before any scanning.
func (e *Engine) Extract(kind Kind, text Arg, key Arg) (*Result, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownKind, kind)
	}

	if !key.IsConst() && key.Strings() == nil {
		return nil, errs.ErrNilArgument
	}
	if !key.IsConst() {
		var err error
		if text.IsConst() {
			err = batch.ConstantVector(text.Value(), key.Strings())
		} else {
			err = batch.VectorVector(text.Strings(), key.Strings())
		}
		e.logger.Warn("rejected extraction", "function", kind.FunctionName(), "err", err)

		return nil, err
	}
	keyStr := string(key.Value())

	if text.IsConst() {
		return e.extractConst(kind, text.Value(), keyStr), nil
	}

	col := text.Strings()
	if col == nil {
		return nil, errs.ErrNilArgument
	}
	if err := col.Validate(); err != nil {
		return nil, err
	}

	res := e.extractColumn(kind, col, keyStr)
	e.logger.Debug("extracted column",
		"function", kind.FunctionName(),
		"key", keyStr,
		"rows", col.Len(),
		"bytes", len(col.Data),
	)

	return res, nil
}

func (e *Engine) extractConst(kind Kind, data []byte, key string) *Result {
	res := &Result{Kind: kind, Const: true}

	switch kind {
	case KindHas:
		res.Bools = []bool{batch.ConstantConstant(data, key, extract.Has{})}
	case KindBool:
		res.Bools = []bool{batch.ConstantConstant(data, key, extract.Bool{})}
	case KindUInt:
		res.UInts = []uint64{batch.ConstantConstant(data, key, extract.Numeric[uint64]{})}
	case KindInt:
		res.Ints = []int64{batch.ConstantConstant(data, key, extract.Numeric[int64]{})}
	case KindFloat:
		res.Floats = []float64{batch.ConstantConstant(data, key, extract.Numeric[float64]{})}
	case KindRaw:
		res.Strings = singleRow(batch.ConstantConstantString(data, key, extract.Raw{}))
	case KindString:
		res.Strings = singleRow(batch.ConstantConstantString(data, key, extract.String{}))
	}

	return res
}

func singleRow(value []byte) *column.Strings {
	col := &column.Strings{Terminated: true}
	col.Append(value)

	return col
}

func (e *Engine) extractColumn(kind Kind, col *column.Strings, key string) *Result {
	res := &Result{Kind: kind}

	switch kind {
	case KindHas:
		res.Bools = extractFixed(e, col, key, extract.Has{})
	case KindBool:
		res.Bools = extractFixed(e, col, key, extract.Bool{})
	case KindUInt:
		res.UInts = extractFixed(e, col, key, extract.Numeric[uint64]{})
	case KindInt:
		res.Ints = extractFixed(e, col, key, extract.Numeric[int64]{})
	case KindFloat:
		res.Floats = extractFixed(e, col, key, extract.Numeric[float64]{})
	case KindRaw:
		res.Strings = extractStrings(e, col, key, extract.Raw{})
	case KindString:
		res.Strings = extractStrings(e, col, key, extract.String{})
	}

	return res
}

// ranges splits rows into contiguous [from, to) ranges, one per worker.
func (e *Engine) ranges(rows int) [][2]int {
	workers := e.parallelism
	if limit := rows / e.minRowsPerWorker; limit < workers {
		workers = limit
	}
	if workers <= 1 {
		return [][2]int{{0, rows}}
	}

	out := make([][2]int, workers)
	step := rows / workers
	for i := range out {
		from := i * step
		to := from + step
		if i == workers-1 {
			to = rows
		}
		out[i] = [2]int{from, to}
	}

	return out
}

func extractFixed[T any](e *Engine, col *column.Strings, key string, ex extract.Fixed[T]) []T {
	res := make([]T, col.Len())
	parts := e.ranges(col.Len())
	if len(parts) == 1 {
		batch.VectorConstantInto(col, key, ex, res)
		return res
	}

	var wg sync.WaitGroup
	for _, r := range parts {
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			batch.VectorConstantInto(col.Slice(from, to), key, ex, res[from:to])
		}(r[0], r[1])
	}
	wg.Wait()

	return res
}

func extractStrings(e *Engine, col *column.Strings, key string, ex extract.Appender) *column.Strings {
	parts := e.ranges(col.Len())
	if len(parts) == 1 {
		return batch.VectorConstantString(col, key, ex)
	}

	outs := make([]*column.Strings, len(parts))
	var wg sync.WaitGroup
	for i, r := range parts {
		wg.Add(1)
		go func(i, from, to int) {
			defer wg.Done()
			outs[i] = batch.VectorConstantString(col.Slice(from, to), key, ex)
		}(i, r[0], r[1])
	}
	wg.Wait()

	return column.Concat(outs...)
}
