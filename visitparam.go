package visitparam

import (
	"github.com/arloliu/visitparam/batch"
	"github.com/arloliu/visitparam/column"
	"github.com/arloliu/visitparam/errs"
	"github.com/arloliu/visitparam/extract"
)

func checkColumn(col *column.Strings) error {
	if col == nil {
		return errs.ErrNilArgument
	}

	return col.Validate()
}

// Has reports per row whether key occurs in col.
func Has(col *column.Strings, key string) ([]bool, error) {
	if err := checkColumn(col); err != nil {
		return nil, err
	}

	return batch.VectorConstant(col, key, extract.Has{}), nil
}

// ExtractUInt extracts key as an unsigned integer per row.
func ExtractUInt(col *column.Strings, key string) ([]uint64, error) {
	if err := checkColumn(col); err != nil {
		return nil, err
	}

	return batch.VectorConstant(col, key, extract.Numeric[uint64]{}), nil
}

// ExtractInt extracts key as a signed integer per row.
func ExtractInt(col *column.Strings, key string) ([]int64, error) {
	if err := checkColumn(col); err != nil {
		return nil, err
	}

	return batch.VectorConstant(col, key, extract.Numeric[int64]{}), nil
}

// ExtractFloat extracts key as a float per row.
func ExtractFloat(col *column.Strings, key string) ([]float64, error) {
	if err := checkColumn(col); err != nil {
		return nil, err
	}

	return batch.VectorConstant(col, key, extract.Numeric[float64]{}), nil
}

// ExtractBool reports per row whether the value of key is the literal true.
func ExtractBool(col *column.Strings, key string) ([]bool, error) {
	if err := checkColumn(col); err != nil {
		return nil, err
	}

	return batch.VectorConstant(col, key, extract.Bool{}), nil
}

// ExtractRaw extracts the unparsed bytes of the value of key per row.
func ExtractRaw(col *column.Strings, key string) (*column.Strings, error) {
	if err := checkColumn(col); err != nil {
		return nil, err
	}

	return batch.VectorConstantString(col, key, extract.Raw{}), nil
}

// ExtractString extracts and unescapes the string value of key per row.
func ExtractString(col *column.Strings, key string) (*column.Strings, error) {
	if err := checkColumn(col); err != nil {
		return nil, err
	}

	return batch.VectorConstantString(col, key, extract.String{}), nil
}
