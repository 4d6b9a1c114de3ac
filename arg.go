package visitparam

import "github.com/arloliu/visitparam/column"

// Arg is one argument of an extraction: either a constant string or a column
// with one string per row.
type Arg struct {
	constant []byte
	column   *column.Strings
	isConst  bool
}

// Const wraps a constant argument.
func Const[S ~string | ~[]byte](value S) Arg {
	return Arg{constant: []byte(value), isConst: true}
}

// Column wraps a per-row argument.
func Column(col *column.Strings) Arg {
	return Arg{column: col}
}

// IsConst reports whether the argument is a constant.
func (a Arg) IsConst() bool {
	return a.isConst
}

// Value returns the constant value; nil for column arguments.
func (a Arg) Value() []byte {
	return a.constant
}

// Strings returns the column; nil for constant arguments.
func (a Arg) Strings() *column.Strings {
	return a.column
}

// Len returns the number of rows the argument contributes: 1 for a constant.
func (a Arg) Len() int {
	if a.isConst {
		return 1
	}
	if a.column == nil {
		return 0
	}

	return a.column.Len()
}
