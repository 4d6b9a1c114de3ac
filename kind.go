package visitparam

import (
	"fmt"
	"strings"

	"github.com/arloliu/visitparam/errs"
)

// Kind selects the extractor and the result type of an extraction.
type Kind uint8

const (
	KindHas    Kind = iota + 1 // key presence, []bool
	KindUInt                   // unsigned integer, []uint64
	KindInt                    // signed integer, []int64
	KindFloat                  // floating point, []float64
	KindBool                   // bare true literal, []bool
	KindRaw                    // raw value bytes, string column
	KindString                 // unescaped string, string column
)

var kindNames = [...]string{
	KindHas:    "has",
	KindUInt:   "uint",
	KindInt:    "int",
	KindFloat:  "float",
	KindBool:   "bool",
	KindRaw:    "raw",
	KindString: "string",
}

var kindFunctions = [...]string{
	KindHas:    "visitParamHas",
	KindUInt:   "visitParamExtractUInt",
	KindInt:    "visitParamExtractInt",
	KindFloat:  "visitParamExtractFloat",
	KindBool:   "visitParamExtractBool",
	KindRaw:    "visitParamExtractRaw",
	KindString: "visitParamExtractString",
}

// IsValid reports whether k is a supported kind.
func (k Kind) IsValid() bool {
	return k >= KindHas && k <= KindString
}

// IsString reports whether k produces a string column.
func (k Kind) IsString() bool {
	return k == KindRaw || k == KindString
}

func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// FunctionName returns the SQL function name the kind corresponds to.
func (k Kind) FunctionName() string {
	if !k.IsValid() {
		return ""
	}

	return kindFunctions[k]
}

// ParseKind accepts a short kind name ("uint") or a function name
// ("visitParamExtractUInt"), case-insensitively.
func ParseKind(name string) (Kind, error) {
	for k := KindHas; k <= KindString; k++ {
		if strings.EqualFold(name, kindNames[k]) || strings.EqualFold(name, kindFunctions[k]) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownKind, name)
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, KindString)
	for k := KindHas; k <= KindString; k++ {
		out = append(out, k)
	}

	return out
}
