package visitparam

import (
	"strconv"

	"github.com/arloliu/visitparam/column"
)

// Result holds the output of one extraction. Exactly one of the slices (or
// Strings) is populated, chosen by Kind:
//
//	KindHas, KindBool   Bools
//	KindUInt            UInts
//	KindInt             Ints
//	KindFloat           Floats
//	KindRaw, KindString Strings (terminated column)
//
// Const is set when the searched text was a constant; the result then has one row.
type Result struct {
	Kind    Kind
	Const   bool
	Bools   []bool
	UInts   []uint64
	Ints    []int64
	Floats  []float64
	Strings *column.Strings
}

// Len returns the number of rows in the result.
func (r *Result) Len() int {
	switch r.Kind {
	case KindHas, KindBool:
		return len(r.Bools)
	case KindUInt:
		return len(r.UInts)
	case KindInt:
		return len(r.Ints)
	case KindFloat:
		return len(r.Floats)
	case KindRaw, KindString:
		if r.Strings == nil {
			return 0
		}

		return r.Strings.Len()
	default:
		return 0
	}
}

// Format renders row i as text. Booleans print as 1 and 0.
func (r *Result) Format(i int) string {
	switch r.Kind {
	case KindHas, KindBool:
		if r.Bools[i] {
			return "1"
		}

		return "0"
	case KindUInt:
		return strconv.FormatUint(r.UInts[i], 10)
	case KindInt:
		return strconv.FormatInt(r.Ints[i], 10)
	case KindFloat:
		return strconv.FormatFloat(r.Floats[i], 'g', -1, 64)
	case KindRaw, KindString:
		return r.Strings.String(i)
	default:
		return ""
	}
}
