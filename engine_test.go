package visitparam

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/arloliu/visitparam/column"
	"github.com/arloliu/visitparam/errs"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	require.NoError(t, err)

	return e
}

func TestNew_Defaults(t *testing.T) {
	e := newEngine(t)
	require.Equal(t, 1, e.parallelism)
	require.Equal(t, DefaultMinRowsPerWorker, e.minRowsPerWorker)
	require.NotNil(t, e.logger)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(WithParallelism(0))
	require.Error(t, err)

	_, err = New(WithMinRowsPerWorker(-1))
	require.Error(t, err)
}

func TestEngine_ExtractColumn(t *testing.T) {
	col := column.FromStrings(
		`{"id":7,"ok":true,"name":"café","tags":[1,2]}`,
		`{"name":"b"}`,
		`{"id":-2,"ok":false}`,
	)
	e := newEngine(t)

	tests := []struct {
		kind Kind
		key  string
		want []string
	}{
		{KindHas, "id", []string{"1", "0", "1"}},
		{KindUInt, "id", []string{"7", "0", "0"}},
		{KindInt, "id", []string{"7", "0", "-2"}},
		{KindFloat, "id", []string{"7", "0", "-2"}},
		{KindBool, "ok", []string{"1", "0", "0"}},
		{KindRaw, "tags", []string{"[1,2]", "", ""}},
		{KindRaw, "name", []string{`"café"`, `"b"`, ""}},
		{KindString, "name", []string{"café", "b", ""}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.kind, tt.key), func(t *testing.T) {
			res, err := e.Extract(tt.kind, Column(col), Const(tt.key))
			require.NoError(t, err)
			require.False(t, res.Const)
			require.Equal(t, tt.kind, res.Kind)
			require.Equal(t, len(tt.want), res.Len())

			got := make([]string, res.Len())
			for i := range got {
				got[i] = res.Format(i)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_ExtractConstant(t *testing.T) {
	e := newEngine(t)
	text := Const(`{"a":5,"s":"x\ty","f":1.5}`)

	res, err := e.Extract(KindUInt, text, Const("a"))
	require.NoError(t, err)
	require.True(t, res.Const)
	require.Equal(t, []uint64{5}, res.UInts)

	res, err = e.Extract(KindFloat, text, Const("f"))
	require.NoError(t, err)
	require.Equal(t, []float64{1.5}, res.Floats)

	res, err = e.Extract(KindString, text, Const("s"))
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	require.Equal(t, "x\ty", res.Strings.String(0))
	require.True(t, res.Strings.Terminated)

	res, err = e.Extract(KindHas, text, Const("missing"))
	require.NoError(t, err)
	require.Equal(t, []bool{false}, res.Bools)

	res, err = e.Extract(KindRaw, text, Const("missing"))
	require.NoError(t, err)
	require.Equal(t, "", res.Format(0))
}

func TestEngine_NonConstantKey(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := newEngine(t, WithLogger(logger))
	keys := column.FromStrings("a", "b")

	_, err := e.Extract(KindUInt, Column(column.FromStrings(`"a":1`, `"b":2`)), Column(keys))
	require.ErrorIs(t, err, errs.ErrNonConstantKey)

	_, err = e.Extract(KindString, Const(`"a":1`), Column(keys))
	require.ErrorIs(t, err, errs.ErrNonConstantKey)

	require.Contains(t, buf.String(), "rejected extraction")
	require.Contains(t, buf.String(), "visitParamExtractString")
}

func TestEngine_InvalidArguments(t *testing.T) {
	e := newEngine(t)

	_, err := e.Extract(Kind(0), Const("x"), Const("a"))
	require.ErrorIs(t, err, errs.ErrUnknownKind)

	_, err = e.Extract(KindHas, Column(nil), Const("a"))
	require.ErrorIs(t, err, errs.ErrNilArgument)

	// A missing key is reported like a missing text, not as a per-row key.
	_, err = e.Extract(KindHas, Const("x"), Arg{})
	require.ErrorIs(t, err, errs.ErrNilArgument)
	_, err = e.Extract(KindString, Column(column.FromStrings("x")), Column(nil))
	require.ErrorIs(t, err, errs.ErrNilArgument)
	_, err = e.Extract(KindHas, Arg{}, Const("a"))
	require.ErrorIs(t, err, errs.ErrNilArgument)

	bad := &column.Strings{Data: []byte("ab"), Offsets: []uint64{5}}
	_, err = e.Extract(KindHas, Column(bad), Const("a"))
	require.ErrorIs(t, err, errs.ErrInvalidOffsets)
}

func TestEngine_DebugLogPerBatch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := newEngine(t, WithLogger(logger))

	_, err := e.Extract(KindInt, Column(column.FromStrings(`"n":1`)), Const("n"))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "extracted column")
	require.Contains(t, buf.String(), "rows=1")
}

func TestEngine_WithNilLogger(t *testing.T) {
	e := newEngine(t, WithLogger(nil))
	_, err := e.Extract(KindHas, Column(column.FromStrings(`"a":1`)), Const("a"))
	require.NoError(t, err)
}

func TestEngine_Ranges(t *testing.T) {
	e := newEngine(t, WithParallelism(4), WithMinRowsPerWorker(10))

	require.Equal(t, [][2]int{{0, 5}}, e.ranges(5))
	require.Equal(t, [][2]int{{0, 12}, {12, 25}}, e.ranges(25))
	require.Equal(t, [][2]int{{0, 25}, {25, 50}, {50, 75}, {75, 102}}, e.ranges(102))
	require.Equal(t, [][2]int{{0, 0}}, e.ranges(0))
}

func TestEngine_ParallelMatchesSequential(t *testing.T) {
	rows := make([]string, 0, 103)
	for i := range 103 {
		switch i % 5 {
		case 0:
			rows = append(rows, fmt.Sprintf(`{"n":%d,"s":"r%d","ok":true}`, i, i))
		case 1:
			rows = append(rows, `{"other":1}`)
		case 2:
			rows = append(rows, fmt.Sprintf(`{"s":"bad\u12","n":-%d}`, i))
		case 3:
			rows = append(rows, `{"x":1,"n":`)
		default:
			rows = append(rows, fmt.Sprintf(`{"n":"%d.5","s":"t\"%d"}`, i, i))
		}
	}
	col := column.FromStrings(rows...)

	seq := newEngine(t)
	par := newEngine(t, WithParallelism(4), WithMinRowsPerWorker(7))

	for _, kind := range Kinds() {
		for _, key := range []string{"n", "s", "ok"} {
			want, err := seq.Extract(kind, Column(col), Const(key))
			require.NoError(t, err)
			got, err := par.Extract(kind, Column(col), Const(key))
			require.NoError(t, err)

			require.Equal(t, want.Len(), got.Len(), "%s/%s", kind, key)
			for i := 0; i < want.Len(); i++ {
				require.Equal(t, want.Format(i), got.Format(i), "%s/%s row %d", kind, key, i)
			}
			if kind.IsString() {
				require.NoError(t, got.Strings.Validate())
				require.True(t, got.Strings.Terminated)
			}
		}
	}
}

func TestConvenienceWrappers(t *testing.T) {
	col := column.FromStrings(`{"a":"x","n":3,"b":true}`, `{}`)

	has, err := Has(col, "a")
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, has)

	u, err := ExtractUInt(col, "n")
	require.NoError(t, err)
	require.Equal(t, []uint64{3, 0}, u)

	i, err := ExtractInt(col, "n")
	require.NoError(t, err)
	require.Equal(t, []int64{3, 0}, i)

	f, err := ExtractFloat(col, "n")
	require.NoError(t, err)
	require.Equal(t, []float64{3, 0}, f)

	b, err := ExtractBool(col, "b")
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, b)

	raw, err := ExtractRaw(col, "a")
	require.NoError(t, err)
	require.Equal(t, []string{`"x"`, ""}, raw.Rows())

	s, err := ExtractString(col, "a")
	require.NoError(t, err)
	require.Equal(t, []string{"x", ""}, s.Rows())

	_, err = ExtractString(nil, "a")
	require.ErrorIs(t, err, errs.ErrNilArgument)
}
