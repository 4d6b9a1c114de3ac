package visitparam

import (
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"github.com/arloliu/visitparam/column"
	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/require"
)

// Well-formed flat objects must decode the same way a real JSON parser reads them.
func TestExtract_AgreesWithJSONParser(t *testing.T) {
	names := []string{"plain", "tab\there", `quo"te`, "é€中", "<b>&amp;", `back\slash`, "ctrl\x01", ""}

	rows := make([]string, 0, len(names))
	for i, name := range names {
		quoted, err := json.Marshal(name)
		require.NoError(t, err)
		rows = append(rows, fmt.Sprintf(`{"id":%d,"name":%s,"score":%s,"ok":%t}`,
			i*37-100, quoted, strconv.FormatFloat(float64(i)*1.25-3, 'g', -1, 64), i%2 == 0))
	}
	col := column.FromStrings(rows...)

	ids, err := ExtractInt(col, "id")
	require.NoError(t, err)
	scores, err := ExtractFloat(col, "score")
	require.NoError(t, err)
	oks, err := ExtractBool(col, "ok")
	require.NoError(t, err)
	strs, err := ExtractString(col, "name")
	require.NoError(t, err)
	raws, err := ExtractRaw(col, "name")
	require.NoError(t, err)
	rawIDs, err := ExtractRaw(col, "id")
	require.NoError(t, err)

	for i, row := range rows {
		data := []byte(row)

		wantID, err := jsonparser.GetInt(data, "id")
		require.NoError(t, err)
		require.Equal(t, wantID, ids[i], row)

		wantScore, err := jsonparser.GetFloat(data, "score")
		require.NoError(t, err)
		require.InDelta(t, wantScore, scores[i], 1e-12, row)

		wantOK, err := jsonparser.GetBoolean(data, "ok")
		require.NoError(t, err)
		require.Equal(t, wantOK, oks[i], row)

		wantName, err := jsonparser.GetString(data, "name")
		require.NoError(t, err)
		require.Equal(t, wantName, strs.String(i), row)

		rawName, _, _, err := jsonparser.Get(data, "name")
		require.NoError(t, err)
		require.Equal(t, `"`+string(rawName)+`"`, raws.String(i), row)

		rawID, _, _, err := jsonparser.Get(data, "id")
		require.NoError(t, err)
		require.Equal(t, string(rawID), rawIDs.String(i), row)
	}
}
