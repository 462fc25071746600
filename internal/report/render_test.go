package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title:   "Orders",
		Columns: []string{"orderId", "total"},
		Rows: [][]string{
			{"ORD-00001", "95.20"},
			{"ORD-00002", "128.52"},
		},
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	_, err := New("PDF")
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New("")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNew_CaseInsensitive(t *testing.T) {
	for _, f := range []string{"html", "Csv", "JSON", " text "} {
		r, err := New(f)
		require.NoError(t, err, f)
		assert.NotNil(t, r)
	}
}

func TestHTMLRenderer(t *testing.T) {
	r, err := New("html")
	require.NoError(t, err)

	out, err := r.Render(sampleTable())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<h1>Orders</h1>")
	assert.Contains(t, s, "<th>orderId</th><th>total</th>")
	assert.Contains(t, s, "<td>ORD-00001</td><td>95.20</td>")
	assert.Equal(t, "text/html; charset=utf-8", r.ContentType())
}

func TestHTMLRenderer_EscapesValues(t *testing.T) {
	r, err := New("html")
	require.NoError(t, err)

	out, err := r.Render(Table{
		Title:   "<script>",
		Columns: []string{"name"},
		Rows:    [][]string{{"Widget & <Gadget>"}},
	})
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, "<script>")
	assert.Contains(t, s, "Widget &amp; &lt;Gadget&gt;")
}

func TestHTMLRenderer_EmptyTable(t *testing.T) {
	r, err := New("html")
	require.NoError(t, err)

	out, err := r.Render(Table{Title: "Empty", Columns: []string{"a"}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "No data available")
}

func TestCSVRenderer(t *testing.T) {
	r, err := New("csv")
	require.NoError(t, err)

	out, err := r.Render(sampleTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "orderId,total", lines[0])
	assert.Equal(t, "ORD-00001,95.20", lines[1])
	assert.Equal(t, "ORD-00002,128.52", lines[2])
}

func TestJSONRenderer(t *testing.T) {
	r, err := New("json")
	require.NoError(t, err)

	out, err := r.Render(sampleTable())
	require.NoError(t, err)

	var doc struct {
		Title string              `json:"title"`
		Rows  []map[string]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "Orders", doc.Title)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "ORD-00001", doc.Rows[0]["orderId"])
	assert.Equal(t, "128.52", doc.Rows[1]["total"])
}

func TestTextRenderer(t *testing.T) {
	r, err := New("text")
	require.NoError(t, err)

	out, err := r.Render(sampleTable())
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "Orders\n"))
	assert.Contains(t, s, "orderId   | total")
	assert.Contains(t, s, "ORD-00001 | 95.20")
}
