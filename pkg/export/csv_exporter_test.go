package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"reg_no", "gpa"},
		Rows: [][]string{
			{"24BCE10001", "9.00"},
			{"23BCE10042", "0.00"},
		},
	}

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	assert.Equal(t, "reg_no,gpa\n24BCE10001,9.00\n23BCE10042,0.00\n", string(out))
}

func TestCSVExporterRejectsBadShape(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)

	_, err = NewCSVExporter().Render(Dataset{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"only-one"}},
	})
	require.Error(t, err)
}

func TestPDFExporterRenderTable(t *testing.T) {
	out, err := NewPDFExporter().RenderTable(Dataset{
		Headers: []string{"reg_no", "gpa"},
		Rows:    [][]string{{"24BCE10001", "9.00"}},
	}, "GPA Summary")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))

	_, err = NewPDFExporter().RenderTable(Dataset{}, "empty")
	require.Error(t, err)
}

func TestPDFExporterRenderDocument(t *testing.T) {
	out, err := NewPDFExporter().RenderDocument("Academic Transcript",
		"Student: Asha Rao (Reg No: 24BCE10001)",
		[]string{"Course: Data Structures (CSE0001) | Grade: A"},
		"Cumulative GPA: 9.00")
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}
