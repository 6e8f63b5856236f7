package export

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("ñ", 80)
	got := truncate(long, 60)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 60, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))

	short := "Feria de proyectos"
	assert.Equal(t, short, truncate(short, 60))
}

func TestPDFExporterRendersLongSpanishTitles(t *testing.T) {
	exporter := NewPDFExporter()
	content, err := exporter.Render(Dataset{
		Headers: []string{"Title"},
		Rows: []map[string]string{
			{"Title": strings.Repeat("Jornadas de Investigación Científica y Tecnológica ", 3)},
		},
	}, "Próximos eventos")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}
