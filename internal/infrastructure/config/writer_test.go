package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableHeaders(content string) []string {
	var headers []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			headers = append(headers, line)
		}
	}
	return headers
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(content)
	assert.True(t, strings.HasPrefix(text, "backend = "), "top-level keys come first:\n%s", text)
	assert.Contains(t, strings.SplitN(text, "\n", 2)[0], "nexus")
	assert.Equal(t, []string{
		"[audio]", "[display]", "[gstreamer]", "[logging]", "[playback]", "[video]", "[volume]",
	}, tableHeaders(text))
}

func TestSortTOMLSections(t *testing.T) {
	input := `backend = 'nexus'

[volume]
initial = 1.0

[display]
width = 1280

[audio]
caps = ''
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{"[audio]", "[display]", "[volume]"}, tableHeaders(result))
	assert.True(t, strings.HasPrefix(result, "backend = 'nexus'\n\n[audio]"))
	assert.True(t, strings.HasSuffix(result, "initial = 1.0\n"))
}

func TestEncode_NilConfig(t *testing.T) {
	_, err := Encode(nil)
	require.Error(t, err)
}
