package deps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrependPathList(t *testing.T) {
	got := prependPathList("/usr/lib:/opt/gst/lib", "/opt/gst/lib", "/opt/gst/lib64", " ")
	assert.Equal(t, "/opt/gst/lib:/opt/gst/lib64:/usr/lib", got)

	assert.Equal(t, "/a", prependPathList("", "/a"))
}

func TestPrefixEnv(t *testing.T) {
	env := prefixEnv("/opt/gst/")

	require.Contains(t, env, "GST_PLUGIN_PATH_1_0")
	assert.Contains(t, env["GST_PLUGIN_PATH_1_0"], "/opt/gst/lib/gstreamer-1.0")
	assert.Contains(t, env["PKG_CONFIG_PATH"], "/opt/gst/lib/pkgconfig")
	assert.Contains(t, env["PKG_CONFIG_PATH"], "/opt/gst/share/pkgconfig")
	assert.Contains(t, env["LD_LIBRARY_PATH"], "/opt/gst/lib64")
}

func TestApplyPrefixEnv(t *testing.T) {
	t.Setenv("GST_PLUGIN_PATH_1_0", "/usr/local/lib/gstreamer-1.0")
	t.Setenv("PKG_CONFIG_PATH", "")
	t.Setenv("LD_LIBRARY_PATH", "")

	ApplyPrefixEnv("/opt/gst")

	t.Run("prefix paths come first", func(t *testing.T) {
		env := CommandEnvWithPrefix("")
		var plugin string
		for _, kv := range env {
			if v, ok := strings.CutPrefix(kv, "GST_PLUGIN_PATH_1_0="); ok {
				plugin = v
			}
		}
		require.NotEmpty(t, plugin)
		assert.True(t, strings.HasPrefix(plugin, "/opt/gst/lib/gstreamer-1.0:"))
		assert.True(t, strings.HasSuffix(plugin, ":/usr/local/lib/gstreamer-1.0"))
	})
}

func TestApplyPrefixEnv_EmptyPrefix(t *testing.T) {
	t.Setenv("GST_PLUGIN_PATH_1_0", "/keep")

	ApplyPrefixEnv("  ")

	env := CommandEnvWithPrefix("")
	assert.Contains(t, env, "GST_PLUGIN_PATH_1_0=/keep")
}
