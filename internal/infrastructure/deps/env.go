package deps

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplyPrefixEnv prepends environment variables derived from prefix.
// It must run before GStreamer is initialised so the plugin scanner sees
// the prefix's plugin directory.
func ApplyPrefixEnv(prefix string) {
	if strings.TrimSpace(prefix) == "" {
		return
	}

	for key, values := range prefixEnv(prefix) {
		_ = os.Setenv(key, prependPathList(os.Getenv(key), values...))
	}
}

// CommandEnvWithPrefix returns an environment suitable for exec.Cmd.Env.
// It prepends prefix-derived paths to the current environment.
func CommandEnvWithPrefix(prefix string) []string {
	if strings.TrimSpace(prefix) == "" {
		return os.Environ()
	}

	updates := prefixEnv(prefix)
	base := os.Environ()

	// Convert base env to map.
	m := make(map[string]string, len(base))
	for _, kv := range base {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			m[k] = v
		}
	}

	for k, values := range updates {
		m[k] = prependPathList(m[k], values...)
	}

	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}

func prefixEnv(prefix string) map[string][]string {
	prefix = filepath.Clean(prefix)

	libDirs := []string{
		filepath.Join(prefix, "lib"),
		filepath.Join(prefix, "lib64"),
		filepath.Join(prefix, "lib", "aarch64-linux-gnu"),
		filepath.Join(prefix, "lib", "arm-linux-gnueabihf"),
		filepath.Join(prefix, "lib", "x86_64-linux-gnu"),
	}

	pkgConfig := make([]string, 0, len(libDirs)+1)
	plugins := make([]string, 0, len(libDirs))
	for _, dir := range libDirs {
		pkgConfig = append(pkgConfig, filepath.Join(dir, "pkgconfig"))
		plugins = append(plugins, filepath.Join(dir, "gstreamer-1.0"))
	}
	pkgConfig = append(pkgConfig, filepath.Join(prefix, "share", "pkgconfig"))

	return map[string][]string{
		"PKG_CONFIG_PATH":     pkgConfig,
		"LD_LIBRARY_PATH":     libDirs,
		"GST_PLUGIN_PATH_1_0": plugins,
	}
}

func prependPathList(existing string, values ...string) string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(values)+4)

	add := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, v := range values {
		add(v)
	}

	if existing != "" {
		for _, v := range strings.Split(existing, ":") {
			add(v)
		}
	}

	return strings.Join(out, ":")
}
