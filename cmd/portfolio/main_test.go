package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentDir(t *testing.T, posts ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, p := range posts {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, p), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, p, "page.mdx"), []byte("# "+p), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", ""))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRoutesCommand(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.com")
	t.Setenv("CONTENT_DIR", contentDir(t, "hello-world", "second-post"))

	var got []map[string]string
	require.NoError(t, json.Unmarshal([]byte(run(t, "routes")), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "https://example.com", got[0]["url"])
	assert.Equal(t, "https://example.com/blog/hello-world", got[1]["url"])
	assert.Equal(t, "https://example.com/blog/second-post", got[2]["url"])
	assert.NotEmpty(t, got[0]["lastModified"])
}

func TestSitemapCommandStdout(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.com")
	t.Setenv("CONTENT_DIR", contentDir(t, "hello-world"))

	out := run(t, "sitemap")
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<loc>https://example.com/blog/hello-world</loc>")
}

func TestSitemapCommandOutputFile(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.com")
	t.Setenv("CONTENT_DIR", filepath.Join(t.TempDir(), "missing"))
	target := filepath.Join(t.TempDir(), "public", "sitemap.xml")

	run(t, "sitemap", "-o", target)

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<loc>https://example.com</loc>")
	assert.NotContains(t, string(b), "/blog/")
	_, err = os.Stat(target + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSitemapWatchRequiresOutput(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"sitemap", "--watch", "--env-file", ""})
	assert.Error(t, cmd.Execute())
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORTFOLIO_DOTENV_TEST=from-file\n"), 0o644))
	t.Setenv("PORTFOLIO_DOTENV_TEST", "")
	os.Unsetenv("PORTFOLIO_DOTENV_TEST")

	require.NoError(t, loadEnv(path))
	assert.Equal(t, "from-file", os.Getenv("PORTFOLIO_DOTENV_TEST"))
	assert.NoError(t, loadEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "portfolio dev\n", run(t, "version"))
}
