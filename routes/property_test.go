package routes

import (
	"path"
	"slices"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"pgregory.net/rapid"
)

var (
	segmentGen  = rapid.SampledFrom([]string{"a", "b", "c", "hello-world", "2024", "notes"})
	fileNameGen = rapid.SampledFrom([]string{DefaultIndexFile, "page.md", "Page.mdx", "notes.txt", "page.mdx~", "index.mdx"})
)

// contentTree draws a random tree and returns it with the slugs discovery is
// expected to report. Directory segments never collide with file names, so
// every generated path is valid in a MapFS.
func contentTree(t *rapid.T) (fstest.MapFS, []string) {
	fsys := fstest.MapFS{}
	want := map[string]struct{}{}
	n := rapid.IntRange(0, 20).Draw(t, "files")
	for i := 0; i < n; i++ {
		dirs := rapid.SliceOfN(segmentGen, 0, 4).Draw(t, "dirs")
		name := fileNameGen.Draw(t, "name")
		p := path.Join(append(slices.Clone(dirs), name)...)
		fsys[p] = &fstest.MapFile{Data: []byte("x")}
		if name == DefaultIndexFile {
			want[path.Join(dirs...)] = struct{}{}
		}
	}
	slugs := make([]string, 0, len(want))
	for s := range want {
		if s == "." {
			s = ""
		}
		slugs = append(slugs, s)
	}
	return fsys, slugs
}

func TestSlugsMatchIndexFilesProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fsys, want := contentTree(t)
		got := slices.Collect(Slugs(fsys, DefaultIndexFile))

		slices.Sort(want)
		sorted := slices.Clone(got)
		slices.Sort(sorted)
		if !slices.Equal(sorted, want) {
			t.Fatalf("slugs = %v, want %v", got, want)
		}
		if len(slices.Compact(sorted)) != len(got) {
			t.Fatalf("duplicate slugs in %v", got)
		}
		for _, s := range got {
			if strings.Contains(s, `\`) || strings.HasPrefix(s, "/") || strings.HasSuffix(s, "/") {
				t.Fatalf("slug %q is not a relative slash path", s)
			}
		}
	})
}

func TestRouteCountProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fsys, want := contentTree(t)
		cfg := DefaultConfig()
		cfg.StaticPaths = rapid.SliceOfNDistinct(rapid.SampledFrom([]string{"", "/about", "/projects"}), 1, 3, rapid.ID[string]).Draw(t, "static")

		got := cfg.RoutesFS(fsys, time.Now())
		if len(got) != len(cfg.StaticPaths)+len(want) {
			t.Fatalf("got %d routes, want %d", len(got), len(cfg.StaticPaths)+len(want))
		}
		seen := map[string]bool{}
		for _, r := range got {
			if seen[r.URL] {
				t.Fatalf("duplicate route %q", r.URL)
			}
			seen[r.URL] = true
			if !strings.HasPrefix(r.URL, cfg.SiteURL) {
				t.Fatalf("route %q outside site %q", r.URL, cfg.SiteURL)
			}
		}
	})
}
