package filespecs

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mtth/filespecs/internal/effect"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	afs := afero.NewMemMapFs()
	for fp, contents := range map[string]string{
		"/proj/.filespecs.yaml": `
patterns: ["data/*.nc", "~/extra/*.pp"]
exclude: ["*.tmp"]
base: data
recursive: true
`,
		"/proj/abs.yaml":     "base: /srv/data\n",
		"/proj/empty.yaml":   "",
		"/proj/invalid.yaml": "patterns: {",
		"/proj/unknown.yaml": "pattern: [\"*\"]\n",
	} {
		require.NoError(t, afero.WriteFile(afs, fp, []byte(contents), 0644))
	}
	require.NoError(t, afs.MkdirAll("/other", 0755))
	defer effect.Swap(&fileSystem, afs)()

	for _, tc := range []struct {
		path string
		want *Config
	}{
		{
			path: "/proj",
			want: &Config{
				Patterns:  []string{"data/*.nc", "~/extra/*.pp"},
				Exclude:   []string{"*.tmp"},
				Base:      "/proj/data",
				Recursive: true,
			},
		},
		{
			path: "/proj/abs.yaml",
			want: &Config{Base: "/srv/data"},
		},
		{
			path: "/proj/empty.yaml",
			want: &Config{},
		},
	} {
		t.Run(tc.path, func(t *testing.T) {
			got, err := ReadConfig(tc.path)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tc.want, got))
		})
	}

	for _, tc := range []string{
		"/proj/invalid.yaml",
		"/proj/unknown.yaml",
	} {
		t.Run(tc, func(t *testing.T) {
			got, err := ReadConfig(tc)
			assert.Nil(t, got)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	for key, tc := range map[string]string{
		"folder": "/non/existent/path",
		"file":   "/other",
	} {
		t.Run(fmt.Sprintf("missing %s", key), func(t *testing.T) {
			got, err := ReadConfig(tc)
			assert.Nil(t, got)
			require.ErrorIs(t, err, ErrMissingConfig)
		})
	}
}

func TestFindConfig(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/proj/.filespecs.yaml", []byte("patterns: [\"*\"]\n"), 0644))
	require.NoError(t, afero.WriteFile(afs, "/bad/.filespecs.yaml", []byte("nope: 1\n"), 0644))
	require.NoError(t, afs.MkdirAll("/empty", 0755))
	defer effect.Swap(&fileSystem, afs)()

	t.Run("found", func(t *testing.T) {
		got, err := FindConfig("/proj")
		require.NoError(t, err)
		assert.Equal(t, []string{"*"}, got.Patterns)
	})

	t.Run("absent", func(t *testing.T) {
		got, err := FindConfig("/empty")
		require.NoError(t, err)
		assert.Equal(t, &Config{}, got)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := FindConfig("/bad")
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestConfig_Options(t *testing.T) {
	afs := memFiles(t, "/srv/data/a.nc", "/srv/data/b.tmp", "/srv/data/sub/c.nc")

	t.Run("applied", func(t *testing.T) {
		cfg := &Config{Exclude: []string{"*.tmp"}, Base: "/srv/data", Recursive: true}
		opts, err := cfg.Options()
		require.NoError(t, err)
		got, err := Expand([]string{"**/*"}, append(opts, WithFs(afs))...)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"/srv/data/a.nc", "/srv/data/sub", "/srv/data/sub/c.nc"}, got)
	})

	t.Run("invalid exclusion", func(t *testing.T) {
		cfg := &Config{Exclude: []string{"["}}
		opts, err := cfg.Options()
		assert.Nil(t, opts)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
