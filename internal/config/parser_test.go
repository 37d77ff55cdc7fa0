package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/popmenu/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: "Editor"
theme: dark
menus:
  - id: file
    label: File
    items:
      - id: new
        label: New
        icon: file
      - id: sep
        divider: true
      - id: recent
        label: Recent
        children:
          - id: a
            label: a.txt
  - id: catalog
    label: Catalog
    mode: cascade
    disabled: true
    hierarchy:
      child_keys: [items]
      label_field: label
      value_field: value
      options:
        - label: Computers
          value: computers
          items:
            - label: Laptop
              value: laptop
`

	invalidYAML := `version: "1.0"
name: [broken
`

	missingMenus := `version: "1.0"
name: "No Menus"
`

	badVersion := `version: "beta"
name: "Bad Version"
menus:
  - id: file
    label: File
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid definition is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "Editor", cfg.Name)
				require.Equal(t, "dark", cfg.Theme)
				require.Len(t, cfg.Menus, 2)
				require.Len(t, cfg.Menus[0].Items, 3)
				require.True(t, cfg.Menus[0].Items[1].Divider)
				require.Len(t, cfg.Menus[0].Items[2].Children, 1)
				require.True(t, cfg.Menus[1].IsHierarchy())
				require.True(t, cfg.Menus[1].Disabled)
				require.False(t, cfg.Menus[0].Disabled)
				require.Len(t, cfg.Menus[1].Hierarchy.Options, 1)
			},
		},
		{
			name:     "invalid yaml returns parse error with a line",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "missing menus returns validation error",
			contents: missingMenus,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "menus")
			},
		},
		{
			name:     "schema version must follow major.minor",
			contents: badVersion,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "version")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "menus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestExampleDefinitionsAreValid(t *testing.T) {
	t.Parallel()

	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "menus", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		cfg, err := ParseConfig(path)
		require.NoError(t, err, path)
		require.NotEmpty(t, cfg.Menus, path)
	}
}
