package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const validDefinition = `version: "1.0"
name: Demo
menus:
  - id: file
    label: File
    items:
      - id: new
        label: New
      - id: sep
        divider: true
      - id: quit
        label: Quit
  - id: catalog
    label: Catalog
    hierarchy:
      child_keys: [items]
      label_field: label
      value_field: value
      options:
        - label: Laptop
          value: laptop
`

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	cmd.SetArgs(args)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	err := cmd.Execute()
	return buf.String(), err
}

func writeDefinition(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
