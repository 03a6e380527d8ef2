package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFormFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFormFields(t *testing.T) {
	require := require.New(t)

	path := writeFormFile(t, `
- name: username
  label: "Username: "
- name: password
  label: "Password: "
  sensitive: true
`)

	fields, err := loadFormFields(path)
	require.NoError(err)
	require.Len(fields, 2)
	require.Equal("username", fields[0].Name)
	require.False(fields[0].Sensitive)
	require.Equal("password", fields[1].Name)
	require.True(fields[1].Sensitive)
	require.Equal("Password: ", fields[1].labelOrDefault())
}

func TestLoadFormFieldsDefaultLabel(t *testing.T) {
	require := require.New(t)

	path := writeFormFile(t, "- name: email\n")
	fields, err := loadFormFields(path)
	require.NoError(err)
	require.Equal("email: ", fields[0].labelOrDefault())
}

func TestLoadFormFieldsMissingName(t *testing.T) {
	require := require.New(t)

	path := writeFormFile(t, `
- name: username
- label: "Anonymous: "
`)
	_, err := loadFormFields(path)
	require.ErrorContains(err, "field 2 has no name")
}

func TestLoadFormFieldsEmpty(t *testing.T) {
	require := require.New(t)

	path := writeFormFile(t, "[]\n")
	_, err := loadFormFields(path)
	require.ErrorContains(err, "no fields")
}

func TestLoadFormFieldsMissingFile(t *testing.T) {
	require := require.New(t)

	_, err := loadFormFields(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(err)
}
