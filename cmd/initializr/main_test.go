package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduardo/initializr/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateListShowDownload(t *testing.T) {
	base := t.TempDir()

	out, err := run(t, "--base-dir", base, "generate", "--name", "DemoApp", "--database", "postgresql", "--jwt", "--json")
	require.NoError(t, err, out)

	var record domain.Record
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, "DemoApp", record.ApplicationName)
	assert.Equal(t, domain.DatabasePostgreSQL, record.Database)
	assert.True(t, record.JwtAuthEnabled)
	assert.FileExists(t, filepath.Join(base, "generated-projects", "DemoApp", "pom.xml"))
	assert.FileExists(t, filepath.Join(base, "initializr.db"))

	_, err = run(t, "--base-dir", base, "generate", "--name", "DemoApp", "--database", "MYSQL")
	assert.Equal(t, ExitConflict, exitCodeFromError(err))

	out, err = run(t, "--base-dir", base, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "DemoApp")
	assert.Contains(t, out, "POSTGRESQL")

	target := filepath.Join(t.TempDir(), "demo.zip")
	_, err = run(t, "--base-dir", base, "download", "DemoApp", "-o", target)
	require.NoError(t, err)

	zr, err := zip.OpenReader(target)
	require.NoError(t, err)
	defer zr.Close()
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, record.Files, names)

	out, err = run(t, "--base-dir", base, "show", "DemoApp", "--json")
	require.NoError(t, err)
	var shown domain.Record
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, int64(1), shown.DownloadCount)
}

func TestDownloadUnknownCreatesNoFile(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(t.TempDir(), "missing.zip")

	_, err := run(t, "--base-dir", base, "download", "Missing", "-o", target)
	assert.Equal(t, ExitNotFound, exitCodeFromError(err))

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateFromRequestFile(t *testing.T) {
	base := t.TempDir()
	req := filepath.Join(t.TempDir(), "shop.yaml")
	require.NoError(t, os.WriteFile(req, []byte(`applicationName: Shop
frameworkType: SPRINGBOOT
databaseType: MYSQL
baseResponseEnabled: true
`), 0644))

	out, err := run(t, "--base-dir", base, "generate", "-f", req, "--database", "oracle", "--json")
	require.NoError(t, err, out)

	var record domain.Record
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, "Shop", record.ApplicationName)
	assert.Equal(t, domain.DatabaseOracle, record.Database)
	assert.True(t, record.BaseResponseEnabled)
	assert.False(t, record.JwtAuthEnabled)
}

func TestGenerateRejectsBadRequest(t *testing.T) {
	base := t.TempDir()

	_, err := run(t, "--base-dir", base, "generate", "--name", "9lives", "--database", "MYSQL")
	assert.Equal(t, ExitConfigError, exitCodeFromError(err))

	_, err = run(t, "--base-dir", base, "generate", "--name", "DemoApp", "--database", "MONGO")
	assert.Equal(t, ExitConfigError, exitCodeFromError(err))

	_, statErr := os.Stat(filepath.Join(base, "generated-projects"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestInspectWritesNothing(t *testing.T) {
	base := t.TempDir()

	out, err := run(t, "--base-dir", base, "inspect", "--name", "DemoApp", "--database", "SQLSERVER", "--base-entity")
	require.NoError(t, err, out)
	assert.Contains(t, out, "applicationName: DemoApp")
	assert.Contains(t, out, "packageName: demoapp")
	assert.Contains(t, out, "pom.xml")
	assert.Contains(t, out, "src/main/java/demoapp/models/entities/baseentity/BaseEntity.java")

	_, statErr := os.Stat(filepath.Join(base, "generated-projects"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestListEmpty(t *testing.T) {
	out, err := run(t, "--base-dir", t.TempDir(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects generated yet.")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "initializr ")
}

func TestSaveRequestRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := domain.Config{
		ApplicationName: "DemoApp",
		Framework:       domain.FrameworkSpringBoot,
		Database:        domain.DatabaseMySQL,
		JwtAuthEnabled:  true,
	}
	require.NoError(t, saveRequest(path, cfg))

	parsed, err := parseRequestFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, *parsed)
}

func TestDatabaseOptionsCoverEveryKind(t *testing.T) {
	opts := databaseOptions()
	require.Len(t, opts, len(domain.DatabaseKinds()))

	labels := map[string]bool{}
	for i, opt := range opts {
		assert.Equal(t, domain.DatabaseKinds()[i], opt.Value)
		assert.NotEmpty(t, opt.Key)
		labels[opt.Key] = true
	}
	assert.Len(t, labels, len(opts))
	assert.True(t, labels["SQL Server"])
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{errors.New("boom"), ExitGeneralError},
		{domain.NewConfigurationError("x", "bad"), ExitConfigError},
		{domain.NewNotFoundError("x", "gone"), ExitNotFound},
		{domain.NewConflictError("x", "dup"), ExitConflict},
		{domain.NewStorageError("x", "disk", nil), ExitStorageError},
		{domain.NewArchiveError("x", "sink", nil), ExitStorageError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, exitCodeFromError(tt.err))
	}
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.5 KiB", formatBytes(1536))
	assert.Equal(t, "2.0 MiB", formatBytes(2*1024*1024))
}
