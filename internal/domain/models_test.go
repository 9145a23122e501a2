package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaults(t *testing.T) {
	cfg := Config{ApplicationName: "DemoApp"}.WithDefaults()

	assert.Equal(t, "demoapp", cfg.PackageName)
	assert.Equal(t, "demoapp", cfg.ArtifactID)
	assert.Equal(t, DefaultGroupID, cfg.GroupID)
	assert.Equal(t, DefaultVersion, cfg.Version)
	assert.Equal(t, DefaultJavaVersion, cfg.JavaVersion)
	assert.Equal(t, cfg, cfg.WithDefaults())
}

func TestWithDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		ApplicationName: "DemoApp",
		PackageName:     "com.acme.demo",
		GroupID:         "com.acme",
		ArtifactID:      "demo",
		Version:         "2.0.0",
		JavaVersion:     "21",
	}
	assert.Equal(t, cfg, cfg.WithDefaults())
	assert.Equal(t, "com/acme/demo", cfg.PackagePath())
	assert.Equal(t, "DemoAppApplication", cfg.MainClassName())
}

func TestNewRecord(t *testing.T) {
	cfg := Config{
		ApplicationName: "DemoApp",
		Framework:       FrameworkSpringBoot,
		Database:        DatabaseMySQL,
		JwtAuthEnabled:  true,
	}.WithDefaults()
	m := &Manifest{
		ProjectPath: "generated-projects/DemoApp",
		Files: []ManifestEntry{
			{Path: "pom.xml", Size: 10},
			{Path: "src/main/resources/application.properties", Size: 5},
		},
		TotalBytes: 15,
	}

	r := NewRecord(cfg, m)
	assert.Equal(t, "DemoApp", r.ApplicationName)
	assert.Equal(t, DatabaseMySQL, r.Database)
	assert.True(t, r.JwtAuthEnabled)
	assert.Equal(t, "demoapp", r.PackageName)
	assert.Equal(t, int64(15), r.FileSizeBytes)
	assert.Equal(t, int64(0), r.DownloadCount)
	assert.Equal(t, []string{"pom.xml", "src/main/resources/application.properties"}, r.Files)
}

func TestParseDatabaseKind(t *testing.T) {
	for _, in := range []string{"mysql", " PostgreSQL ", "SQLSERVER", "oracle"} {
		k, err := ParseDatabaseKind(in)
		require.NoError(t, err, in)
		assert.True(t, k.Valid())
	}

	_, err := ParseDatabaseKind("mongodb")
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestEveryDatabaseKindHasFacts(t *testing.T) {
	kinds := DatabaseKinds()
	require.Len(t, kinds, 4)
	for _, k := range kinds {
		f, ok := k.Facts()
		require.True(t, ok, k)
		assert.NotEmpty(t, f.Label)
		assert.NotEmpty(t, f.DriverClassName)
		assert.NotEmpty(t, f.URLPrefix)
		assert.NotEmpty(t, f.DependencyArtifact)
	}

	kinds[0] = "MUTATED"
	assert.Equal(t, DatabaseMySQL, DatabaseKinds()[0])
}

func TestErrorMatchesKind(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewStorageError("generate", "failed to write pom.xml", cause)

	assert.True(t, errors.Is(err, ErrStorage))
	assert.False(t, errors.Is(err, ErrArchive))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "storage error: generate: failed to write pom.xml: disk full", err.Error())

	wrapped := fmt.Errorf("outer: %w", NewNotFoundError("find", "no record"))
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}
