package domain

import (
	"strings"
	"time"
)

// Defaults applied to a Config when the request leaves a field empty.
const (
	DefaultGroupID     = "com.example"
	DefaultVersion     = "1.0.0"
	DefaultJavaVersion = "17"
)

// Config represents the Configuration Vector of a generation request
type Config struct {
	ApplicationName     string        `json:"applicationName" yaml:"applicationName"`
	Framework           FrameworkKind `json:"frameworkType" yaml:"frameworkType"`
	Database            DatabaseKind  `json:"databaseType" yaml:"databaseType"`
	JwtAuthEnabled      bool          `json:"jwtAuthEnabled" yaml:"jwtAuthEnabled"`
	BaseEntityEnabled   bool          `json:"baseEntityEnabled" yaml:"baseEntityEnabled"`
	BaseResponseEnabled bool          `json:"baseResponseEnabled" yaml:"baseResponseEnabled"`
	PackageName         string        `json:"packageName,omitempty" yaml:"packageName,omitempty"`
	GroupID             string        `json:"groupId,omitempty" yaml:"groupId,omitempty"`
	ArtifactID          string        `json:"artifactId,omitempty" yaml:"artifactId,omitempty"`
	Version             string        `json:"version,omitempty" yaml:"version,omitempty"`
	JavaVersion         string        `json:"javaVersion,omitempty" yaml:"javaVersion,omitempty"`
}

// WithDefaults returns a copy of the config with every optional field resolved.
// It is idempotent.
func (c Config) WithDefaults() Config {
	lower := strings.ToLower(c.ApplicationName)
	if c.PackageName == "" {
		c.PackageName = lower
	}
	if c.GroupID == "" {
		c.GroupID = DefaultGroupID
	}
	if c.ArtifactID == "" {
		c.ArtifactID = lower
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.JavaVersion == "" {
		c.JavaVersion = DefaultJavaVersion
	}
	return c
}

// PackagePath is the on-disk form of the package name ("com.acme.demo" -> "com/acme/demo").
func (c Config) PackagePath() string {
	return strings.ReplaceAll(c.PackageName, ".", "/")
}

// MainClassName is the name of the generated entry point class.
func (c Config) MainClassName() string {
	return c.ApplicationName + "Application"
}

// GeneratedFile is one (relative path, content) pair produced by an emitter.
// Paths always use forward slashes.
type GeneratedFile struct {
	Path    string
	Content []byte
}

// ManifestEntry describes a single file written during a generation.
type ManifestEntry struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// Manifest is the outcome of one generation: the files written in emission
// order and the total byte size of the tree.
type Manifest struct {
	ProjectPath string          `json:"projectPath"`
	Files       []ManifestEntry `json:"files"`
	TotalBytes  int64           `json:"totalBytes"`
}

// Paths returns the relative file paths in emission order.
func (m *Manifest) Paths() []string {
	paths := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// Record is the ledgered description of a past generation.
type Record struct {
	ID                  string        `json:"id" firestore:"id"`
	ApplicationName     string        `json:"projectName" firestore:"application_name"`
	Framework           FrameworkKind `json:"frameworkType" firestore:"framework_type"`
	Database            DatabaseKind  `json:"databaseType" firestore:"database_type"`
	JwtAuthEnabled      bool          `json:"jwtAuthEnabled" firestore:"jwt_auth_enabled"`
	BaseEntityEnabled   bool          `json:"baseEntityEnabled" firestore:"base_entity_enabled"`
	BaseResponseEnabled bool          `json:"baseResponseEnabled" firestore:"base_response_enabled"`
	PackageName         string        `json:"packageName" firestore:"package_name"`
	// ProjectPath is relative to the storage base directory, so every process
	// sharing a ledger must be configured with the same one.
	ProjectPath         string        `json:"projectPath" firestore:"project_path"`
	FileSizeBytes       int64         `json:"fileSizeBytes" firestore:"file_size_bytes"`
	DownloadCount       int64         `json:"downloadCount" firestore:"download_count"`
	GroupID             string        `json:"groupId" firestore:"group_id"`
	ArtifactID          string        `json:"artifactId" firestore:"artifact_id"`
	Version             string        `json:"version" firestore:"version"`
	JavaVersion         string        `json:"javaVersion" firestore:"java_version"`
	Files               []string      `json:"files" firestore:"files"`
	CreatedAt           time.Time     `json:"createdAt" firestore:"created_at"`
}

// NewRecord builds the ledger record for a finished generation of cfg.
func NewRecord(cfg Config, manifest *Manifest) *Record {
	return &Record{
		ApplicationName:     cfg.ApplicationName,
		Framework:           cfg.Framework,
		Database:            cfg.Database,
		JwtAuthEnabled:      cfg.JwtAuthEnabled,
		BaseEntityEnabled:   cfg.BaseEntityEnabled,
		BaseResponseEnabled: cfg.BaseResponseEnabled,
		PackageName:         cfg.PackageName,
		ProjectPath:         manifest.ProjectPath,
		FileSizeBytes:       manifest.TotalBytes,
		GroupID:             cfg.GroupID,
		ArtifactID:          cfg.ArtifactID,
		Version:             cfg.Version,
		JavaVersion:         cfg.JavaVersion,
		Files:               manifest.Paths(),
	}
}
