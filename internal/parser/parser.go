package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eduardo/initializr/internal/domain"
)

// Format is the encoding of a generation request.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// fencedBlock finds the first ```json or ```yaml block of a Markdown file.
var fencedBlock = regexp.MustCompile("(?s)```(json|ya?ml)\\s*(.*?)\\s*```")

// FileReader is the part of the filesystem the parser needs.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// RequestParser implements domain.ParserPort for request files.
type RequestParser struct {
	fs FileReader
}

func NewRequestParser(fs FileReader) *RequestParser {
	return &RequestParser{fs: fs}
}

// Parse reads filename and decodes it according to its extension.
// The returned config is normalized but not validated.
func (p *RequestParser) Parse(filename string) (*domain.Config, error) {
	content, err := p.fs.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	format, err := FormatFor(filename)
	if err != nil {
		return nil, err
	}
	return ParseBytes(format, content)
}

// FormatFor picks the format from a file extension.
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", domain.NewConfigurationError("parse", fmt.Sprintf("unsupported request file %q", filename))
	}
}

// ParseBytes decodes a request in the given format.
func ParseBytes(format Format, content []byte) (*domain.Config, error) {
	var config domain.Config

	switch format {
	case FormatJSON:
		if err := decodeJSON(content, &config); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := decodeYAML(content, &config); err != nil {
			return nil, err
		}
	case FormatMarkdown:
		matches := fencedBlock.FindSubmatch(content)
		if len(matches) < 3 {
			return nil, domain.NewConfigurationError("parse", "no json or yaml block found")
		}
		if string(matches[1]) == "json" {
			if err := decodeJSON(matches[2], &config); err != nil {
				return nil, err
			}
		} else if err := decodeYAML(matches[2], &config); err != nil {
			return nil, err
		}
	default:
		return nil, domain.NewConfigurationError("parse", fmt.Sprintf("unknown format %q", format))
	}

	if err := normalize(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func decodeJSON(content []byte, config *domain.Config) error {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(config); err != nil {
		return domain.NewConfigurationError("parse", "failed to parse JSON: "+err.Error())
	}
	return nil
}

func decodeYAML(content []byte, config *domain.Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil {
		return domain.NewConfigurationError("parse", "failed to parse YAML: "+err.Error())
	}
	return nil
}

// normalize upper-cases the enumerations and trims the free-text fields.
func normalize(config *domain.Config) error {
	config.ApplicationName = strings.TrimSpace(config.ApplicationName)
	config.PackageName = strings.TrimSpace(config.PackageName)
	config.GroupID = strings.TrimSpace(config.GroupID)
	config.ArtifactID = strings.TrimSpace(config.ArtifactID)
	config.Version = strings.TrimSpace(config.Version)
	config.JavaVersion = strings.TrimSpace(config.JavaVersion)

	config.Framework = domain.ParseFrameworkKind(string(config.Framework))
	if config.Database != "" {
		db, err := domain.ParseDatabaseKind(string(config.Database))
		if err != nil {
			return err
		}
		config.Database = db
	}
	return nil
}
