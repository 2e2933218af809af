// File: nest/loader.go
package nest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding for Load and Save.
type Format string

const (
	// FormatAuto detects the format from the file extension, falling back
	// to content sniffing.
	FormatAuto Format = "auto"
	// FormatTOML is TOML. TOML documents always decode to a mapping root.
	FormatTOML Format = "toml"
	// FormatJSON is JSON; numbers decode as json.Number to preserve
	// precision.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// Load reads a TOML, JSON, or YAML document from a file and wraps its root
// container.
func Load(path string, opts Options) (*Nest, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(fileData)
	}
	if format == "" {
		return nil, fmt.Errorf("unable to determine document format for file '%s'", path)
	}

	n, err := LoadBytes(fileData, format, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s file '%s': %w", format, path, err)
	}
	return n, nil
}

// LoadBytes parses a document from memory and wraps its root container.
// FormatAuto sniffs the content.
func LoadBytes(data []byte, format Format, opts Options) (*Nest, error) {
	if format == FormatAuto || format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("unable to determine document format from content")
		}
	}

	var root any
	switch format {
	case FormatTOML:
		m := make(map[string]any)
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		root = m
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&root); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}

	return NewWithOptions(root, opts)
}

// Save writes the wrapped structure to a file, choosing the encoding from
// the extension (JSON when unrecognized). The write is atomic via a
// temporary file in the target directory.
func (n *Nest) Save(path string) error {
	format := detectFileFormat(path)
	if format == "" {
		format = FormatJSON
	}

	var encoded []byte
	switch format {
	case FormatTOML:
		if kindOf(n.data) != KindMapping {
			return fmt.Errorf("TOML requires a mapping root, data is a %s", kindOf(n.data))
		}
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(n.data); err != nil {
			return fmt.Errorf("failed to marshal TOML: %w", err)
		}
		encoded = buf.Bytes()
	case FormatYAML:
		out, err := yaml.Marshal(n.data)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		encoded = out
	default:
		out, err := json.MarshalIndent(n.data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		encoded = append(out, '\n')
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tempFile.Name()) // Clean up temp file if rename fails

	if _, err := tempFile.Write(encoded); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temp file '%s': %w", tempFile.Name(), err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp file '%s': %w", tempFile.Name(), err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file '%s': %w", tempFile.Name(), err)
	}

	if err := os.Rename(tempFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temp file to '%s': %w", path, err)
	}

	return nil
}

// detectFileFormat maps a file extension to a format, or "" when unknown.
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return ""
}

// detectFormatFromContent sniffs the document format from its first
// significant bytes.
func detectFormatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return ""
	}

	switch trimmed[0] {
	case '{':
		return FormatJSON
	case '[':
		// Both a JSON array and a TOML table header start with '['.
		if json.Valid(data) {
			return FormatJSON
		}
		return FormatTOML
	}

	if bytes.HasPrefix(trimmed, []byte("---")) {
		return FormatYAML
	}

	// First non-comment line decides between TOML ('key = value' or
	// '[table]') and YAML ('key: value').
	for _, line := range bytes.Split(trimmed, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if line[0] == '[' {
			return FormatTOML
		}
		eq := bytes.IndexByte(line, '=')
		colon := bytes.IndexByte(line, ':')
		switch {
		case eq >= 0 && (colon < 0 || eq < colon):
			return FormatTOML
		case colon >= 0:
			return FormatYAML
		}
		return ""
	}
	return ""
}
