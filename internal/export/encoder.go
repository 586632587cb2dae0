// internal/export/encoder.go
//
// Encodes a Snapshot as indented JSON or YAML onto any io.Writer. The CLI
// passes its output stream, tests pass a buffer.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than json and yaml.
var ErrUnknownFormat = errors.New("formato de exportação desconhecido")

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode writes snap to w.
//  1. Meta.Format and Meta.Version are stamped from the arguments.
//  2. A zero Meta.Timestamp is set to the current time.
//  3. The document is written with two-space indentation.
func Encode(w io.Writer, snap Snapshot, format Format) error {
	snap.Meta.Format = format
	snap.Meta.Version = Version
	if snap.Meta.Timestamp.IsZero() {
		snap.Meta.Timestamp = time.Now()
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
