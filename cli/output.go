package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// OutputFormat names an encoding for generated documents.
type OutputFormat string

const (
	// FormatYAML renders YAML (default). Non-finite values are written as
	// .nan, .inf and -.inf.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON renders indented JSON. JSON has no NaN or ±Inf, so results
	// holding them fail with ErrFormat; use FormatYAML for such requests.
	FormatJSON OutputFormat = "json"
)

// OutputOptions selects the format and destination of Output.
type OutputOptions struct {
	// Format is the encoding; empty means FormatYAML.
	Format OutputFormat

	// File is written only after the result encodes successfully.
	// Empty means Writer (or stdout).
	File string

	// Indent is the JSON indentation (default two spaces).
	Indent string

	// Writer takes precedence over File.
	Writer io.Writer
}

// Output encodes result and writes it to the configured destination.
// Encoding happens first, so an unsupported format or an unencodable value
// never creates or truncates File.
func Output(result any, opts OutputOptions) error {
	data, err := encode(result, opts)
	if err != nil {
		return err
	}

	switch {
	case opts.Writer != nil:
		_, err = opts.Writer.Write(data)
	case opts.File != "":
		err = os.WriteFile(opts.File, data, 0o644)
	default:
		_, err = os.Stdout.Write(data)
	}
	if err != nil {
		return fmt.Errorf("write %s output: %w", formatName(opts.Format), err)
	}

	return nil
}

// encode renders result in the requested format.
func encode(result any, opts OutputOptions) ([]byte, error) {
	switch opts.Format {
	case FormatJSON:
		return encodeJSON(result, opts.Indent)
	case FormatYAML, "":
		data, err := yaml.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrFormat, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q (want %q or %q)", ErrFormat, opts.Format, FormatYAML, FormatJSON)
	}
}

func encodeJSON(result any, indent string) ([]byte, error) {
	if indent == "" {
		indent = "  "
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", indent)
	if err := enc.Encode(result); err != nil {
		var unsupported *json.UnsupportedValueError
		if errors.As(err, &unsupported) {
			return nil, fmt.Errorf("%w: json cannot carry %s, use yaml", ErrFormat, unsupported.Str)
		}
		return nil, fmt.Errorf("%w: json: %v", ErrFormat, err)
	}

	return buf.Bytes(), nil
}

func formatName(f OutputFormat) OutputFormat {
	if f == "" {
		return FormatYAML
	}

	return f
}
