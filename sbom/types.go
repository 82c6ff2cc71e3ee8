package sbom

import (
	"errors"
	"fmt"
)

// FormatType represents the SBOM format type.
type FormatType string

// OutputFormat represents the encoding of the written document.
type OutputFormat string

const (
	// FormatCycloneDX represents the CycloneDX SBOM format.
	FormatCycloneDX FormatType = "CycloneDX"

	OutputJSON OutputFormat = "json"
	OutputXML  OutputFormat = "xml"
)

const (
	xmlPlaceholder           = "TODO"
	unsupportedOutputMessage = "Unsupported output format. Please choose either 'json' or 'xml'."
)

var (
	ErrUnsupportedFormat = errors.New("unsupported SBOM format")
	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrNotImplemented    = errors.New("not implemented")
)

// ParseFormat parses a format string into a FormatType.
func ParseFormat(format string) (FormatType, error) {
	switch FormatType(format) {
	case FormatCycloneDX:
		return FormatCycloneDX, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, format, FormatCycloneDX)
	}
}

// ParseOutputFormat parses an output format string into an OutputFormat.
func ParseOutputFormat(output string) (OutputFormat, error) {
	switch OutputFormat(output) {
	case OutputJSON:
		return OutputJSON, nil
	case OutputXML:
		return OutputXML, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s, %s)", ErrUnsupportedOutput, output, OutputJSON, OutputXML)
	}
}
