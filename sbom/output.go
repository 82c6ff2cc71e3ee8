package sbom

import (
	"fmt"
	"io"

	"github.com/CycloneDX/cyclonedx-go"
)

// Write serializes bom to writer in the requested output format. JSON is
// compact unless pretty is set. XML writes a placeholder and returns
// ErrNotImplemented; any other output writes a notice and returns nil.
func Write(writer io.Writer, bom *cyclonedx.BOM, output OutputFormat, pretty bool) error {
	switch output {
	case OutputJSON:
		encoder := cyclonedx.NewBOMEncoder(writer, cyclonedx.BOMFileFormatJSON).
			SetPretty(pretty).
			SetEscapeHTML(false)
		if err := encoder.Encode(bom); err != nil {
			return fmt.Errorf("failed to encode CycloneDX JSON: %w", err)
		}
		return nil
	case OutputXML:
		if _, err := fmt.Fprintln(writer, xmlPlaceholder); err != nil {
			return err
		}
		return fmt.Errorf("xml output: %w", ErrNotImplemented)
	default:
		_, err := fmt.Fprintln(writer, unsupportedOutputMessage)
		return err
	}
}
