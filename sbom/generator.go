package sbom

import (
	"fmt"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/joshyorko/debsbom/common"
	"github.com/joshyorko/debsbom/debindex"
)

// SerialSource produces the serialNumber of a new document.
type SerialSource func() (string, error)

type Option func(*Generator)

// Generator generates SBOMs from package index records.
type Generator struct {
	serial SerialSource
}

// WithSerialSource replaces the random serial number source.
func WithSerialSource(source SerialSource) Option {
	return func(it *Generator) {
		it.serial = source
	}
}

// NewGenerator creates a new SBOM generator.
func NewGenerator(options ...Option) *Generator {
	result := &Generator{
		serial: NewSerialNumber,
	}
	for _, option := range options {
		option(result)
	}
	return result
}

// NewSerialNumber returns a fresh random (version 4) UUID as an URN.
func NewSerialNumber() (string, error) {
	identity, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate serial number: %w", err)
	}
	return "urn:uuid:" + identity.String(), nil
}

// Generate generates an SBOM document of the given format from records.
func (g *Generator) Generate(records []*debindex.Record, format FormatType) (*cyclonedx.BOM, error) {
	switch format {
	case FormatCycloneDX:
		return g.generateCycloneDX(records)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// generateCycloneDX generates a CycloneDX format SBOM.
func (g *Generator) generateCycloneDX(records []*debindex.Record) (*cyclonedx.BOM, error) {
	serial, err := g.serial()
	if err != nil {
		return nil, err
	}

	components := make([]cyclonedx.Component, 0, len(records))
	for _, record := range records {
		component, ok := ComponentFrom(record)
		if !ok {
			common.Trace("Skipping record without Package field.")
			continue
		}
		components = append(components, component)
	}
	common.Debug("CycloneDX document %s with %d components from %d records.", serial, len(components), len(records))

	return &cyclonedx.BOM{
		BOMFormat:    cyclonedx.BOMFormat,
		SpecVersion:  cyclonedx.SpecVersion1_5,
		SerialNumber: serial,
		Version:      1,
		Components:   &components,
	}, nil
}

// ComponentFrom maps one record to a CycloneDX component. Records without
// a Package field have no component.
func ComponentFrom(record *debindex.Record) (cyclonedx.Component, bool) {
	if record == nil || !record.Has(debindex.PackageField) {
		return cyclonedx.Component{}, false
	}
	component := cyclonedx.Component{
		Name: record.Package(),
		Type: cyclonedx.ComponentTypeApplication,
	}

	version, hasVersion := record.Get(debindex.VersionField)
	if hasVersion {
		component.Version = version
	}

	if license, ok := record.Get(debindex.LicenseField); ok {
		component.Licenses = &cyclonedx.Licenses{
			{
				License: &cyclonedx.License{
					Name: license,
				},
			},
		}
	}

	// cpe needs both fields, the version becomes the last CPE component
	if cpe, ok := record.Get(debindex.CpeField); ok && hasVersion {
		component.CPE = cpe + ":" + version
	}

	return component, true
}
