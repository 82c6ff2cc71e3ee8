// Package sbom turns package index records into a CycloneDX Software Bill
// of Materials and writes it out. JSON is the only implemented encoding;
// XML is recognized but not implemented.
package sbom
