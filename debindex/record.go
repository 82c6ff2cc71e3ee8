package debindex

import "strings"

const (
	PackageField = `Package`
	VersionField = `Version`
	LicenseField = `License`
	CpeField     = `CPE-ID`
)

// Record is one paragraph of a package index: field names mapped to values,
// remembering the order in which fields first appeared.
type Record struct {
	order  []string
	values map[string]string
}

func NewRecord() *Record {
	return &Record{
		order:  make([]string, 0, 16),
		values: make(map[string]string, 16),
	}
}

// Set stores value under name. Overwriting keeps the original position.
func (it *Record) Set(name, value string) {
	if _, ok := it.values[name]; !ok {
		it.order = append(it.order, name)
	}
	it.values[name] = value
}

// Append extends an existing field with a space and text, as continuation
// lines do. It reports false when the field does not exist.
func (it *Record) Append(name, text string) bool {
	value, ok := it.values[name]
	if !ok {
		return false
	}
	it.values[name] = value + " " + text
	return true
}

func (it *Record) Get(name string) (string, bool) {
	value, ok := it.values[name]
	return value, ok
}

func (it *Record) Has(name string) bool {
	_, ok := it.values[name]
	return ok
}

// Package returns the value of the Package field, or "" when missing.
func (it *Record) Package() string {
	return it.values[PackageField]
}

func (it *Record) Fields() []string {
	result := make([]string, len(it.order))
	copy(result, it.order)
	return result
}

func (it *Record) Len() int {
	return len(it.order)
}

func (it *Record) IsEmpty() bool {
	return len(it.order) == 0
}

// Reset empties the record in place.
func (it *Record) Reset() {
	it.order = it.order[:0]
	clear(it.values)
}

func (it *Record) Clone() *Record {
	result := &Record{
		order:  make([]string, len(it.order)),
		values: make(map[string]string, len(it.values)),
	}
	copy(result.order, it.order)
	for key, value := range it.values {
		result.values[key] = value
	}
	return result
}

// String renders the record back in control file form, one field per line.
func (it *Record) String() string {
	var text strings.Builder
	for _, name := range it.order {
		text.WriteString(name)
		text.WriteString(": ")
		text.WriteString(it.values[name])
		text.WriteString("\n")
	}
	return text.String()
}
