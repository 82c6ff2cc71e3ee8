package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshyorko/debsbom/common"
	"github.com/joshyorko/debsbom/hamlet"
	"github.com/joshyorko/debsbom/xviper"
	"github.com/spf13/pflag"
)

const sampleIndex = `Package: busybox
Version: 1.36.1
License: GPL-2.0-only
CPE-ID: cpe:2.3:a:busybox:busybox
Description: tiny utilities
 for small systems

Package: zlib
Version: 1.3
`

type outcome struct {
	stdout string
	stderr string
	exit   *common.ExitCode
}

func writeIndex(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "Packages")
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		t.Fatalf("writing index: %v", err)
	}
	return filename
}

func isolate(t *testing.T) {
	t.Helper()
	for _, name := range []string{"SETTINGS", "INDEX", "OUTPUT_FORMAT", "SBOM_FORMAT", "PRETTY", "DEBUG", "TRACE", "SILENT"} {
		t.Setenv(common.ENV_PREFIX+"_"+name, "")
	}
}

func execute(t *testing.T, args ...string) outcome {
	t.Helper()
	out, errs := &strings.Builder{}, &strings.Builder{}
	restore := common.RedirectOutput(out, errs)
	defer restore()
	defer common.DefineVerbosity(false, false, false)

	rootCmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Value.Set(flag.DefValue)
		flag.Changed = false
	})
	xviper.Reset()
	rootCmd.SetArgs(args)

	var exit *common.ExitCode
	func() {
		defer func() {
			if status := recover(); status != nil {
				code, ok := status.(common.ExitCode)
				if !ok {
					panic(status)
				}
				exit = &code
			}
		}()
		Execute()
	}()
	return outcome{stdout: out.String(), stderr: errs.String(), exit: exit}
}

func decodeComponents(t *testing.T, content string) (map[string]interface{}, []interface{}) {
	t.Helper()
	var document map[string]interface{}
	if err := json.Unmarshal([]byte(content), &document); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, content)
	}
	components, _ := document["components"].([]interface{})
	return document, components
}

func TestDefaultRunReadsPackagesDirectory(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)
	isolate(t)

	directory := t.TempDir()
	must_be.Nil(os.MkdirAll(filepath.Join(directory, "packages"), 0o755))
	must_be.Nil(os.WriteFile(filepath.Join(directory, "packages", "Packages"), []byte(sampleIndex), 0o644))
	previous, err := os.Getwd()
	must_be.Nil(err)
	must_be.Nil(os.Chdir(directory))
	t.Cleanup(func() { _ = os.Chdir(previous) })

	result := execute(t)
	must_be.Nil(result.exit)

	document, components := decodeComponents(t, result.stdout)
	must_be.Equal("CycloneDX", document["bomFormat"])
	must_be.Equal("1.5", document["specVersion"])
	must_be.Length(2, components)

	busybox := components[0].(map[string]interface{})
	must_be.Equal("busybox", busybox["name"])
	must_be.Equal("application", busybox["type"])
	must_be.Equal("cpe:2.3:a:busybox:busybox:1.36.1", busybox["cpe"])

	zlib := components[1].(map[string]interface{})
	must_be.Equal("1.3", zlib["version"])
	_, hasLicenses := zlib["licenses"]
	must_be.Equal(false, hasLicenses)
	must_be.Equal("OK.\n", result.stderr)
}

func TestIndexFromEnvironmentAndEmptyIndex(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)
	isolate(t)

	t.Setenv("DEBSBOM_INDEX", writeIndex(t, "Origin: nothing here\n\n"))

	result := execute(t)
	must_be.Nil(result.exit)
	document, components := decodeComponents(t, result.stdout)
	_, isList := document["components"].([]interface{})
	must_be.True(isList)
	must_be.Length(0, components)
	must_be.Contain("Note: No package records found in", result.stderr)
}

func TestXmlOutputPrintsPlaceholder(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)
	isolate(t)

	t.Setenv("DEBSBOM_INDEX", writeIndex(t, sampleIndex))

	result := execute(t, "--output-format", "xml")
	must_be.Equal("TODO\n", result.stdout)
	wont_be.Nil(result.exit)
	must_be.Equal(exitNotImplemented, result.exit.Code)
	must_be.Contain("not implemented", result.exit.Message)
	must_be.Contain("Warning: Only a placeholder was written for xml output.", result.stderr)
	wont_be.True(strings.Contains(result.stderr, "OK."))
}

func TestSilentRunKeepsStderrEmpty(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)
	isolate(t)

	t.Setenv("DEBSBOM_INDEX", writeIndex(t, sampleIndex))
	t.Setenv("DEBSBOM_SILENT", "true")

	result := execute(t)
	must_be.Nil(result.exit)
	must_be.Equal("", result.stderr)
	_, components := decodeComponents(t, result.stdout)
	must_be.Length(2, components)
}

func TestInvalidFormatsAreRejectedBeforeReading(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)
	isolate(t)

	t.Setenv("DEBSBOM_INDEX", filepath.Join(t.TempDir(), "does-not-exist"))

	result := execute(t, "--output-format", "yaml")
	wont_be.Nil(result.exit)
	must_be.Equal(exitInvalidOptions, result.exit.Code)
	must_be.Contain("json, xml", result.exit.Message)
	must_be.Equal("", result.stdout)

	result = execute(t, "--sbom-format", "SPDX")
	wont_be.Nil(result.exit)
	must_be.Equal(exitInvalidOptions, result.exit.Code)
	must_be.Contain("CycloneDX", result.exit.Message)
}

func TestMissingIndexFailsTheRun(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)
	isolate(t)

	t.Setenv("DEBSBOM_INDEX", filepath.Join(t.TempDir(), "does-not-exist"))

	result := execute(t)
	wont_be.Nil(result.exit)
	must_be.Equal(exitInputFailure, result.exit.Code)
	must_be.Equal("", result.stdout)
}

func TestFlagWinsOverEnvironment(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)
	isolate(t)

	t.Setenv("DEBSBOM_INDEX", writeIndex(t, sampleIndex))
	t.Setenv("DEBSBOM_OUTPUT_FORMAT", "xml")

	result := execute(t)
	wont_be.Nil(result.exit)
	must_be.Equal("TODO\n", result.stdout)

	result = execute(t, "--output-format", "json")
	must_be.Nil(result.exit)
	_, components := decodeComponents(t, result.stdout)
	must_be.Length(2, components)
}

func TestPrettySettingIndentsOutput(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)
	isolate(t)

	t.Setenv("DEBSBOM_INDEX", writeIndex(t, sampleIndex))
	t.Setenv("DEBSBOM_PRETTY", "true")

	result := execute(t)
	must_be.Nil(result.exit)
	must_be.True(strings.Count(result.stdout, "\n") > 3)
}

func TestEachRunHasFreshSerialNumber(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)
	isolate(t)

	t.Setenv("DEBSBOM_INDEX", writeIndex(t, sampleIndex))

	first, _ := decodeComponents(t, execute(t).stdout)
	second, _ := decodeComponents(t, execute(t).stdout)
	serial, ok := first["serialNumber"].(string)
	must_be.True(ok)
	must_be.True(strings.HasPrefix(serial, "urn:uuid:"))
	wont_be.Equal(first["serialNumber"], second["serialNumber"])
}

func TestUnexpectedArgumentsAreRejected(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)
	isolate(t)

	result := execute(t, "extra")
	wont_be.Nil(result.exit)
	must_be.Equal(exitInvalidOptions, result.exit.Code)
}

func TestDebugLogsGoToStderr(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)
	isolate(t)

	t.Setenv("DEBSBOM_INDEX", writeIndex(t, sampleIndex))
	t.Setenv("DEBSBOM_DEBUG", "true")

	result := execute(t)
	must_be.Nil(result.exit)
	must_be.Contain("[D] Parsed 2 package index records", result.stderr)
	_, components := decodeComponents(t, result.stdout)
	must_be.Length(2, components)
}

func TestVersionCommand(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)
	isolate(t)

	result := execute(t, "version")
	must_be.Nil(result.exit)
	must_be.Equal(common.Version+"\n", result.stdout)
}
