package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joshyorko/debsbom/common"
	"github.com/joshyorko/debsbom/debindex"
	"github.com/joshyorko/debsbom/pretty"
	"github.com/joshyorko/debsbom/sbom"
	"github.com/joshyorko/debsbom/settings"
	"github.com/joshyorko/debsbom/xviper"

	"github.com/spf13/cobra"
)

const (
	exitInvalidOptions = 1
	exitInputFailure   = 2
	exitGenerateFailed = 3
	exitWriteFailed    = 4
	exitNotImplemented = 5
)

var (
	outputFormatFlag string
	sbomFormatFlag   string
)

type options struct {
	index  string
	format sbom.FormatType
	output sbom.OutputFormat
	pretty bool
}

var rootCmd = &cobra.Command{
	Use:   "debsbom",
	Short: "Generate a CycloneDX SBOM from a Debian style package index.",
	Long: `Generate a Software Bill of Materials (SBOM) from a Debian style package index.

Reads the package index (packages/Packages by default), turns every package
record into a CycloneDX component and writes the document to stdout.

Environment variables DEBSBOM_OUTPUT_FORMAT, DEBSBOM_SBOM_FORMAT, DEBSBOM_INDEX,
DEBSBOM_PRETTY, DEBSBOM_DEBUG, DEBSBOM_TRACE and DEBSBOM_SILENT are honored;
DEBSBOM_SETTINGS names a settings YAML file merged over the built in defaults.

Examples:
  debsbom
  debsbom --output-format json --sbom-format CycloneDX > sbom.json`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("SBOM generation lasted").Report()
		}
		current, err := resolveOptions()
		pretty.Guard(err == nil, exitInvalidOptions, "%v", err)

		produce(common.StdoutWriter(), current)
	},
}

// Execute runs the root command; failures surface as common.ExitCode panics.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pretty.Exit(exitInvalidOptions, "Error: [%s] %v", common.PRODUCT_NAME, err)
	}
}

func initConfig() {
	xviper.Verbosity()

	err := settings.SummonSettings()
	pretty.Guard(err == nil, exitInvalidOptions, "Invalid settings: %v", err)

	xviper.SetDefault(xviper.IndexKey, settings.Global.IndexPath())
	xviper.SetDefault(xviper.SbomFormatKey, settings.Global.SbomFormat())
	xviper.SetDefault(xviper.OutputFormatKey, settings.Global.OutputFormat())
	xviper.SetDefault(xviper.PrettyKey, settings.Global.Pretty())

	err = xviper.BindFlags(rootCmd.Flags(), xviper.OutputFormatKey, xviper.SbomFormatKey)
	pretty.Guard(err == nil, exitInvalidOptions, "%v", err)
}

// resolveOptions validates formats before any input is touched.
func resolveOptions() (*options, error) {
	format, err := sbom.ParseFormat(xviper.GetString(xviper.SbomFormatKey))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", xviper.SbomFormatKey, err)
	}
	output, err := sbom.ParseOutputFormat(xviper.GetString(xviper.OutputFormatKey))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", xviper.OutputFormatKey, err)
	}
	index := strings.TrimSpace(xviper.GetString(xviper.IndexKey))
	if len(index) == 0 {
		return nil, fmt.Errorf("package index path is empty")
	}
	return &options{
		index:  index,
		format: format,
		output: output,
		pretty: xviper.GetBool(xviper.PrettyKey),
	}, nil
}

func produce(writer io.Writer, current *options) {
	common.Debug("Reading package index %q.", current.index)
	records, err := debindex.ReadFile(current.index)
	pretty.Guard(err == nil, exitInputFailure, "Failed to read package index: %v", err)

	bom, err := sbom.NewGenerator().Generate(records, current.format)
	pretty.Guard(err == nil, exitGenerateFailed, "Failed to generate SBOM: %v", err)
	if len(*bom.Components) == 0 {
		pretty.Note("No package records found in %q, the SBOM has no components.", current.index)
	}

	common.Debug("Writing %s as %s.", current.format, current.output)
	err = sbom.Write(writer, bom, current.output, current.pretty)
	if errors.Is(err, sbom.ErrNotImplemented) {
		pretty.Warning("Only a placeholder was written for %s output.", current.output)
		pretty.Exit(exitNotImplemented, "Output format %q is not implemented yet.", current.output)
	}
	pretty.Guard(err == nil, exitWriteFailed, "Failed to write SBOM: %v", err)
	pretty.Ok()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.Flags().StringVar(&outputFormatFlag, xviper.OutputFormatKey, common.DefaultOutput, "Output format for the SBOM: json or xml")
	rootCmd.Flags().StringVar(&sbomFormatFlag, xviper.SbomFormatKey, common.DefaultSbom, "SBOM format: CycloneDX")
}
