package settings

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/joshyorko/debsbom/common"
	"gopkg.in/yaml.v2"
)

//go:embed assets/debsbom_settings.yaml
var defaultSettings []byte

var Global *Settings

type Settings struct {
	Index   *Index   `yaml:"index,omitempty"`
	Sbom    *Sbom    `yaml:"sbom,omitempty"`
	Output  *Output  `yaml:"output,omitempty"`
	Logging *Logging `yaml:"logging,omitempty"`
}

type Index struct {
	Path string `yaml:"path,omitempty"`
}

type Sbom struct {
	Format string `yaml:"format,omitempty"`
}

type Output struct {
	Format string `yaml:"format,omitempty"`
	Pretty *bool  `yaml:"pretty,omitempty"`
}

type Logging struct {
	Hide []string `yaml:"hide,omitempty"`
}

func FromBytes(content []byte) (*Settings, error) {
	result := &Settings{}
	err := yaml.UnmarshalStrict(content, result)
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return result, nil
}

func LoadFile(filename string) (*Settings, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %q: %w", filename, err)
	}
	result, err := FromBytes(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return result, nil
}

// SummonSettings loads the embedded defaults, merges the optional user file
// named by DEBSBOM_SETTINGS over them and installs the result as Global.
// Global is left untouched on failure.
func SummonSettings() error {
	result, err := FromBytes(defaultSettings)
	if err != nil {
		return err
	}
	if custom := strings.TrimSpace(os.Getenv(common.SETTINGS_ENV)); len(custom) > 0 {
		filename := common.ExpandPath(custom)
		common.Debug("Loading user settings from %q.", filename)
		user, err := LoadFile(filename)
		if err != nil {
			return err
		}
		result.Merge(user)
	}
	err = result.Validate()
	if err != nil {
		return err
	}
	Global = result
	common.LogHides = append(common.LogHides[:0], result.Hides()...)
	return nil
}

func (it *Settings) Merge(other *Settings) {
	if other == nil {
		return
	}
	if other.Index != nil && len(other.Index.Path) > 0 {
		it.ensure()
		it.Index.Path = other.Index.Path
	}
	if other.Sbom != nil && len(other.Sbom.Format) > 0 {
		it.ensure()
		it.Sbom.Format = other.Sbom.Format
	}
	if other.Output != nil {
		it.ensure()
		if len(other.Output.Format) > 0 {
			it.Output.Format = other.Output.Format
		}
		if other.Output.Pretty != nil {
			pretty := *other.Output.Pretty
			it.Output.Pretty = &pretty
		}
	}
	if other.Logging != nil && len(other.Logging.Hide) > 0 {
		it.ensure()
		it.Logging.Hide = append(it.Logging.Hide, other.Logging.Hide...)
	}
}

func (it *Settings) ensure() {
	if it.Index == nil {
		it.Index = &Index{}
	}
	if it.Sbom == nil {
		it.Sbom = &Sbom{}
	}
	if it.Output == nil {
		it.Output = &Output{}
	}
	if it.Logging == nil {
		it.Logging = &Logging{}
	}
}

func (it *Settings) Validate() error {
	if len(strings.TrimSpace(it.IndexPath())) == 0 {
		return fmt.Errorf("settings: index.path must not be empty")
	}
	if len(strings.TrimSpace(it.SbomFormat())) == 0 {
		return fmt.Errorf("settings: sbom.format must not be empty")
	}
	if len(strings.TrimSpace(it.OutputFormat())) == 0 {
		return fmt.Errorf("settings: output.format must not be empty")
	}
	return nil
}

func (it *Settings) IndexPath() string {
	if it.Index == nil || len(it.Index.Path) == 0 {
		return common.DefaultIndex
	}
	return it.Index.Path
}

func (it *Settings) SbomFormat() string {
	if it.Sbom == nil || len(it.Sbom.Format) == 0 {
		return common.DefaultSbom
	}
	return it.Sbom.Format
}

func (it *Settings) OutputFormat() string {
	if it.Output == nil || len(it.Output.Format) == 0 {
		return common.DefaultOutput
	}
	return it.Output.Format
}

func (it *Settings) Pretty() bool {
	if it.Output == nil || it.Output.Pretty == nil {
		return false
	}
	return *it.Output.Pretty
}

func (it *Settings) Hides() []string {
	if it.Logging == nil {
		return nil
	}
	return it.Logging.Hide
}
