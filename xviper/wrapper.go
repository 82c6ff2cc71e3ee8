// Package xviper keeps the single viper instance used to resolve runtime
// configuration. Precedence is command line flag, then DEBSBOM_* environment
// variable, then settings defaults.
package xviper

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joshyorko/debsbom/common"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	OutputFormatKey = `output-format`
	SbomFormatKey   = `sbom-format`
	IndexKey        = `index`
	PrettyKey       = `pretty`
	DebugKey        = `debug`
	TraceKey        = `trace`
	SilentKey       = `silent`
)

var (
	lock   sync.Mutex
	config = fresh()
)

func fresh() *viper.Viper {
	result := viper.New()
	result.SetEnvPrefix(common.ENV_PREFIX)
	result.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	result.AutomaticEnv()
	return result
}

// Reset drops all defaults and bindings.
func Reset() {
	lock.Lock()
	defer lock.Unlock()
	config = fresh()
}

func SetDefault(key string, value interface{}) {
	lock.Lock()
	defer lock.Unlock()
	config.SetDefault(key, value)
}

// BindFlags binds named flags so that a flag given on the command line wins
// over environment and defaults, while an unset flag falls through to them.
func BindFlags(flags *pflag.FlagSet, keys ...string) error {
	lock.Lock()
	defer lock.Unlock()
	for _, key := range keys {
		flag := flags.Lookup(key)
		if flag == nil {
			return fmt.Errorf("no such flag --%s", key)
		}
		err := config.BindPFlag(key, flag)
		if err != nil {
			return fmt.Errorf("binding flag --%s: %w", key, err)
		}
	}
	return nil
}

func GetString(key string) string {
	lock.Lock()
	defer lock.Unlock()
	return config.GetString(key)
}

func GetBool(key string) bool {
	lock.Lock()
	defer lock.Unlock()
	return config.GetBool(key)
}

// Verbosity reads DEBSBOM_SILENT, DEBSBOM_DEBUG and DEBSBOM_TRACE into common.
func Verbosity() {
	common.DefineVerbosity(GetBool(SilentKey), GetBool(DebugKey), GetBool(TraceKey))
}
