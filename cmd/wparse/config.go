package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/wearley/cfg"
	"github.com/spf13/pflag"
)

// Configuration keys read by the packages of this module.
const (
	keyNaive         = "earley.naive-prediction"
	keyProbabilities = "grammar.probabilities"
	keyRoot          = "grammar.root"
)

// Trace levels are configured per tracer key, below tracePrefix.
const tracePrefix = "tracelevel"

const envPrefix = "WPARSE_"

var tracerKeys = []string{
	"root",
	"wearley.cfg",
	"wearley.earley",
	"wearley.ptree",
	"wearley.scanner",
	"wearley.cli",
}

// Global tracers of schuko/gtrace read their levels from these keys.
var gtraceKeys = []string{
	"tracingcommands",
	"tracingcore",
	"tracingengine",
	"tracingequations",
	"tracinggraphics",
	"tracinginterpreter",
	"tracingscripting",
	"tracingsyntax",
}

// flagKeys maps command-line flags to configuration keys. Flags not listed
// here do not go into the configuration.
var flagKeys = map[string]string{
	"naive":         keyNaive,
	"probabilities": keyProbabilities,
	"root":          keyRoot,
}

func defaults() map[string]interface{} {
	m := map[string]interface{}{
		"tracing.adapter": "go",
		keyNaive:          false,
		keyProbabilities:  false,
		keyRoot:           cfg.DefaultRoot,
	}
	for k, v := range traceLevels("Error") {
		m[k] = v
	}
	return m
}

// traceLevels sets all tracers of the application to a level.
func traceLevels(level string) map[string]interface{} {
	m := make(map[string]interface{}, len(tracerKeys)+len(gtraceKeys))
	for _, key := range tracerKeys {
		m[tracePrefix+"."+key] = level
	}
	for _, key := range gtraceKeys {
		m[key] = level
	}
	return m
}

// envKey transforms an environment variable name into a configuration key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.NewReplacer("__", "-", "_", ".").Replace(s)
}

// loadConfig layers configuration sources on top of each other: defaults,
// a NestedText configuration file (if configFile is not empty), environment
// variables and finally command-line flags which have been set by the user.
func loadConfig(flags *pflag.FlagSet, configFile string) (*koanfadapter.KConf, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("cannot load default configuration: %w", err)
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), koanfadapter.Parser()); err != nil {
			return nil, fmt.Errorf("cannot read configuration file %s: %w", configFile, err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("cannot read configuration from environment: %w", err)
	}
	if flags != nil {
		fp := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(fp, nil); err != nil {
			return nil, fmt.Errorf("cannot read configuration from flags: %w", err)
		}
		if f := flags.Lookup("trace"); f != nil && f.Changed {
			if err := k.Load(confmap.Provider(traceLevels(f.Value.String()), "."), nil); err != nil {
				return nil, err
			}
		}
	}
	return koanfadapter.New(k, "", nil), nil
}

// configure sets up the global configuration and tracing.
func configure(flags *pflag.FlagSet, configFile string) error {
	conf, err := loadConfig(flags, configFile)
	if err != nil {
		return err
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	if err = trace2go.ConfigureRoot(conf, tracePrefix, trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("naive prediction = %v", gconf.GetBool(keyNaive))
	tracer().Debugf("grammar root = %s", gconf.GetString(keyRoot))
	return nil
}
