package cli

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/mstep"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// Trace keys of the packages of this module. A configuration entry
// 'trace.<key>' sets the trace level for a package.
var traceKeys = []string{"mstep.grammar", "mstep.scanner", "mstep.engine", "mstep.cli", "mstep.watch"}

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate mstep configuration with an application-key of 'MSTEP' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "MSTEP", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf("%v", err)
		mstep.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf("%v", err)
		mstep.Exit(1)
	}
	mstep.Configuration = k // push the configuration to app-global scope
}

// mergeFlags overlays the command line flags onto the configuration. A log
// file given by name is placed in the application's log directory.
func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		konf.Set("tracing.destination", logDestination(logname, locateAppPaths()))
	}
	if level := konf.GetString("tracelevel"); level != "" {
		for _, key := range traceKeys {
			konf.Set("trace."+key, level)
		}
	}
	return nil
}

// logDestination turns a log file name into a URL for the tracing
// appender.
func logDestination(logname string, paths AppPaths) string {
	switch {
	case strings.Contains(logname, ":/") || logname == "stdout":
		return logname
	case filepath.IsAbs(logname) || paths == nil || paths.LogDir() == "":
		return "file://" + logname
	}
	return "file://" + filepath.Join(paths.LogDir(), logname)
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof("mstep configured, tracing to %q", konf.GetString("tracing.destination"))
	return nil
}

func locateAppPaths() AppPaths {
	paths, err := DefaultAppPaths("MSTEP")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
		return nil
	}
	return paths
}
