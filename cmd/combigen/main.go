// Command combigen sizes, indexes, enumerates and samples the strings
// described by a bounded pattern.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/katalvlaran/combigen/config"
	"github.com/katalvlaran/combigen/gen"
	"github.com/katalvlaran/combigen/pattern"
)

var version = "0.1.0"

var log = commonlog.GetLogger("combigen")

// ErrNoConfig indicates an @name argument with no combigen.toml in reach.
var ErrNoConfig = errors.New("no " + config.FileName + " found")

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "combigen: %v\n", err)
		return 1
	}
	return 0
}

// app holds the global flags shared by every subcommand.
type app struct {
	out, errOut io.Writer

	configPath  string
	repeatLimit int
	universe    string
	verbose     int

	cfg *config.File
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "combigen",
		Short: "combigen indexes the strings matched by a bounded pattern",
		Long: `combigen compiles a bounded regular expression into an indexed space of
strings. Every string has an exact big-integer index, so the space can be
sized, decoded at any position, listed in windows and sampled uniformly
without enumerating it.

A pattern argument of the form @name is looked up in combigen.toml.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(a.verbose, nil)
			if a.repeatLimit > pattern.MaxRepeatCount {
				return fmt.Errorf("--repeat-limit %d exceeds %d", a.repeatLimit, pattern.MaxRepeatCount)
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to "+config.FileName+" (default: search upward from the working directory)")
	flags.IntVar(&a.repeatLimit, "repeat-limit", -1, "upper bound substituted for *, + and {m,}")
	flags.StringVar(&a.universe, "universe", "", "runes matched by '.', negated classes and \\D \\W \\S")
	flags.CountVarP(&a.verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(
		newSizeCmd(a),
		newGetCmd(a),
		newListCmd(a),
		newSampleCmd(a),
		newVisitCmd(a),
		newRenderCmd(a),
	)
	return rootCmd
}

// loadConfig loads the configuration file once, from --config or by search.
func (a *app) loadConfig() (*config.File, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		var wd string
		if wd, err = os.Getwd(); err == nil {
			a.cfg, err = config.Find(wd)
		}
	}
	if err != nil {
		return nil, err
	}
	if a.cfg == nil {
		return nil, ErrNoConfig
	}
	log.Debugf("loaded %s", a.cfg.Path)
	return a.cfg, nil
}

// compile resolves arg to a pattern and compiles it. Flags override the
// settings of a named generator.
func (a *app) compile(arg string) (*gen.Generator, error) {
	expr := arg
	var opts []pattern.Option
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		f, err := a.loadConfig()
		if err != nil {
			return nil, err
		}
		entry, err := f.Lookup(name)
		if err != nil {
			return nil, err
		}
		expr = entry.Pattern
		opts = entry.Options()
	}
	if a.repeatLimit >= 0 {
		opts = append(opts, pattern.WithRepeatLimit(a.repeatLimit))
	}
	if a.universe != "" {
		opts = append(opts, pattern.WithUniverse(a.universe))
	}
	g, err := pattern.Compile(expr, opts...)
	if err != nil {
		return nil, err
	}
	log.Infof("compiled %q", expr)
	return g, nil
}

// seed returns the configured default seed, if any.
func (a *app) seed() (int64, bool) {
	if a.configPath == "" && a.cfg == nil {
		return 0, false
	}
	f, err := a.loadConfig()
	if err != nil || f.Defaults.Seed == nil {
		return 0, false
	}
	return *f.Defaults.Seed, true
}
