package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/abiiranathan/assetgen"
)

// options holds the command line flags. All of them are optional.
type options struct {
	config  string
	source  string
	out     string
	filter  string
	quiet   bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVarP(&opts.config, "config", "c", "", "YAML config file")
	fs.StringVarP(&opts.source, "source", "s", assetgen.DefaultSourcePath, "source icon image")
	fs.StringVarP(&opts.out, "out", "o", assetgen.DefaultOutputDir, "output directory")
	fs.StringVar(&opts.filter, "filter", string(assetgen.FilterLanczos), "resampling filter (lanczos, catmullrom, mitchell, linear, box, nearest)")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress messages")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log runtime settings")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, fs, nil
}

// buildConfig merges defaults, the optional config file and explicitly set
// flags, in that order.
func buildConfig(opts *options, fs *flag.FlagSet, stdout io.Writer) (*assetgen.Config, error) {
	cfg := assetgen.DefaultConfig()
	if opts.config != "" {
		loaded, err := assetgen.LoadConfig(opts.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if fs.Changed("source") {
		cfg.SourcePath = opts.source
	}
	if fs.Changed("out") {
		cfg.OutputDir = opts.out
	}
	if fs.Changed("filter") {
		f, err := assetgen.ParseFilter(opts.filter)
		if err != nil {
			return nil, err
		}
		cfg.Filter = f
	}

	if opts.quiet {
		cfg.Logf = func(string, ...any) {}
	} else {
		cfg.Logf = func(format string, args ...any) {
			fmt.Fprintf(stdout, format+"\n", args...)
		}
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	// imaging resizes rows on GOMAXPROCS goroutines.
	if opts.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	cfg, err := buildConfig(opts, fs, stdout)
	if err != nil {
		return err
	}
	return assetgen.Generate(cfg)
}

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		// The missing source case has already been reported.
		if !errors.Is(err, assetgen.ErrSourceNotFound) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
