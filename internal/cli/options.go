// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"protanno/internal/output"
	"protanno/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Entry input
	Accession string
	InputFile string // local UniProt XML; "-" = stdin

	// Config / policy
	ConfigFile      string
	RegionFallback  string // "" = use config; "drop" or category name
	BindingFallback string
	Timeout         time.Duration // 0 = use config

	// Output
	Output string
	Pretty bool
	Header bool // true unless --no-header

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: per-residue protein annotation tables from UniProt entries

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Entry input
	fs.StringVar(&opt.Accession, "accession", "", "UniProtKB accession to fetch (e.g. P01308) [*]")
	fs.StringVar(&opt.InputFile, "input", "", "local UniProt entry XML file ('-' for stdin) [*]")

	// Config / policy
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML config file [protanno.yaml if present]")
	fs.StringVar(&opt.RegionFallback, "region-fallback", "", "unmatched region policy: drop | category name [config]")
	fs.StringVar(&opt.BindingFallback, "binding-fallback", "", "unmatched binding-site policy: drop | category name [config]")
	fs.DurationVar(&opt.Timeout, "timeout", 0, "fetch timeout (0 = config value) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json | xlsx [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "annotated-residue summary block (text) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	switch {
	case opt.Accession != "" && opt.InputFile != "":
		return opt, errors.New("--accession conflicts with --input")
	case opt.Accession == "" && opt.InputFile == "":
		return opt, errors.New("provide --accession or --input")
	}
	if opt.Output != output.FormatText && opt.Output != output.FormatJSON && opt.Output != output.FormatXLSX {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Pretty && opt.Output != output.FormatText {
		return opt, errors.New("--pretty only applies to --output text")
	}
	if opt.Timeout < 0 {
		return opt, errors.New("--timeout must be ≥ 0")
	}
	return opt, nil
}
