// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"protanno-core/feature"
	"protanno-core/table"
	"protanno/internal/cli"
	"protanno/internal/config"
	"protanno/internal/uniprot"
	"protanno/internal/version"
	"protanno/internal/writers"
)

// RunContext executes one protanno invocation. Exit codes: 0 ok, 2 usage
// or input/fetch failure, 3 write failure, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("protanno")
	fs.SetOutput(io.Discard)

	usage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"}) // register flags for usage
		return usage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		if code := usage(); code != 0 {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "protanno version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	cfg, err := loadConfig(opts, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	policy, err := resolvePolicy(cfg, opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	entry, err := loadEntry(parent, cfg, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// The builder refuses to start without a sequence: the user gets one
	// failure instead of an empty table.
	builder := table.NewBuilder(feature.NewResolver(policy))
	tbl, err := builder.Build(entry.Sequence, entry.Features)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "could not process %s: %v\n", entryLabel(entry, opts), err)
		return 2
	}

	payload := writers.Payload{
		Table:     tbl,
		Accession: entry.Accession,
		Name:      entry.Name,
		Header:    opts.Header,
		Pretty:    opts.Pretty,
	}
	if werr := writers.WriteTable(opts.Output, outw, payload); writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// loadConfig loads --config, or the default file when present.
func loadConfig(opts cli.Options, stderr io.Writer) (config.Config, error) {
	if opts.ConfigFile != "" {
		return config.LoadFile(opts.ConfigFile)
	}
	cfg, err := config.LoadFile(config.DefaultFile)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Default(), nil
		}
		if !opts.Quiet {
			_, _ = fmt.Fprintf(stderr, "WARN: ignoring %s: %v\n", config.DefaultFile, err)
		}
		return config.Default(), nil
	}
	return cfg, nil
}

// resolvePolicy layers flag overrides over the config file policy.
func resolvePolicy(cfg config.Config, opts cli.Options) (feature.Policy, error) {
	if opts.RegionFallback != "" {
		cfg.Policy.RegionFallback = opts.RegionFallback
	}
	if opts.BindingFallback != "" {
		cfg.Policy.BindingFallback = opts.BindingFallback
	}
	return cfg.ResolverPolicy()
}

// loadEntry obtains the entry from a local file, stdin, or the record
// source.
func loadEntry(ctx context.Context, cfg config.Config, opts cli.Options) (*uniprot.Entry, error) {
	if opts.InputFile != "" {
		if opts.InputFile == "-" {
			return uniprot.Parse(os.Stdin)
		}
		fh, err := os.Open(opts.InputFile)
		if err != nil {
			return nil, err
		}
		defer func() { _ = fh.Close() }()
		return uniprot.Parse(fh)
	}

	timeout := time.Duration(cfg.UniProt.Timeout)
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	client := uniprot.NewClient(cfg.UniProt.BaseURL, timeout)
	return client.Fetch(ctx, opts.Accession)
}

func entryLabel(e *uniprot.Entry, opts cli.Options) string {
	if e.Accession != "" {
		return e.Accession
	}
	if opts.Accession != "" {
		return opts.Accession
	}
	return opts.InputFile
}
