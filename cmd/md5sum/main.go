// Command md5sum prints or checks MD5 digests of files.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/zeebo/md5"
	"github.com/zeebo/md5/internal/config"
	"github.com/zeebo/md5/internal/log"
	"github.com/zeebo/md5/internal/report"
	"github.com/zeebo/md5/internal/source"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetVerbose(false)

	fs := flag.NewFlagSet("md5sum", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		check      = fs.Bool("c", false, "read MD5 sums from the FILEs and check them")
		format     = fs.String("format", report.FormatText, "output format: text or json")
		tmpl       = fs.String("template", report.DefaultTemplate, "text output line; tags {{digest}}, {{file}}, {{bytes}}")
		decompress = fs.Bool("d", false, "hash the content of gzip and zstd inputs")
		configPath = fs.String("config", "", "path to a TOML file with defaults for the flags above")
		verbose    = fs.Bool("v", false, "enable debug logging")
	)

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Print or check MD5 (128-bit) checksums.\n\n")
		fmt.Fprintf(out, "Usage: md5sum [options] [FILE...]\n\n")
		fmt.Fprintf(out, "With no FILE, or when FILE is -, read standard input.\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	// -v already applies while the config file loads
	log.SetVerbose(*verbose)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Errorf("%v", err)
			return exitUsage
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "template":
			cfg.Template = *tmpl
		case "d":
			cfg.Decompress = *decompress
		case "v":
			cfg.Verbose = *verbose
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Errorf("%v", err)
		return exitUsage
	}
	log.SetVerbose(cfg.Verbose)

	names := fs.Args()
	if len(names) == 0 {
		names = []string{source.Stdin}
	}

	opts := source.Options{Decompress: cfg.Decompress}
	if *check {
		return checkLists(ctx, names, stdin, stdout, opts)
	}

	formatter, err := report.New(cfg.Format, cfg.Template)
	if err != nil {
		log.Errorf("%v", err)
		return exitUsage
	}

	return hashFiles(ctx, names, stdin, stdout, opts, formatter)
}

func hashFiles(ctx context.Context, names []string, stdin io.Reader, stdout io.Writer,
	opts source.Options, formatter report.Formatter) int {

	code := exitOK
	for _, name := range names {
		res, err := hashFile(ctx, name, stdin, opts)
		if err != nil {
			log.Errorf("%s: %v", name, err)
			code = exitFail
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if err := formatter.Format(stdout, res); err != nil {
			log.Errorf("write: %v", err)
			return exitFail
		}
	}
	return code
}

func hashFile(ctx context.Context, name string, stdin io.Reader, opts source.Options) (report.Result, error) {
	rc, err := source.Open(ctx, name, stdin, opts)
	if err != nil {
		return report.Result{}, err
	}
	defer func() { _ = rc.Close() }()

	sum, n, err := md5.SumReader(rc)
	if err != nil {
		return report.Result{}, err
	}

	log.Debugf("%s: hashed %d bytes", name, n)
	return report.Result{File: name, Digest: sum, Bytes: n}, nil
}
