// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/olegiv/ocms-sites/internal/config"
	"github.com/olegiv/ocms-sites/internal/logging"
	"github.com/olegiv/ocms-sites/internal/site"
	"github.com/olegiv/ocms-sites/internal/siteconfig"
	"github.com/olegiv/ocms-sites/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// options holds the parsed command line flags.
type options struct {
	configPath string
	languageID int
	format     string
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Site configuration file (overrides OCMS_SITE_CONFIG)")
	flag.IntVar(&opts.languageID, "language", -1, "Only print the language with this ID")
	flag.StringVar(&opts.format, "format", "json", "Output format: json|yaml")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "ocms-sites - print site language configuration\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_SITE_CONFIG  Site configuration file (default: ./config/sites/main/config.yaml)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_ENV          Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_LOG_LEVEL    Log level: debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_LOG_FORMAT   Log format: text|json (default: text)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Printf("ocms-sites %s\n", info)
		os.Exit(0)
	}

	if err := run(opts, os.Stdout); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(opts options, out io.Writer) error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr so stdout only carries the rendered languages.
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	path := cfg.SiteConfigPath
	if opts.configPath != "" {
		path = opts.configPath
	}

	s, err := siteconfig.Load(path)
	if err != nil {
		return fmt.Errorf("loading site: %w", err)
	}
	slog.Info("site loaded", "site", s.Identifier(), "path", path, "languages", len(s.Languages()))

	langs := s.Languages()
	if opts.languageID >= 0 {
		l, err := s.Language(opts.languageID)
		if err != nil {
			return err
		}
		slog.Debug("selected language", "language", l)
		langs = []*site.SiteLanguage{l}
	}

	arrays := make([]site.Array, 0, len(langs))
	for _, l := range langs {
		arrays = append(arrays, l.ToArray())
	}

	return render(out, opts.format, arrays)
}

// render writes the language arrays in the requested format.
func render(w io.Writer, format string, arrays []site.Array) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(arrays)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(arrays); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
