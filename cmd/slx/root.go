// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"slx/core/i18n"
	"slx/internal/config"
	"slx/internal/imports"
)

type rootOptions struct {
	verbose     bool
	jsonOut     bool
	configPath  string
	searchPaths []string

	cfg        *config.Config
	cfgPath    string
	bundleRoot string
}

// effectiveSearchPaths are the caller-supplied roots in precedence order:
// command-line paths first, then the workspace file's.
func (o *rootOptions) effectiveSearchPaths() []string {

	paths := append([]string(nil), o.searchPaths...)
	return append(paths, o.cfg.SearchPaths...)
}

func (o *rootOptions) newResolver() *imports.Resolver {

	resolver := imports.NewResolver(imports.OSFileSystem(), imports.NewBundleLocator(o.bundleRoot))
	if o.cfg.StdlibDir != "" {
		resolver.StdlibDir = o.cfg.StdlibDir
	}
	return resolver
}

func newRootCmd() *cobra.Command {

	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "slx",
		Short:         "SLX compiler frontend tooling",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {

			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			if opts.configPath != "" {
				opts.cfgPath = opts.configPath
				if opts.cfg, err = config.Load(opts.configPath); err != nil {
					return
				}
			} else if opts.cfg, opts.cfgPath, err = config.LoadWorkspace("."); err != nil {
				return
			}

			opts.bundleRoot = imports.ResolveBundleRoot(opts.cfg.BundleRoot)
			slog.Debug(i18n.Msg("workspace configuration loaded"),
				slog.String("config", opts.cfgPath),
				slog.String("bundleRoot", opts.bundleRoot))
			return
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "machine-readable JSON output")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "workspace config file (default: walk up for slx.yaml)")
	root.PersistentFlags().StringArrayVarP(&opts.searchPaths, "path", "p", nil, "additional module search root (repeatable, highest precedence first)")

	root.AddCommand(newResolveCmd(opts))
	root.AddCommand(newPathsCmd(opts))

	return root
}
