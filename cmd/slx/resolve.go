// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package main

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"slx/core/i18n"
	"slx/internal/imports"
)

type resolveResult struct {
	Module     string   `json:"module"`
	Path       string   `json:"path,omitempty"`
	Error      string   `json:"error,omitempty"`
	Attempted  []string `json:"attempted,omitempty"`
	WorkingDir string   `json:"workingDir,omitempty"`
}

func newResolveCmd(opts *rootOptions) *cobra.Command {

	return &cobra.Command{
		Use:   "resolve <module>...",
		Short: "Resolve module references to source files",
		Long: "Resolve locates the source file for each module reference using the\n" +
			"import search order: working directory, bundled resources, then the\n" +
			"additional search roots.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			refs := make([]imports.Ref, 0, len(args))
			for _, arg := range args {
				var ref imports.Ref
				if ref, err = imports.ParseRef(arg); err != nil {
					return
				}
				refs = append(refs, ref)
			}

			resolver := opts.newResolver()
			resolutions := resolver.ResolveAll(cmd.Context(), refs, opts.effectiveSearchPaths())

			var failed int
			results := make([]resolveResult, 0, len(resolutions))
			for _, res := range resolutions {
				result := resolveResult{Module: res.Ref.String(), Path: res.Path}
				if res.Err != nil {
					failed++
					result.Error = res.Err.Error()
					var notFound *imports.NotFoundError
					if errors.As(res.Err, &notFound) {
						result.Attempted = notFound.Attempted
						result.WorkingDir = notFound.WorkingDir
					}
				}
				results = append(results, result)
			}

			if opts.jsonOut {
				var data []byte
				if data, err = json.MarshalIndent(results, "", "  "); err != nil {
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					status := "ok"
					location := result.Path
					if result.Error != "" {
						status = "not found"
					}
					rows = append(rows, []string{result.Module, status, location})
				}

				table := tablewriter.NewTable(cmd.OutOrStdout())
				table.Header([]string{"MODULE", "STATUS", "LOCATION"})
				if err = table.Bulk(rows); err != nil {
					return
				}
				if err = table.Render(); err != nil {
					return
				}

				for _, result := range results {
					if result.Error != "" {
						fmt.Fprintln(cmd.ErrOrStderr(), result.Error)
					}
				}
			}

			if failed > 0 {
				err = fmt.Errorf(i18n.Msg("%d of %d modules failed to resolve"), failed, len(results))
			}
			return
		},
	}
}
