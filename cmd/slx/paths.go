// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"slx/internal/imports"
)

type pathsSummary struct {
	WorkingDir  string   `json:"workingDir"`
	ConfigFile  string   `json:"configFile,omitempty"`
	BundleRoot  string   `json:"bundleRoot,omitempty"`
	StdlibDir   string   `json:"stdlibDir"`
	SearchPaths []string `json:"searchPaths"`
}

func newPathsCmd(opts *rootOptions) *cobra.Command {

	return &cobra.Command{
		Use:   "paths [module]",
		Short: "Show the import search configuration or a module's candidate paths",
		Long: "Without arguments, paths prints the effective search configuration.\n" +
			"With a module reference, it prints every location the resolver would\n" +
			"probe for it, in order.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			if len(args) == 1 {
				return printCandidates(cmd, opts, args[0])
			}
			return printSummary(cmd, opts)
		},
	}
}

func printCandidates(cmd *cobra.Command, opts *rootOptions, refText string) (err error) {

	var ref imports.Ref
	if ref, err = imports.ParseRef(refText); err != nil {
		return
	}

	candidates := opts.newResolver().Candidates(ref, opts.effectiveSearchPaths())

	if opts.jsonOut {
		var data []byte
		if data, err = json.MarshalIndent(candidates, "", "  "); err != nil {
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return
	}

	rows := make([][]string, 0, len(candidates))
	for i, cand := range candidates {
		rows = append(rows, []string{strconv.Itoa(i + 1), cand.Path, cand.Origin})
	}

	table := tablewriter.NewTable(cmd.OutOrStdout())
	table.Header([]string{"#", "PATH", "ORIGIN"})
	if err = table.Bulk(rows); err != nil {
		return
	}
	return table.Render()
}

func printSummary(cmd *cobra.Command, opts *rootOptions) (err error) {

	workingDir, _ := os.Getwd()
	stdlibDir := opts.cfg.StdlibDir
	if stdlibDir == "" {
		stdlibDir = imports.DefaultStdlibDir
	}

	summary := pathsSummary{
		WorkingDir:  workingDir,
		ConfigFile:  opts.cfgPath,
		BundleRoot:  opts.bundleRoot,
		StdlibDir:   stdlibDir,
		SearchPaths: opts.effectiveSearchPaths(),
	}

	if opts.jsonOut {
		var data []byte
		if data, err = json.MarshalIndent(summary, "", "  "); err != nil {
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return
	}

	rows := [][]string{
		{"working directory", summary.WorkingDir},
		{"workspace config", orNone(summary.ConfigFile)},
		{"bundle root", orNone(summary.BundleRoot)},
		{"stdlib dir", summary.StdlibDir},
	}
	for i, searchPath := range summary.SearchPaths {
		rows = append(rows, []string{fmt.Sprintf("search path %d", i+1), searchPath})
	}

	table := tablewriter.NewTable(cmd.OutOrStdout())
	table.Header([]string{"SETTING", "VALUE"})
	if err = table.Bulk(rows); err != nil {
		return
	}
	return table.Render()
}

func orNone(value string) string {

	if value == "" {
		return "<none>"
	}
	return value
}
