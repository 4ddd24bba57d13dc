package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var degradedColor = color.New(color.FgRed, color.Bold)

// printContributors prints contributors table followed by a line describing data freshness.
func printContributors(w io.Writer, contributors app.ContributorsPage, colored bool) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Repository", "Avatars", "Total", "Status"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	if err := table.Bulk(contributorsRows(contributors, colored)); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	source := "fetched"
	if contributors.FromCache {
		source = "cached"
	}
	_, err := fmt.Fprintf(
		w,
		"%s %s, revalidate in %s\n",
		source,
		humanize.Time(contributors.FetchedAt),
		contributors.Revalidate,
	)
	return err
}

func contributorsRows(contributors app.ContributorsPage, colored bool) [][]string {
	names := make([]string, 0, len(contributors.Repositories))
	for name := range contributors.Repositories {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		summary := contributors.Repositories[name]

		status := "ok"
		if contributors.Degraded[name] {
			status = "degraded"
			if colored {
				status = degradedColor.Sprint(status)
			}
		}

		rows = append(rows, []string{
			name,
			strconv.Itoa(len(summary.Avatars)),
			humanize.Comma(int64(summary.Total)),
			status,
		})
	}

	return rows
}
