package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"lufia.org/pkg/residency"
)

func newSummaryCmd(a *app) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the days spent on each continent in a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("year") {
				year = a.cfg.Year
			}
			l, err := a.ledger()
			if err != nil {
				return err
			}
			writeSummary(cmd.OutOrStdout(), year, l.SummaryByYear(year))
			return nil
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year to summarize (default CONTINENTTIME_YEAR or the current year)")
	return cmd
}

func newRangesCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Show the stays grouped by year and continent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.ledger()
			if err != nil {
				return err
			}
			switch output {
			case "text":
				writeProjection(cmd.OutOrStdout(), l.Years(), l.Projection())
				return nil
			case "yaml":
				return writeProjectionYAML(cmd.OutOrStdout(), l.Projection())
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stays in date order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.ledger()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCONTINENT\tSTART\tEND\tDAYS")
			for s := range l.All() {
				fmt.Fprintf(w, "%v\t%v\t%s\t%s\t%d\n", s.ID, s.Continent,
					s.Range.Start().Format(residency.DateLayout),
					s.Range.End().Format(residency.DateLayout),
					s.Range.Days())
			}
			return w.Flush()
		},
	}
}

func newContinentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "continents",
		Short: "List the continents a stay may name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range residency.Continents() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

// ledgerは--fileと--stayから台帳を作る。ファイルの滞在を先に登録する。
func (a *app) ledger() (*residency.Ledger, error) {
	l := residency.New(residency.WithLogger(a.logger))
	if a.file != "" {
		if err := a.applyFile(l, a.file); err != nil {
			return nil, err
		}
	}
	for _, arg := range a.stays {
		c, start, end, err := splitStay(arg, a.cfg.Continent)
		if err != nil {
			return nil, err
		}
		if _, err := l.AddStay(c, start, end); err != nil {
			return nil, fmt.Errorf("%s: stay %q: %w", residency.Kind(err), arg, err)
		}
	}
	a.logger.Debug("ledger built", zap.Int("stays", l.Len()))
	return l, nil
}

func (a *app) applyFile(l *residency.Ledger, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	b, err := residency.LoadBatch(f)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if _, err := l.Apply(b); err != nil {
		return fmt.Errorf("%s: %s: %w", residency.Kind(err), name, err)
	}
	return nil
}

// splitStayはCONTINENT,START,ENDまたはSTART,ENDを分割する
func splitStay(s string, def residency.Continent) (continent, start, end string, err error) {
	a := strings.Split(s, ",")
	for i := range a {
		a[i] = strings.TrimSpace(a[i])
	}
	switch len(a) {
	case 2:
		return def.String(), a[0], a[1], nil
	case 3:
		return a[0], a[1], a[2], nil
	default:
		return "", "", "", fmt.Errorf("stay %q: want CONTINENT,START,END", s)
	}
}

func writeSummary(w io.Writer, year int, sum residency.Summary) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "YEAR %d\n", year)
	fmt.Fprintln(tw, "CONTINENT\tDAYS")
	for _, c := range residency.Continents() {
		if n, ok := sum[c]; ok {
			fmt.Fprintf(tw, "%v\t%d\n", c, n)
		}
	}
	fmt.Fprintf(tw, "Total\t%d\n", sum.Total())
	tw.Flush()
}

func writeProjection(w io.Writer, years []int, p residency.Projection) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, y := range years {
		fmt.Fprintf(tw, "%d\n", y)
		for _, c := range residency.Continents() {
			for _, r := range p[y][c] {
				fmt.Fprintf(tw, "  %v\t%v\n", c, r)
			}
		}
	}
	tw.Flush()
}

type rangeYAML struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

func writeProjectionYAML(w io.Writer, p residency.Projection) error {
	out := make(map[int]map[string][]rangeYAML, len(p))
	for y, m := range p {
		out[y] = make(map[string][]rangeYAML, len(m))
		for c, a := range m {
			for _, r := range a {
				out[y][c.String()] = append(out[y][c.String()], rangeYAML{
					Start: r.Start().Format(residency.DateLayout),
					End:   r.End().Format(residency.DateLayout),
				})
			}
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode ranges: %w", err)
	}
	return enc.Close()
}
