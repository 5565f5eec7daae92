package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"workhours/internal/hours"
	"workhours/internal/overview"
	"workhours/internal/platform/config"
	"workhours/internal/workdays"
)

type cli struct {
	configPath string
}

// open loads the config and connects. Callers must Close the App.
func (c *cli) open(ctx context.Context) (*App, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	return NewApp(ctx, cfg)
}

func SetupCommands() *cobra.Command {
	c := &cli{}

	serve := func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		a, err := c.open(ctx)
		if err != nil {
			return err
		}
		defer a.Close()
		return a.Serve(ctx)
	}

	// root command; without a subcommand it serves
	rootCmd := &cobra.Command{
		Use:           "workhours",
		Short:         "Track daily work hours, totals and overtime",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultPath, "path to the YAML config file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and web pages",
		RunE:  serve,
	}

	// command for creating tables / indexes without starting the server
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", a.handle.Name())
			return nil
		},
	}

	var site, note string
	logCmd := &cobra.Command{
		Use:   "log [date] [start] [end]",
		Short: "Record the hours of one day, replacing any earlier entry for that date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			res, created, err := a.workDays.Upsert(cmd.Context(), workdays.UpsertWorkDayRequest{
				DateString: args[0],
				StartTime:  args[1],
				EndTime:    args[2],
				Site:       &site,
				Note:       &note,
			})
			if err != nil {
				return err
			}
			verb := "updated"
			if created {
				verb = "logged"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s-%s, %.2f hours\n", verb, res.DateString, res.StartTime, res.EndTime, res.NetHours)
			return nil
		},
	}
	logCmd.Flags().StringVar(&site, "site", "", "work site")
	logCmd.Flags().StringVar(&note, "note", "", "free-form note")

	var period, date, export string
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print totals and overtime for a week or month",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			kind, anchor, err := a.overview.ParseQuery(period, date)
			if err != nil {
				return err
			}
			sum, err := a.overview.Summarize(cmd.Context(), kind, anchor)
			if err != nil {
				return err
			}
			printSummary(cmd, sum)

			if export == "" {
				return nil
			}
			format, err := overview.ParseFormat(strings.TrimPrefix(filepath.Ext(export), "."))
			if err != nil {
				return err
			}
			f, err := os.Create(export)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := overview.Export(f, sum, format); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "written %s\n", export)
			return nil
		},
	}
	summaryCmd.Flags().StringVar(&period, "period", string(hours.Week), "week or month")
	summaryCmd.Flags().StringVar(&date, "date", "", "any day inside the period (YYYY-MM-DD), default today")
	summaryCmd.Flags().StringVar(&export, "export", "", "also write the period to this .xlsx or .csv file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(summaryCmd)

	return rootCmd
}

func printSummary(cmd *cobra.Command, sum overview.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s .. %s)\n", sum.Label, sum.From, sum.To)

	headers := []string{"Date", "Start", "End", "Hours", "Site", "Note"}
	var rows [][]string
	for _, d := range sum.Days {
		rows = append(rows, []string{
			d.DateString,
			d.StartTime,
			d.EndTime,
			fmt.Sprintf("%.2f", d.NetHours),
			str(d.Site),
			str(d.Note),
		})
	}
	footers := []string{"", "", "Total:", fmt.Sprintf("%.2f", sum.TotalHours), "", ""}
	printTable(out, headers, rows, footers)
	fmt.Fprintf(out, "target %.2f, overtime %+.2f\n", sum.TargetHours, sum.OvertimeHours)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
