package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/uberdash/internal/config"
	"github.com/raykavin/uberdash/pkg/dataset"
	"github.com/raykavin/uberdash/pkg/logger"
	"github.com/raykavin/uberdash/pkg/logger/zerolog"
	"github.com/raykavin/uberdash/pkg/page"
	"github.com/raykavin/uberdash/pkg/server"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const histogramBins = 6

func main() {
	if err := newRootCmd(config.New()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "uberdash",
		Short:         "Serve the Uber pricing page",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, v, configPath)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (e.g. ./uberdash.yaml)")
	rootCmd.PersistentFlags().String("host", "", "Interface to listen on")
	rootCmd.PersistentFlags().IntP("port", "p", 0, "Port to listen on")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Serve unminified assets and disable caching")

	v.BindPFlag("server.host", rootCmd.PersistentFlags().Lookup("host"))
	v.BindPFlag("server.port", rootCmd.PersistentFlags().Lookup("port"))
	v.BindPFlag("server.debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd, v, configPath)
			},
		},
		&cobra.Command{
			Use:   "layout",
			Short: "Print the serialized page layout",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printLayout(cmd.OutOrStdout())
			},
		},
		newDataCmd(),
	)

	return rootCmd
}

func runServe(cmd *cobra.Command, v *viper.Viper, configPath string) error {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(
		log,
		page.BuildLayout(dataset.Records()),
		server.WithHost(cfg.Server.Host),
		server.WithPort(cfg.Server.Port),
		server.WithDebug(cfg.Server.Debug),
		server.WithTitle(cfg.Server.Title),
		server.WithReadTimeout(cfg.Server.ReadTimeout),
		server.WithWriteTimeout(cfg.Server.WriteTimeout),
		server.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}

func newLogger(out io.Writer, cfg config.LogConfig) (logger.Logger, error) {
	return zerolog.New(out, zerolog.Config{
		Level:      cfg.Level,
		TimeLayout: cfg.TimeFormat,
		Colored:    cfg.Colored,
		JSON:       cfg.JSON,
	})
}

func printLayout(out io.Writer) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(page.BuildLayout(dataset.Records()))
}

func newDataCmd() *cobra.Command {
	var series string

	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Print the pricing dataset and its distribution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records := dataset.Records()
			if series != "" {
				r, ok := dataset.Series(series)
				if !ok {
					return fmt.Errorf("unknown series %q (available: %v)", series, dataset.Names())
				}
				records = []dataset.Record{r}
			}
			return printData(cmd.OutOrStdout(), records)
		},
	}

	dataCmd.Flags().StringVarP(&series, "series", "s", "", "Only print the named series (e.g. Brooklyn)")

	return dataCmd
}

func printData(out io.Writer, records []dataset.Record) error {
	if len(records) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader(append([]string{"Hour"}, lo.Map(records, func(r dataset.Record, _ int) string {
		return r.Name
	})...))
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, hour := range records[0].X {
		row := []string{hour}
		for _, r := range records {
			row = append(row, "$"+strconv.FormatFloat(r.Y[i], 'f', 2, 64))
		}
		table.Append(row)
	}

	table.SetFooter(append([]string{"Mean"}, lo.Map(records, func(r dataset.Record, _ int) string {
		return "$" + strconv.FormatFloat(lo.Mean(r.Y), 'f', 2, 64)
	})...))
	table.Render()

	for _, r := range records {
		fmt.Fprintf(out, "\n------ %s PRICE DISTRIBUTION (USD) ------\n", r.Name)
		if err := histogram.Fprint(out, histogram.Hist(histogramBins, r.Y), histogram.Linear(20)); err != nil {
			return fmt.Errorf("failed to print histogram: %w", err)
		}
	}

	return nil
}
