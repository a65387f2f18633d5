package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"randlab/adapters/excel"
	"randlab/domain/randstat"
	"randlab/internal/config"
	"randlab/internal/container"
)

// RandlabApp is the command line surface: run an analysis, list the
// available checks, and browse stored report history.
var RandlabApp = cli.App{
	Name:     "randlab",
	HelpName: "randlab",
	Usage:    "statistical quality analysis of random number generators",
	Commands: []*cli.Command{
		&AnalyzeCommand,
		&ChecksCommand,
		&ReportsCommand,
	},
}

// AnalyzeCommand draws a sample and runs the battery or a single check
var AnalyzeCommand = cli.Command{
	Name:  "analyze",
	Usage: "draw a sample and run statistical checks against it",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "generator",
			Usage: "generator kind: modulo_uniform, range_uniform or clipped_normal",
			Value: "range_uniform",
		},
		&cli.IntFlag{
			Name:  "n",
			Usage: "domain size, values fall in [0, n)",
			Value: 100,
		},
		&cli.IntFlag{
			Name:  "size",
			Usage: "number of samples to draw",
			Value: 10000,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "base seed for the deterministic sample streams",
			Value: 1,
		},
		&cli.StringFlag{
			Name:  "check",
			Usage: "run a single named check instead of the full battery",
		},
		&cli.StringFlag{
			Name:  "xlsx",
			Usage: "write the report to an .xlsx workbook at this path",
		},
	},
	Action: runAnalyze,
}

// ChecksCommand lists the available checks
var ChecksCommand = cli.Command{
	Name:  "checks",
	Usage: "list the available statistical checks",
	Action: func(ctx *cli.Context) error {
		c, err := newContainer()
		if err != nil {
			return err
		}
		defer c.Close()

		for _, name := range c.Service.Checks() {
			fmt.Fprintln(ctx.App.Writer, name)
		}
		return nil
	},
}

// ReportsCommand lists stored report history
var ReportsCommand = cli.Command{
	Name:  "reports",
	Usage: "list stored analysis reports, newest first",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Usage: "maximum number of reports to list",
			Value: 20,
		},
	},
	Action: func(ctx *cli.Context) error {
		c, err := newContainer()
		if err != nil {
			return err
		}
		defer c.Close()

		reports, err := c.Reports.List(ctx.Context, ctx.Int("limit"))
		if err != nil {
			return err
		}
		if len(reports) == 0 {
			fmt.Fprintln(ctx.App.Writer, "no reports stored")
			return nil
		}
		for _, report := range reports {
			fmt.Fprintf(ctx.App.Writer, "%s  %s  N=%d size=%d seed=%d  %s\n",
				report.ID, report.GeneratorID,
				report.Config.DomainSize, report.Config.SampleSize, report.Config.Seed,
				report.CompletedAt)
		}
		return nil
	},
}

func runAnalyze(ctx *cli.Context) error {
	kind, err := randstat.ParseGeneratorKind(ctx.String("generator"))
	if err != nil {
		return err
	}

	cfg := randstat.TestConfig{
		DomainSize: ctx.Int("n"),
		SampleSize: ctx.Int("size"),
		Seed:       ctx.Int64("seed"),
	}

	c, err := newContainer()
	if err != nil {
		return err
	}
	defer c.Close()

	report, err := c.Service.Run(ctx.Context, kind, cfg, ctx.String("check"))
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "report %s  generator=%s N=%d size=%d seed=%d\n\n",
		report.ID, report.GeneratorID, cfg.DomainSize, cfg.SampleSize, cfg.Seed)
	for _, result := range report.Results {
		fmt.Fprintf(ctx.App.Writer, "== %s ==\n", result.CheckName)
		for _, line := range result.Text {
			fmt.Fprintln(ctx.App.Writer, line)
		}
		fmt.Fprintln(ctx.App.Writer)
	}

	if path := ctx.String("xlsx"); path != "" {
		if err := excel.NewReportWriter(path).Write(report); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		fmt.Fprintf(ctx.App.Writer, "workbook written to %s\n", path)
	}
	return nil
}

func newContainer() (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return container.New(cfg)
}

func main() {
	_ = godotenv.Load()

	if err := RandlabApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
