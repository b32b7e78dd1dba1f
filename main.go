package main

import (
	"fmt"
	"log"
	"os"

	dbactions "github.com/dtnitsch/mr-verify/internal/db"
	"github.com/dtnitsch/mr-verify/internal/verify"
	"github.com/dtnitsch/mr-verify/models"
	"github.com/dtnitsch/mr-verify/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML file with default settings (flags override it)",
		},
		&cli.StringFlag{
			Name:  "sources",
			Value: models.DefaultSourcesGlob,
			Usage: "glob of source documents",
		},
		&cli.StringFlag{
			Name:  "source-format",
			Value: "text",
			Usage: "how to decode source documents: text, html, article",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors to stderr",
		},
	}
}

func verifyFlags() []cli.Flag {
	return append(inputFlags(),
		&cli.StringFlag{
			Name:  "results",
			Value: models.DefaultResultsGlob,
			Usage: "glob of reduced-output files",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "also fail on words that only appear in the results",
		},
		&cli.StringFlag{
			Name:  "report",
			Usage: "write a YAML run report to this path",
		},
		&cli.BoolFlag{
			Name:  "detect-language",
			Usage: "annotate source documents with their language in the report and history",
		},
		&cli.BoolFlag{
			Name:  "record",
			Usage: "store the run in the history database",
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "history database path (default: next to the binary)",
		},
	)
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "mr-verify",
		Usage:  "check word-count results against a recount of the source documents",
		Flags:  verifyFlags(),
		Action: verify.VerifyAction,
		Commands: []*cli.Command{
			{
				Name:   "verify",
				Usage:  "recount the sources and compare with the reduced results",
				Flags:  verifyFlags(),
				Action: verify.VerifyAction,
			},
			{
				Name:  "top",
				Usage: "print the most frequent words of the source documents",
				Flags: append(inputFlags(),
					&cli.IntFlag{
						Name:    "n",
						Aliases: []string{"limit"},
						Value:   25,
						Usage:   "number of words to print",
					},
					&cli.BoolFlag{
						Name:  "skip-common",
						Usage: "leave out common English words",
					},
				),
				Action: verify.TopAction,
			},
			{
				Name:  "runs",
				Usage: "list recorded verification runs",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "history database path"},
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum runs to list (0 for all)"},
					&cli.BoolFlag{Name: "failed", Usage: "only runs that found a mismatch"},
				},
				Action: dbactions.RunsAction,
			},
			{
				Name:      "run",
				Usage:     "show a recorded run (latest if no id is given)",
				ArgsUsage: "[id]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "history database path"},
				},
				Action: dbactions.RunAction,
			},
			{
				Name:  "quickstart",
				Usage: "print a YAML cheat sheet",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return nil
				},
			},
		},
	}
}
