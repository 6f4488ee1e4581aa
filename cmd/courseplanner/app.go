package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/gostonefire/courseplanner"
	"github.com/gostonefire/courseplanner/internal/config"
	"github.com/gostonefire/courseplanner/internal/hash"
	"github.com/gostonefire/courseplanner/internal/ingest"
	"github.com/gostonefire/courseplanner/internal/pkg/logger"
	"github.com/gostonefire/courseplanner/internal/planner"
	"github.com/gostonefire/courseplanner/internal/utils"
	"github.com/urfave/cli/v2"
)

func newApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:      "courseplanner",
		Usage:     "load course records into a hash table and look them up",
		Reader:    in,
		Writer:    out,
		ErrWriter: out,
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "courseplanner.yaml", Usage: "YAML configuration file"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, error or disabled"},
		}, tableFlags()...),
		Action: runInteractive,
		Commands: []*cli.Command{
			{
				Name:  "list",
				Flags: tableFlags(),
				Usage: "print all courses of the data file sorted by course number",
				Action: withLoadedTable(func(cCtx *cli.Context, table *courseplanner.CourseHashMap) error {
					return planner.PrintCourseList(cCtx.App.Writer, table)
				}),
			},
			{
				Name:      "show",
				Flags:     tableFlags(),
				Usage:     "print details of one course",
				ArgsUsage: "COURSE_NUMBER",
				Action: withLoadedTable(func(cCtx *cli.Context, table *courseplanner.CourseHashMap) error {
					courseNumber := utils.Trim(cCtx.Args().First())
					if courseNumber == "" {
						return errors.New("no course number given")
					}
					return planner.PrintCourseInfo(cCtx.App.Writer, table, courseNumber)
				}),
			},
			{
				Name:  "stats",
				Flags: tableFlags(),
				Usage: "print bucket usage of the hash table after loading the data file",
				Action: withLoadedTable(func(cCtx *cli.Context, table *courseplanner.CourseHashMap) error {
					return planner.PrintStat(cCtx.App.Writer, table)
				}),
			},
		},
	}
}

// tableFlags - Flags accepted both before and after a command name
func tableFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "course data file to load"},
		&cli.Int64Flag{Name: "table-size", Usage: "number of buckets in the hash table"},
		&cli.StringFlag{Name: "hash", Usage: "hash algorithm: polynomial, crc32 or xxhash"},
	}
}

// flagContext - Returns the innermost context in which the flag was given, nil if it was not given at all
func flagContext(cCtx *cli.Context, name string) *cli.Context {
	for _, c := range cCtx.Lineage() {
		if c.IsSet(name) {
			return c
		}
	}
	return nil
}

// loadConfig - Reads configuration, applies command line overrides and configures logging
func loadConfig(cCtx *cli.Context) (cfg *config.Config, err error) {
	cfg, err = config.LoadConfig(cCtx.String("config"))
	if err != nil {
		return
	}

	if c := flagContext(cCtx, "file"); c != nil {
		cfg.Data.File = c.String("file")
	}
	if c := flagContext(cCtx, "table-size"); c != nil {
		cfg.Table.Size = c.Int64("table-size")
	}
	if c := flagContext(cCtx, "hash"); c != nil {
		cfg.Table.Hash = c.String("hash")
	}
	if cCtx.IsSet("log-level") {
		cfg.Logging.Level = cCtx.String("log-level")
	}
	if err = cfg.Validate(); err != nil {
		err = fmt.Errorf("invalid configuration: %w", err)
		return
	}

	logger.Configure(cfg.LoggerConfig())

	return
}

// newTable - Creates the course hash map described by the configuration
func newTable(cfg *config.Config) (table *courseplanner.CourseHashMap, err error) {
	if cfg.Table.Hash == hash.Polynomial {
		table, _, err = courseplanner.NewCourseHashMap(cfg.Table.Size, nil)
		return
	}

	hashAlgorithm, err := hash.NewHashAlgorithm(cfg.Table.Hash, cfg.Table.Size)
	if err != nil {
		return
	}
	table, _, err = courseplanner.NewCourseHashMap(cfg.Table.Size, hashAlgorithm)

	return
}

// runInteractive - Starts the menu, after loading the configured data file if there is one
func runInteractive(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	table, err := newTable(cfg)
	if err != nil {
		return err
	}

	p := planner.NewPlanner(cCtx.App.Reader, cCtx.App.Writer, table)
	if cfg.Data.File != "" {
		if _, err = p.LoadCourseData(cfg.Data.File); err != nil {
			return err
		}
	}

	return p.Run()
}

// withLoadedTable - Wraps a rendering function into a command action that first loads the data file
func withLoadedTable(render func(cCtx *cli.Context, table *courseplanner.CourseHashMap) error) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		cfg, err := loadConfig(cCtx)
		if err != nil {
			return err
		}
		if cfg.Data.File == "" {
			return errors.New("no course data file given, use --file")
		}

		table, err := newTable(cfg)
		if err != nil {
			return err
		}

		report, err := ingest.LoadCourseData(cfg.Data.File, table)
		if err != nil {
			return err
		}
		for _, le := range report.LineErrors() {
			fmt.Fprintln(cCtx.App.ErrWriter, le.Error())
		}

		return render(cCtx, table)
	}
}
