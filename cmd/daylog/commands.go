package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hyp3rd/ewrap"
	"github.com/urfave/cli/v3"

	"github.com/hyp3rd/daylog"
	"github.com/hyp3rd/daylog/internal/constants"
	"github.com/hyp3rd/daylog/pkg/adapter"
	"github.com/hyp3rd/daylog/pkg/configloader"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "daylog",
		Usage: "Append leveled lines to date-named log files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path; " + constants.DefaultEnvPrefix + "_ environment variables are used when empty",
			},
			&cli.StringFlag{
				Name:  "log-path",
				Usage: "Override the log directory, relative to the root directory",
			},
			&cli.StringFlag{
				Name:  "root",
				Usage: "Override the root directory",
			},
		},
		Commands: []*cli.Command{
			writeCommand(),
			pathCommand(),
			levelsCommand(),
		},
	}
}

func writeCommand() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Usage:     "Write the arguments, or each line read from stdin, at a level",
		ArgsUsage: "[message...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "Level name from the level table",
				Value:   daylog.LevelInfo.String(),
			},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			level, err := daylog.ParseLevel(c.String("level"))
			if err != nil {
				return err
			}

			logger, err := openLogger(c)
			if err != nil {
				return err
			}

			defer logger.Close()

			if c.Args().Len() > 0 {
				return writeLine(logger, level, strings.Join(c.Args().Slice(), " "))
			}

			return writeLines(logger, level, c.Root().Reader)
		},
	}
}

func pathCommand() *cli.Command {
	return &cli.Command{
		Name:  "path",
		Usage: "Print the file that receives lines written now",
		Action: func(_ context.Context, c *cli.Command) error {
			logger, err := openLogger(c)
			if err != nil {
				return err
			}

			defer logger.Close()

			_, err = fmt.Fprintln(c.Root().Writer, logger.CurrentLogFilePath(time.Now()))

			return err
		},
	}
}

func levelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "levels",
		Usage: "List the level table",
		Action: func(_ context.Context, c *cli.Command) error {
			for _, level := range daylog.Levels() {
				_, err := fmt.Fprintf(c.Root().Writer, "%-18s %d\n", level, level.MustCode())
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// openLogger builds an adapter from the configuration file or the
// environment, then applies the command line overrides. A disabled adapter is
// an error here, unlike in the library.
func openLogger(c *cli.Command) (*adapter.Adapter, error) {
	var (
		cfg *daylog.Config
		err error
	)

	if path := c.String("config"); path != "" {
		cfg, err = configloader.FromFile(path)
	} else {
		cfg, err = configloader.FromEnv(constants.DefaultEnvPrefix)
	}

	if err != nil {
		return nil, err
	}

	if logPath := c.String("log-path"); logPath != "" {
		cfg.LogPath = logPath
	}

	if root := c.String("root"); root != "" {
		cfg.RootDir = root
	}

	cfg.ErrorHandler = func(err error) {
		fmt.Fprintf(os.Stderr, "daylog: %v\n", err)
	}

	logger := adapter.NewAdapter(*cfg)
	if !logger.Enabled() {
		return nil, ewrap.Wrap(logger.Err(), "logger is disabled")
	}

	return logger, nil
}

func writeLine(logger *adapter.Adapter, level daylog.Level, message string) error {
	if !logger.IsAllowed(level) {
		return ewrap.Wrap(daylog.ErrLevelNotAllowed, "write rejected").WithMetadata("level", level.String())
	}

	if !logger.Log(level, message) {
		return ewrap.New("failed to append log line").WithMetadata("level", level.String())
	}

	return nil
}

func writeLines(logger *adapter.Adapter, level daylog.Level, reader io.Reader) error {
	if reader == nil {
		reader = os.Stdin
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		err := writeLine(logger, level, line)
		if err != nil {
			return err
		}
	}

	err := scanner.Err()
	if err != nil {
		return ewrap.Wrap(err, "failed to read stdin")
	}

	return nil
}
