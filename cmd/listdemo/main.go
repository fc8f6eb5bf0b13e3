package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"github.com/mgnsk/listdemo/internal/config"
	"github.com/mgnsk/listdemo/internal/roster"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	parser := argparse.NewParser("listdemo", "Prints a student roster kept on intrusive lists")
	file := parser.String("f", "file", &argparse.Options{Help: "Student file, one id,last,first,major,advisor,gpa record per line"})
	configPath := parser.String("c", "config", &argparse.Options{Help: "YAML config file"})
	major := parser.String("m", "major", &argparse.Options{Help: "Major to list separately"})
	logLevel := parser.String("l", "log-level", &argparse.Options{Help: "Log level"})
	rank := parser.Flag("r", "rank", &argparse.Options{Help: "Order majors by descending gpa"})

	if err := parser.Parse(args); err != nil {
		fmt.Fprint(stderr, parser.Usage(err))
		return errUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	if *file != "" {
		cfg.Input = *file
	}
	if *major != "" {
		cfg.Major = *major
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *rank {
		cfg.Rank = true
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprint(stderr, parser.Usage(err))
		return errUsage
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	defer logger.Sync()

	r := roster.New(
		roster.WithMajor(cfg.Major),
		roster.WithLogger(logger.Named("roster")),
	)
	defer r.Close()

	if _, err := r.LoadFile(cfg.Input); err != nil {
		logger.Error("failed to load students", zap.String("input", cfg.Input), zap.Error(err))
		return err
	}

	if cfg.Rank {
		r.RankMajors()
	}

	if err := r.WriteAll(stdout); err != nil {
		return err
	}

	if err := r.WriteMajors(stdout); err != nil {
		return err
	}

	return r.WriteLowestGPA(stdout)
}
