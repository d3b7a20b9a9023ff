package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/Alia5/remarkdoc/comment"
	"github.com/Alia5/remarkdoc/internal/configpaths"
	"github.com/Alia5/remarkdoc/internal/log"
	"github.com/Alia5/remarkdoc/internal/pipeline"
	"github.com/Alia5/remarkdoc/internal/preview"
	"github.com/Alia5/remarkdoc/schema"
)

// Annotate loads schema files, runs the comment generator over every table
// and prints the annotated preview.
type Annotate struct {
	Schema       []string `help:"Schema description files or globs (yaml, toml, json); '**' is supported" required:"" sep:"," env:"REMARKDOC_SCHEMA"`
	Prop         []string `help:"Comment generator property as key=value (repeatable)" sep:"none" env:"REMARKDOC_PROP"`
	SuppressDate bool     `help:"Omit timestamps from merge tags (same as --prop suppressDate=true)" env:"REMARKDOC_SUPPRESS_DATE"`
	MergeTags    bool     `help:"Enable the merge-aware class comment" env:"REMARKDOC_MERGE_TAGS"`
	Package      string   `help:"Java package of generated model classes" default:"com.example.model" env:"REMARKDOC_PACKAGE"`
	Output       string   `help:"Write the preview to this file instead of stdout" env:"REMARKDOC_OUTPUT"`
	SkipMapper   bool     `help:"Omit mapper XML from the preview" env:"REMARKDOC_SKIP_MAPPER"`
}

// Run is called by Kong when the annotate command is executed.
func (a *Annotate) Run(logger *slog.Logger, lines log.LineLogger) error {
	_, err := a.execute(logger, lines, os.Stdout, isTerminal(os.Stdout))
	return err
}

// Properties builds the generator configuration from flags.
func (a *Annotate) Properties() (comment.Properties, error) {
	props, err := comment.ParseProperties(a.Prop)
	if err != nil {
		return nil, err
	}
	if a.SuppressDate {
		props[comment.PropSuppressDate] = "true"
	}
	return props, nil
}

// execute performs one annotate pass and returns the schema files it read.
// A fresh generator is built for every pass.
func (a *Annotate) execute(logger *slog.Logger, lines log.LineLogger, stdout io.Writer, banner bool) ([]string, error) {
	props, err := a.Properties()
	if err != nil {
		return nil, err
	}
	gen := comment.New(props,
		comment.WithMergeTags(a.MergeTags),
		comment.WithLogger(logger),
	)
	logger.Debug("Comment generator configured",
		"suppressDate", gen.SuppressDate(),
		"mergeTags", a.MergeTags,
		"properties", props.Keys())

	s, files, err := schema.LoadAll(a.Schema)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	logger.Info("Loaded schema", "files", len(files), "tables", len(s.Tables))

	results := pipeline.Run(gen, s, pipeline.Options{
		Package: a.Package,
		Lines:   lines,
		Logger:  logger,
	})

	opts := preview.Options{Banner: banner, SkipMapper: a.SkipMapper}
	if a.Output == "" {
		if err := preview.Write(stdout, results, opts); err != nil {
			return nil, fmt.Errorf("write preview: %w", err)
		}
	} else {
		opts.Banner = false
		if err := writeOutput(a.Output, results, opts); err != nil {
			return nil, err
		}
	}

	commented := 0
	for _, r := range results {
		commented += r.Commented
	}
	logger.Info("Annotation complete", "tables", len(results), "commented", commented, "output", outputName(a.Output))
	return files, nil
}

// writeOutput renders results into path, reporting a failed close.
func writeOutput(path string, results []pipeline.Result, opts preview.Options) (err error) {
	if err := configpaths.EnsureDir(path); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	if err := preview.Write(f, results, opts); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}

func outputName(p string) string {
	if p == "" {
		return "stdout"
	}
	return p
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
