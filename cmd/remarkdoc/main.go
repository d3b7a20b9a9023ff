package main

import (
	"os"
	"strings"

	"github.com/Alia5/remarkdoc/internal/cmd"
	"github.com/Alia5/remarkdoc/internal/configpaths"
	"github.com/Alia5/remarkdoc/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("remarkdoc"),
		kong.Description("Schema remark driven comment generator for MyBatis style models"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var lines log.LineLogger
	if cli.Log.LinesFile != "" {
		f, err := os.OpenFile(cli.Log.LinesFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open lines log file", "file", cli.Log.LinesFile, "error", err)
			lines = log.NewLines(nil)
		} else {
			lines = log.NewLines(f)
			closeFiles = append(closeFiles, f)
		}
	} else if cli.Log.Level == "trace" {
		lines = log.NewLines(os.Stderr)
	} else {
		lines = log.NewLines(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(lines, (*log.LineLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("REMARKDOC_CONFIG"); v != "" {
		return v
	}
	return ""
}
