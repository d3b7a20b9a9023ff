package cmd

// LogConfig holds the global logging flags.
type LogConfig struct {
	Level     string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"REMARKDOC_LOG_LEVEL"`
	File      string `help:"Also write logs to this file" env:"REMARKDOC_LOG_FILE"`
	LinesFile string `help:"Trace every element's doc lines to this file" env:"REMARKDOC_LOG_LINES_FILE"`
}

// CLI is the root command tree.
type CLI struct {
	Config string    `help:"Configuration file (json, yaml or toml)" env:"REMARKDOC_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Annotate Annotate      `cmd:"" help:"Annotate schema tables and print the generated source preview"`
	Watch    Watch         `cmd:"" help:"Annotate, then re-run whenever a schema file changes"`
	Cfg      ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}
