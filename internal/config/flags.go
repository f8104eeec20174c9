package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile      = flag.String("log-file", "", "Also write logs to this file")
	flagStrict       = flag.Bool("strict", false, "Reject malformed faces and attribute arrays")
	flagKeepNormals  = flag.Bool("keep-normals", false, "Keep normals read from the input instead of recomputing")
	flagWriteNormals = flag.Bool("write-normals", false, "Write vertex normals to output files")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagStrict {
		cfg.Reader.Strict = true
	}
	if *flagKeepNormals {
		cfg.Reader.Normals = "keep"
	}
	if *flagWriteNormals {
		cfg.Writer.Normals = true
	}
}
