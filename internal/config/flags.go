package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagScene  = flag.String("scene", "", "Scene file to inspect")
	flagSelect = flag.String("select", "", "Object selected at startup")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagOut    = flag.String("out", "", "Directory for rendered snapshots")
	flagWindow = flag.Bool("window", false, "Open the interactive viewer")
	flagWidth  = flag.Int("width", 0, "Render width")
	flagHeight = flag.Int("height", 0, "Render height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagSelect != "" {
		cfg.Scene.Select = *flagSelect
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagWindow {
		cfg.Viewer.Enabled = true
	}
	if *flagWidth > 0 {
		cfg.Output.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Output.Height = *flagHeight
	}
}
