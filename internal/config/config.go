// Package config handles meshdebug configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Scene   SceneConfig   `yaml:"scene"`
	Overlay OverlayConfig `yaml:"overlay"`
	Camera  CameraConfig  `yaml:"camera"`
	Output  OutputConfig  `yaml:"output"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// SceneConfig selects what to inspect.
type SceneConfig struct {
	Path   string `yaml:"path"`   // scene YAML file
	Select string `yaml:"select"` // object selected at startup, by path or name
}

// OverlayConfig holds the face overlay appearance. Colors are hex strings.
type OverlayConfig struct {
	MarkerScale  float32     `yaml:"marker_scale"`
	DashSize     float32     `yaml:"dash_size"`
	EdgeColor    string      `yaml:"edge_color"`
	VertexColors [3]string   `yaml:"vertex_colors"`
	Label        LabelConfig `yaml:"label"`
}

// LabelConfig holds the vertex index label style.
type LabelConfig struct {
	Width    float32 `yaml:"width"`
	Height   float32 `yaml:"height"`
	FontSize float32 `yaml:"font_size"`
	Color    string  `yaml:"color"`
}

// CameraConfig positions the orbit camera around the selection.
type CameraConfig struct {
	FOVDeg       float32 `yaml:"fov_deg"`
	YawDeg       float32 `yaml:"yaw_deg"`
	PitchDeg     float32 `yaml:"pitch_deg"`
	Distance     float32 `yaml:"distance"` // 0 fits the selected mesh
	HandlePixels float32 `yaml:"handle_pixels"`
}

// OutputConfig controls rendered snapshots.
type OutputConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Dir        string `yaml:"dir"`
	Background string `yaml:"background"`
	Wireframe  bool   `yaml:"wireframe"` // draw the whole mesh behind the overlay
}

// ViewerConfig controls the interactive window.
type ViewerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"`
	VSync   bool   `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Overlay: OverlayConfig{
			MarkerScale:  0.2,
			DashSize:     5,
			EdgeColor:    "#ffffff",
			VertexColors: [3]string{"#ff0000", "#00ff00", "#0000ff"},
			Label: LabelConfig{
				Width:    40,
				Height:   20,
				FontSize: 12,
				Color:    "#ffffff",
			},
		},
		Camera: CameraConfig{
			FOVDeg:       60,
			YawDeg:       30,
			PitchDeg:     25,
			HandlePixels: 80,
		},
		Output: OutputConfig{
			Width:      1280,
			Height:     720,
			Dir:        ".",
			Background: "#202428",
			Wireframe:  true,
		},
		Viewer: ViewerConfig{
			Title: "Mesh Debugger",
			VSync: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
