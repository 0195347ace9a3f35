package config

// Vigilfile represents the structure of the .vigil.yaml configuration file.
// Every field is optional; absent fields keep their defaults.
type Vigilfile struct {
	Debounce     string          `yaml:"debounce"`
	AutoRefactor AutoRefactorDTO `yaml:"autoRefactor"`
	Log          LogDTO          `yaml:"log"`
	Watch        WatchDTO        `yaml:"watch"`
}

// AutoRefactorDTO configures the auto-refactor feature.
type AutoRefactorDTO struct {
	Visible *bool `yaml:"visible"`
}

// LogDTO configures logging.
type LogDTO struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// WatchDTO configures the file watcher.
type WatchDTO struct {
	Skip []string `yaml:"skip"`
}
