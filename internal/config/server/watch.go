package server

// WatchServerConfig describes the files the agent watches and writes.
// Input is read and converted whenever it changes; the resulting tag
// list is written to Output as a single comma-joined line.
type WatchServerConfig struct {
	Input  string `mapstructure:"input"  yaml:"input"`
	Output string `mapstructure:"output" yaml:"output"`
}
