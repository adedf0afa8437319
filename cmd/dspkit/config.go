package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dspkit/dsp/filter/biquad"
)

// settings is the resolved configuration as written by "dspkit config".
// The same layout is accepted by --config.
type settings struct {
	LogLevel   string        `yaml:"log_level"`
	SampleRate float64       `yaml:"sample_rate"`
	BufferSize int           `yaml:"buffer_size"`
	Algorithm  string        `yaml:"algorithm"`
	Channel    string        `yaml:"channel"`
	Filter     biquad.Config `yaml:"filter"`
}

func (a *app) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `config resolves flags, DSPKIT_* environment variables, the --config
file and built-in defaults (in that order of precedence) and prints the
result. The output can be saved and passed back with --config.`,
		Args: cobra.NoArgs,
		RunE: a.runConfig,
	}

	addFilterFlags(cmd.Flags())

	return cmd
}

func (a *app) runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := a.filterConfig(0)
	if err != nil {
		return err
	}

	s := settings{
		LogLevel:   a.v.GetString("log_level"),
		SampleRate: a.v.GetFloat64("sample_rate"),
		BufferSize: a.v.GetInt("buffer_size"),
		Algorithm:  a.v.GetString("algorithm"),
		Channel:    a.v.GetString("channel"),
		Filter:     cfg,
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)

	if err := enc.Encode(&s); err != nil {
		return err
	}

	return enc.Close()
}
