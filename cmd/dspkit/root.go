package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-dspkit/dsp/core"
)

const envPrefix = "DSPKIT"

// app carries the per-invocation configuration and logger shared by all
// sub-commands.
type app struct {
	v          *viper.Viper
	log        *logrus.Logger
	configFile string
}

// flagKeys maps flag names to nested config keys. Flags not listed use
// their own name with dashes turned into underscores.
var flagKeys = map[string]string{
	"type":        "filter.type",
	"param":       "filter.parameterization",
	"frequency":   "filter.center_frequency",
	"q":           "filter.q",
	"bandwidth":   "filter.bandwidth",
	"shelf-slope": "filter.shelf_slope",
	"gain":        "filter.gain_db",
}

func configKey(flagName string) string {
	if key, ok := flagKeys[flagName]; ok {
		return key
	}

	return strings.ReplaceAll(flagName, "-", "_")
}

func newRootCommand() *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: logrus.New(),
	}

	root := &cobra.Command{
		Use:   "dspkit",
		Short: "Spectrum analysis and biquad filtering for WAV files",
		Long: `dspkit exposes the algo-dspkit transforms and biquad filter on the
command line: magnitude spectra (DFT, FFT, RFFT or planned FFT),
cookbook biquad filtering of mono and stereo WAV files, and frequency
response tables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initializeConfig(cmd)
		},
	}

	defaults := core.DefaultProcessorConfig()

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Float64("sample-rate", defaults.SampleRate, "sample rate in Hz for generated signals and responses")
	pf.Int("buffer-size", defaults.BufferSize, "transform length in samples")

	root.AddCommand(
		a.newSpectrumCommand(),
		a.newFilterCommand(),
		a.newResponseCommand(),
		a.newConfigCommand(),
		newVersionCommand(),
	)

	return root
}

// initializeConfig reads the config file and environment, binds the
// executing command's flags and configures the logger.
func (a *app) initializeConfig(cmd *cobra.Command) error {
	a.setDefaults()

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		a.v.SetConfigType("yaml")

		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.configFile, err)
		}
	}

	if err := a.bindFlags(cmd); err != nil {
		return err
	}

	a.log.SetOutput(cmd.ErrOrStderr())

	level, err := logrus.ParseLevel(a.v.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	a.log.SetLevel(level)

	if a.configFile != "" {
		a.log.WithField("file", a.v.ConfigFileUsed()).Debug("using config file")
	}

	return nil
}

// bindFlags binds every flag of cmd, including inherited ones, to its
// config key. Explicitly set flags win over the file and environment.
func (a *app) bindFlags(cmd *cobra.Command) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}

		if err := a.v.BindPFlag(configKey(f.Name), f); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

func (a *app) setDefaults() {
	defaults := core.DefaultProcessorConfig()

	a.v.SetDefault("log_level", "info")
	a.v.SetDefault("sample_rate", defaults.SampleRate)
	a.v.SetDefault("buffer_size", defaults.BufferSize)
	a.v.SetDefault("algorithm", "fft")
	a.v.SetDefault("channel", "mix")
}
