package cmd

import (
	"io"

	"github.com/fzft/go-hashset/hashset"
	"github.com/fzft/go-hashset/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootParameters struct {
	configFile     string
	keyType        string
	initialBuckets int
	minBuckets     int
	maxLoadFactor  float64
	growth         string
	logLevel       string
}

// NewRootCmd builds the hsetcli command tree. Without a sub-command it runs
// the REPL.
func NewRootCmd(args []string, build BuildInfo) *cobra.Command {
	var rootParams rootParameters
	var config *Config

	cmd := &cobra.Command{
		Use:   "hsetcli",
		Short: "Interactive shell over a chained hash set",
		Long: `hsetcli keeps one hash set in memory and lets you insert, erase and
look up keys while watching how the table grows.

Run hsetcli and type HELP for the command list.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			config, err = loadConfig(cmd, &rootParams)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewHsetCli(config, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}

	cmd.AddCommand(
		newReplCmd(&config),
		newDumpCmd(&config),
		newVersionCmd(build),
	)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&rootParams.configFile, "config", "c", getDotfilePath(HsetCliRCFileEnv, HsetCliRCFileDefault), "Config file")
	flags.StringVarP(&rootParams.keyType, "key-type", "k", KeyTypeString, "Key type: string or int")
	flags.IntVarP(&rootParams.initialBuckets, "buckets", "b", hashset.DefaultMinBuckets, "Initial bucket count")
	flags.IntVar(&rootParams.minBuckets, "min-buckets", hashset.DefaultMinBuckets, "Bucket count floor")
	flags.Float64Var(&rootParams.maxLoadFactor, "max-load", hashset.DefaultMaxLoadFactor, "Maximum load factor, in [0.01, 1]")
	flags.StringVar(&rootParams.growth, "growth", GrowthQuad, "Growth policy: quad or double")
	flags.StringVar(&rootParams.logLevel, "log-level", "warn", "Log level")

	cmd.SetArgs(args)
	return cmd
}

// loadConfig reads the config file, then applies every flag set on the
// command line.
func loadConfig(cmd *cobra.Command, params *rootParameters) (*Config, error) {
	config, err := LoadConfig(params.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("key-type") {
		config.KeyType = params.keyType
	}
	if flags.Changed("buckets") {
		config.InitialBuckets = params.initialBuckets
	}
	if flags.Changed("min-buckets") {
		config.MinBuckets = params.minBuckets
	}
	if flags.Changed("max-load") {
		config.MaxLoadFactor = params.maxLoadFactor
	}
	if flags.Changed("growth") {
		config.Growth = params.growth
	}
	if flags.Changed("log-level") {
		config.LogLevel = params.logLevel
	}

	if err := log.InitLogger(config.LogLevel); err != nil {
		return nil, errors.Wrap(err, "init logger")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	log.Logger.Debug("config loaded", zap.String("file", params.configFile), zap.Any("config", config))
	return config, nil
}

func newReplCmd(config **Config) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewHsetCli(*config, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}
}

func newDumpCmd(config **Config) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [key...]",
		Short: "Build a set from the keys and print its bucket layout",
		Long: `Build a set from the given keys, or from one key per line of standard
input when no keys are given, and print the bucket layout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := args
			if len(keys) == 0 {
				var err error
				if keys, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			sess, err := NewSession(*config, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := sess.Load(keys); err != nil {
				return err
			}
			return sess.Exec([]string{"DUMP"})
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := newLineScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, errors.Wrap(scanner.Err(), "read keys")
}
