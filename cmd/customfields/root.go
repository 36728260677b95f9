package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"customfields/internal/config"
	"customfields/internal/document"
	"customfields/internal/field"
	"customfields/internal/logging"
	"customfields/internal/schema"
)

const envPrefix = "CUSTOMFIELDS"

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	schemaPath string
	dataPath   string
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
	logFile    string
	output     string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "customfields",
		Short:         "Reconcile saved custom-field data with an edited form schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.schemaPath, "schema", "", "Current schema document (yaml, json or toml)")
	flags.StringVar(&a.dataPath, "data", "", "Saved form data document (yaml, json or toml)")
	flags.StringVar(&a.configPath, "config", "", "Engine configuration file")
	flags.StringVar(&a.envFile, "env-file", "", "Load CUSTOMFIELDS_* variables from this .env file")
	flags.StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "console", "Log format: console or json")
	flags.StringVar(&a.logFile, "log-file", "", "Write JSON logs to this rotated file instead of stderr")
	flags.StringVarP(&a.output, "output", "o", "text", "Output format: text, yaml or json")
	flags.Int("max-age", config.DefaultOrphanedFieldMaxAge, "Days after which orphaned values are dropped")
	flags.Bool("show-orphaned", true, "Keep recent unmapped values in results")
	flags.Bool("auto-migrate", true, "Migrate orphaned values by rule")

	root.AddCommand(
		newMapCmd(a),
		newValidateCmd(a),
		newEvolveCmd(a),
		newReportCmd(a),
		newFlattenCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	switch a.output {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("unsupported output format %q", a.output)
	}

	if a.logFile != "" {
		a.logger = logging.NewFile(a.logLevel, a.logFile)
	} else {
		logger, err := logging.New(a.logLevel, a.logFormat)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		a.logger = logger
	}

	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", a.envFile, err)
		}

		a.logger.Debug("environment loaded", zap.String("path", a.envFile))
	}

	cfg, err := loadConfig(a.configPath, cmd)
	if err != nil {
		return err
	}

	cfg.Logger = a.logger
	a.cfg = cfg

	return nil
}

// loadConfig merges defaults, the config file, CUSTOMFIELDS_* environment
// variables and explicitly set flags, in increasing precedence.
func loadConfig(path string, cmd *cobra.Command) (config.Config, error) {
	v := viper.New()

	def := config.Default()
	v.SetDefault("include_timestamp", def.IncludeTimestamp)
	v.SetDefault("show_orphaned_fields", def.ShowOrphanedFields)
	v.SetDefault("orphaned_field_max_age", def.OrphanedFieldMaxAge)
	v.SetDefault("auto_migrate", def.AutoMigrate)
	v.SetDefault("replace_default_rules", def.ReplaceDefaultRules)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	for key, flag := range map[string]string{
		"orphaned_field_max_age": "max-age",
		"show_orphaned_fields":   "show-orphaned",
		"auto_migrate":           "auto-migrate",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return config.Config{}, fmt.Errorf("failed to bind --%s: %w", flag, err)
			}
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

func (a *app) loadSchema() (*schema.Schema, error) {
	if a.schemaPath == "" {
		return nil, fmt.Errorf("--schema is required")
	}

	return schema.LoadFile(a.schemaPath)
}

func (a *app) loadData() (*field.FormData, error) {
	if a.dataPath == "" {
		return nil, fmt.Errorf("--data is required")
	}

	return field.LoadFormData(a.dataPath)
}

func (a *app) load() (*schema.Schema, *field.FormData, error) {
	s, err := a.loadSchema()
	if err != nil {
		return nil, nil, err
	}

	d, err := a.loadData()
	if err != nil {
		return nil, nil, err
	}

	a.logger.Debug("inputs loaded",
		zap.String("schema", a.schemaPath),
		zap.String("schema_id", s.ID),
		zap.Int("schema_fields", s.FieldCount()),
		zap.String("data", a.dataPath),
		zap.Int("saved_values", d.Len()))

	return s, d, nil
}

// render writes v as YAML or JSON, or calls text for the text format.
func (a *app) render(cmd *cobra.Command, v any, text func() string) error {
	if a.output == "text" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text())
		return err
	}

	format, err := document.ParseFormat(a.output)
	if err != nil {
		return err
	}

	data, err := document.Encode(v, format)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
