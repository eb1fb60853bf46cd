package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"plain-mapper/examples/odata"
	"plain-mapper/internal/config"
	"plain-mapper/internal/diagnostic"
	"plain-mapper/internal/logger"
	"plain-mapper/internal/schema"
	"plain-mapper/mapper"
)

// app carries what every subcommand needs once the root command has run.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	catalog  *schema.Catalog
	registry *mapper.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		schemaPath string
		rules      []string
		exclude    bool
		logLevel   string
		logFormat  string
	)

	root := &cobra.Command{
		Use:          "plainmap",
		Short:        "Convert plain JSON payloads to typed objects and back",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("schema") {
				cfg.Schema = schemaPath
			}
			if flags.Changed("rules") {
				cfg.Rules = rules
			}
			if flags.Changed("exclude-default-rule") {
				cfg.ExcludeDefaultRule = exclude
			}
			if flags.Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			if flags.Changed("log-format") {
				cfg.Logging.Format = logFormat
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return a.setup(cfg, cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&schemaPath, "schema", "", "YAML declaration file (default: built-in declarations)")
	pf.StringSliceVar(&rules, "rules", nil, "rules selected by conversions, in priority order")
	pf.BoolVar(&exclude, "exclude-default-rule", false, "drop the default rule when rules are given")
	pf.StringVar(&logLevel, "log-level", "", "log level (env PLAINMAP_LOG_LEVEL)")
	pf.StringVar(&logFormat, "log-format", "", "log format: text or json (env PLAINMAP_LOG_FORMAT)")

	root.AddCommand(
		newToObjectCmd(a),
		newRoundTripCmd(a),
		newStoresCmd(a),
	)

	return root
}

// setup builds the logger and the registry, from the schema file when one
// is configured.
func (a *app) setup(cfg *config.Config, cmd *cobra.Command) error {
	a.cfg = cfg
	a.log = logger.New(cfg.Logging, cmd.ErrOrStderr())
	a.catalog = newCatalog()
	a.registry = mapper.NewRegistry(mapper.WithLogger(a.log))

	if cfg.Schema == "" {
		return odata.Register(a.registry)
	}

	f, err := schema.LoadFile(cfg.Schema)
	if err != nil {
		return err
	}

	diags := schema.Apply(f, a.catalog, a.registry)
	for _, d := range diags.All() {
		entry := a.log.WithField("code", d.Code)
		switch d.Severity {
		case diagnostic.SeverityError:
			entry.Error(d.String())
		case diagnostic.SeverityWarning:
			entry.Warn(d.String())
		default:
			entry.Debug(d.String())
		}
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("schema %s: %w", cfg.Schema, err)
	}

	return nil
}

func (a *app) convertOptions() []mapper.ConvertOption {
	var opts []mapper.ConvertOption
	if len(a.cfg.Rules) > 0 {
		opts = append(opts, mapper.WithRules(a.cfg.Rules...))
	}
	if a.cfg.ExcludeDefaultRule {
		opts = append(opts, mapper.ExcludeDefaultRule())
	}

	return opts
}

func (a *app) fields(typeName string) logrus.Fields {
	return logrus.Fields{
		"type":    typeName,
		"rules":   a.cfg.Rules,
		"exclude": a.cfg.ExcludeDefaultRule,
	}
}

func newCatalog() *schema.Catalog {
	c := schema.NewCatalog()
	for _, t := range odata.Types() {
		c.AddType(t)
	}

	for name, fn := range odata.Converters() {
		c.AddConverter(name, fn)
	}

	return c
}
