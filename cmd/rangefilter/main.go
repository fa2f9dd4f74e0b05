package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"rangefilter/config"
	"rangefilter/filter"
	"rangefilter/filter/options"
	"rangefilter/settings"
	"rangefilter/source"
	"rangefilter/source/postgres"
	"rangefilter/source/sqlite"
)

func main() {
	err := newCommand().Execute()
	if err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cobra.Command {
	cli := &cli{v: viper.New()}

	cmd := &cobra.Command{
		Use:               "rangefilter",
		Short:             "rangefilter: restrict a table to numeric ranges",
		PersistentPreRunE: cli.setupConfig,
		SilenceUsage:      true,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "fields",
			Short: "List the range fields of the dataset",
			Args:  cobra.NoArgs,
			RunE:  cli.fields,
		},
		applyCommand(cli),
		&cobra.Command{
			Use:   "remove NAME...",
			Short: "Remove fields from the dataset's field set",
			Args:  cobra.MinimumNArgs(1),
			RunE:  cli.remove,
		},
	)

	err := setupFlags(cmd, cli.v)
	if err != nil {
		log.Fatal(err)
	}
	return cmd
}

type cli struct {
	v   *viper.Viper
	cfg cfg
}

type cfg struct {
	Driver       string
	DSN          string
	Table        string
	Dataset      string
	SettingsFile string
	Resolution   int
	Debug        bool
}

// Reads the config fields from flags or a file
func (c *cli) setupConfig(cmd *cobra.Command, args []string) error {
	// allow a missing .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	var err error
	if configFile := c.v.GetString("config-file"); configFile != "" {
		c.v.SetConfigFile(configFile)
		err = c.v.ReadInConfig()
	}
	if err != nil {
		// allow non-existent config file
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	c.cfg = cfg{
		Driver:       c.v.GetString("driver"),
		DSN:          c.v.GetString("dsn"),
		Table:        c.v.GetString("table"),
		Dataset:      c.v.GetString("dataset"),
		SettingsFile: c.v.GetString("settings-file"),
		Resolution:   c.v.GetInt("resolution"),
		Debug:        c.v.GetBool("debug"),
	}

	if c.cfg.Table == "" {
		return errors.New("--table is required")
	}
	return nil
}

// dataset is everything a subcommand needs to work on one table
type dataset struct {
	db     *sqlx.DB
	table  *source.Table
	set    *filter.Set
	logger *zap.Logger
}

func (d *dataset) Close() {
	d.set.Close()
	_ = d.logger.Sync()
	d.db.Close()
}

func (c *cli) open(ctx context.Context) (*dataset, error) {
	logger, err := c.logger()
	if err != nil {
		return nil, err
	}

	db, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	name := c.cfg.Dataset
	if name == "" {
		name = c.cfg.Table
	}
	table := source.New(db, c.cfg.Table).SetDataset(name)

	var store filter.Settings = table
	if c.cfg.SettingsFile != "" {
		store = settings.NewFile(c.cfg.SettingsFile, name)
	}

	opts := options.NewSetOptions().
		SetResolution(c.cfg.Resolution).
		SetLogger(logger)
	set, err := filter.Open(ctx, table, store, opts)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &dataset{db: db, table: table, set: set, logger: logger}, nil
}

func (c *cli) connect(ctx context.Context) (*sqlx.DB, error) {
	switch c.cfg.Driver {
	case "sqlite":
		return sqlite.Open(ctx, c.cfg.DSN)
	case "postgres":
		// POSTGRES_* variables, usually from .env
		pgConfig, err := postgres.Parse(nil)
		if err != nil {
			return nil, err
		}
		return postgres.Connect(ctx, pgConfig)
	default:
		return nil, fmt.Errorf("unknown driver %q", c.cfg.Driver)
	}
}

func (c *cli) logger() (*zap.Logger, error) {
	if c.cfg.Debug {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return zc.Build()
}

func setupFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.PersistentFlags()

	flags.String("config-file", config.ConfigFile, "Path to config file")
	flags.String("driver", "sqlite", "Database driver: sqlite or postgres")
	flags.String("dsn", "rangefilter.db", "SQLite database path")
	flags.String("table", "", "Table to filter")
	flags.String("dataset", "", "Key the field order is stored under (defaults to the table)")
	flags.String("settings-file", "", "Keep the field order in this YAML file instead of the database")
	flags.Int("resolution", options.DefaultResolution, "Number of ticks per slider")
	flags.Bool("debug", false, "Log at debug level")

	return v.BindPFlags(flags)
}
