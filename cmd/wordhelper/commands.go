package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"crosswarped.com/wordhelper"
	"crosswarped.com/wordhelper/internal/config"
	"crosswarped.com/wordhelper/internal/logging"
	"crosswarped.com/wordhelper/internal/shell"
	"crosswarped.com/wordhelper/internal/wordlist"
)

// app holds what every command needs once flags are parsed.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var configPath string

	root := &cobra.Command{
		Use:   "wordhelper",
		Short: "Find the possible solutions of a five-letter word puzzle",
		Long: `wordhelper lists the words from a dictionary that fit what is known about a
Wordle-style puzzle: green letters fixed in place, yellow letters that must
appear somewhere, and the letters that may (or, prefixed with "-", may not)
appear at all.

Without a subcommand it starts an interactive prompt.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(v, configPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			filter, err := a.loadFilter(cmd.Context())
			if err != nil {
				return err
			}

			historyFile, err := cmd.Flags().GetString("history")
			if err != nil {
				return err
			}
			term, err := shell.NewTerminal(historyFile)
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}
			defer term.Close()

			return shell.New(term, cmd.OutOrStdout(), filter).Run()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	flags.String("source", config.SourceTypeFile, "Word list source: file, sqlite or bigquery")
	flags.String("words", "cmudict_5L.txt", "Word list file, or SQLite database for --source=sqlite")
	flags.String("table", "words", "Table holding the words for the sqlite and bigquery sources")
	flags.String("project", "", "Google Cloud project for --source=bigquery")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	root.Flags().String("history", "", "File to keep the interactive prompt history in")

	for key, flag := range map[string]string{
		config.KeyWordsSource:  "source",
		config.KeyWordsPath:    "words",
		config.KeyWordsTable:   "table",
		config.KeyWordsProject: "project",
		config.KeyLogLevel:     "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
		}
	}

	root.AddCommand(newQueryCmd(v, &configPath))
	root.AddCommand(newServeCmd(v, &configPath))
	root.AddCommand(newImportCmd(v, &configPath))
	return root
}

func setup(v *viper.Viper, configPath string) (*app, error) {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger}, nil
}

func (a *app) loadWords(ctx context.Context) ([]string, error) {
	words, err := wordlist.LoadConfigured(ctx, a.cfg.Words)
	if err != nil {
		a.logger.Error("failed to load word list", zap.String("source", a.cfg.Words.Type), zap.Error(err))
		return nil, err
	}
	a.logger.Debug("loaded word list",
		zap.String("source", a.cfg.Words.Type),
		zap.String("path", a.cfg.Words.Path),
		zap.Int("words", len(words)))
	return words, nil
}

func (a *app) loadFilter(ctx context.Context) (*wordhelper.Filter, error) {
	words, err := a.loadWords(ctx)
	if err != nil {
		return nil, err
	}
	return wordhelper.NewFilter(words), nil
}

func newQueryCmd(v *viper.Viper, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "query GREEN YELLOW AVAILABLE",
		Short: "Print the solutions for one set of letters",
		Long: `Print the solutions for one set of letters.

GREEN is five characters, one per position, with "*" for unknown letters.
YELLOW lists the letters that must appear, repeated as often as needed.
AVAILABLE lists the letters allowed in the answer; prefix it with "-" to list
excluded letters instead, or pass "*" to allow every letter. Pass "" for an
empty argument, and put "--" before the letters when one starts with "-":

  wordhelper query -- '**ir*' ts -alenouh`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(v, *configPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			filter, err := a.loadFilter(cmd.Context())
			if err != nil {
				return err
			}

			solutions := filter.FindSolutions(args[0], args[1], args[2])
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "List of possible solutions found:")
			for _, w := range solutions {
				fmt.Fprintln(out, w)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s of %s words match\n",
				humanize.Comma(int64(len(solutions))), humanize.Comma(int64(filter.Len())))
			return nil
		},
	}
}

func newImportCmd(v *viper.Viper, configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the configured word list into a SQLite database",
		Long: `Copy the configured word list into a SQLite database, replacing the
destination table. The database can then be used with --source=sqlite.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(v, *configPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			dbPath, err := cmd.Flags().GetString("db")
			if err != nil {
				return err
			}
			table, err := cmd.Flags().GetString("to-table")
			if err != nil {
				return err
			}

			words, err := a.loadWords(cmd.Context())
			if err != nil {
				return err
			}

			db, err := wordlist.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := wordlist.Import(cmd.Context(), db, table, words); err != nil {
				return fmt.Errorf("failed to import words: %w", err)
			}
			a.logger.Info("imported word list",
				zap.String("db", dbPath),
				zap.String("table", table),
				zap.Int("words", len(words)))
			fmt.Fprintf(cmd.ErrOrStderr(), "imported %s words into %s\n", humanize.Comma(int64(len(words))), dbPath)
			return nil
		},
	}
	cmd.Flags().String("db", "", "SQLite database file to write (required)")
	cmd.Flags().String("to-table", "words", "Table to write the words into")
	if err := cmd.MarkFlagRequired("db"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to mark db flag as required: %v\n", err)
	}
	return cmd
}
