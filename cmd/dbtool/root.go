package main

import (
	"coastal-day-planner/internal/adapters/repositories"
	"coastal-day-planner/internal/config"
	"coastal-day-planner/internal/platform/db"
	"coastal-day-planner/internal/platform/logger"
	"database/sql"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// store is the opened database shared by every subcommand run.
type store struct {
	cfg *config.Config
	db  *sql.DB
}

func (s *store) dialect() db.Dialect { return s.cfg.Dialect() }

func newRootCmd() *cobra.Command {
	st := &store{}

	rootCmd := &cobra.Command{
		Use:           "dbtool",
		Short:         "Schema, seed and offline planning tool for the coastal day planner store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			lg, err := logger.New("dbtool", cfg.LogLevel)
			if err != nil {
				return err
			}
			log.Logger = lg

			conn, err := db.Open(cfg.Dialect(), cfg.DSN())
			if err != nil {
				return err
			}

			st.cfg = cfg
			st.db = conn
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if st.db == nil {
				return nil
			}
			return st.db.Close()
		},
	}

	rootCmd.AddCommand(
		newInitCmd(st),
		newSeedCmd(st),
		newPlanCmd(st),
		newRouteCmd(st),
	)
	return rootCmd
}

func newInitCmd(st *store) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repositories.InitSchema(cmd.Context(), st.db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema ready")
			return nil
		},
	}
}

func newSeedCmd(st *store) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create tables and upsert the catalog from a JSON seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = st.cfg.SeedPath
			}
			ctx := cmd.Context()

			if err := repositories.InitSchema(ctx, st.db); err != nil {
				return err
			}
			if err := repositories.SeedFromJSON(ctx, st.db, st.dialect(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "path", "p", "", "Seed file (defaults to SEED_PATH)")
	return cmd
}
