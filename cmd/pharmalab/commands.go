package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/pharmalab/internal/app/models"
	appRepos "github.com/yigit/pharmalab/internal/app/repositories"
	appServices "github.com/yigit/pharmalab/internal/app/services"
	"github.com/yigit/pharmalab/internal/bootstrap"
	"github.com/yigit/pharmalab/internal/db"
	"github.com/yigit/pharmalab/internal/pkg/logger"
	"github.com/yigit/pharmalab/internal/seed"
	"github.com/yigit/pharmalab/internal/server"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	srv, err := server.NewServer(ctx, configPath)
	if err != nil {
		return err
	}
	if err := srv.Run(); err != nil {
		return err
	}
	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), *configPath, func(ctx context.Context, database *db.PostgresDB) error {
				fmt.Fprintln(cmd.OutOrStdout(), "database schema is up to date")
				return nil
			})
		},
	}
}

func seedCmd(configPath *string) *cobra.Command {
	var demo int
	var fakerSeed uint64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default teacher account and optional demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), *configPath, func(ctx context.Context, database *db.PostgresDB) error {
				repos := appRepos.NewRepositories(database.Pool)
				users := appServices.NewUserService(repos.UserRepository, logger.With("users"))
				if err := seed.CreateDefaultData(ctx, users, logger.With("seed")); err != nil {
					return err
				}
				if demo <= 0 {
					return nil
				}

				res, err := seed.NewDemoSeeder(repos.PatientRepository, repos.MedicationRepository, fakerSeed, logger.With("seed")).Seed(ctx, demo)
				if res != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "seeded %d patients and %d medications\n", res.Patients, res.Medications)
				}
				return err
			})
		},
	}
	cmd.Flags().IntVar(&demo, "demo", 0, "number of fake patients to insert")
	cmd.Flags().Uint64Var(&fakerSeed, "faker-seed", 0, "seed for reproducible demo data (0 = random)")
	return cmd
}

func userCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	var username, password, role string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a teacher or student account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), *configPath, func(ctx context.Context, database *db.PostgresDB) error {
				repos := appRepos.NewRepositories(database.Pool)
				user, err := appServices.NewUserService(repos.UserRepository, logger.With("users")).
					Create(ctx, username, password, models.RoleType(role))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s user %q (id %d)\n", user.Role, user.Username, user.ID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&username, "username", "", "login name")
	create.Flags().StringVar(&password, "password", "", "initial password")
	create.Flags().StringVar(&role, "role", string(models.RoleStudent), "teacher or student")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}

// withDatabase loads the config, connects, applies migrations and runs fn
func withDatabase(ctx context.Context, configPath string, fn func(ctx context.Context, database *db.PostgresDB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}
	database, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()
	return fn(ctx, database)
}
