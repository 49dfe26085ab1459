package main

import (
	"UnifyMD/database"
	"UnifyMD/repositories"
	"UnifyMD/utils"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			db, err := database.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			log.Info().Msg("migrations applied")
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API access token for an existing doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			doctorID, _ := cmd.Flags().GetString("doctor")
			if doctorID == "" {
				return fmt.Errorf("--doctor is required")
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			db, err := database.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			token, err := issueToken(cmd.Context(), repositories.NewDoctorRepository(db), cfg.SymmetricKey, doctorID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().String("doctor", "", "Doctor id (the auth provider user id)")
	return cmd
}

func issueToken(ctx context.Context, doctors repositories.DoctorRepository, symmetricKey, doctorID string) (string, error) {
	doctor, err := doctors.GetByID(ctx, doctorID)
	if err != nil {
		return "", err
	}
	if doctor == nil {
		return "", fmt.Errorf("doctor %s not found", doctorID)
	}

	issuer, err := utils.NewTokenIssuer(symmetricKey)
	if err != nil {
		return "", err
	}
	return issuer.Generate(doctor.ID)
}
