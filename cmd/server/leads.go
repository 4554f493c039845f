package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"triptogether_echo/internal/models"
	"triptogether_echo/internal/services"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List the newest contact form leads stored in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Database.URL == "" {
			return errors.New("leads requires DATABASE_URL")
		}

		db, err := services.InitDB(cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		leads, err := services.NewLeadInbox(db).Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}

		printLeads(cmd.OutOrStdout(), leads)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(leadsCmd)
	leadsCmd.Flags().IntP("limit", "n", 20, "Number of leads to list")
}

func printLeads(w io.Writer, leads []models.ContactLead) {
	if len(leads) == 0 {
		fmt.Fprintln(w, "No leads yet")
		return
	}
	for _, l := range leads {
		fmt.Fprintf(w, "%s  %s <%s>", l.CreatedAt.Format("2006-01-02 15:04"), l.Name, l.Email)
		if l.Phone != "" {
			fmt.Fprintf(w, "  %s", l.Phone)
		}
		fmt.Fprintf(w, "\n    %s\n", l.Message)
	}
}
