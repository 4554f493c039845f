package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"triptogether_echo/internal/content"
	"triptogether_echo/internal/models"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate the site content and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		site, err := content.Load(cfg.Content.File)
		if err != nil {
			return err
		}

		departures, _ := cmd.Flags().GetInt("departures")
		printContent(cmd.OutOrStdout(), site, time.Now(), departures)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.Flags().StringP("file", "f", "", "content YAML file (default is the embedded content)")
	contentCmd.Flags().Int("departures", 3, "Upcoming departures to list per program")
}

func printContent(w io.Writer, site *models.SiteContent, now time.Time, departures int) {
	fmt.Fprintf(w, "%s: content OK\n\n", site.Brand)
	fmt.Fprintf(w, "Programs (%d)\n", len(site.Programs))
	for _, p := range site.Programs {
		fmt.Fprintf(w, "  %s  %s, %s, %s\n", p.Title, p.DurationLabel(), p.GroupSizeLabel(), p.PriceLabel())
		for _, d := range p.NextDepartures(now, departures) {
			fmt.Fprintf(w, "    departs %s\n", d.Format("Mon Jan 2, 2006"))
		}
	}
	fmt.Fprintf(w, "Testimonials: %d\n", len(site.Testimonials))
	fmt.Fprintf(w, "Gallery images: %d\n", len(site.Gallery))
	fmt.Fprintf(w, "Required documents: %d\n", len(site.Documents.Required))
}
