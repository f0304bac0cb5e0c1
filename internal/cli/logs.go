package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stratus-io/stratus/internal/audit"
	"github.com/stratus-io/stratus/internal/config"
)

var (
	logsConfigPath string
	logsLimit      int
	logsActor      string
	logsAction     string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show recent audit trail entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(logsConfigPath)
		if err != nil {
			return err
		}

		trail, err := audit.NewLogger(cfg.Audit.Path)
		if err != nil {
			return err
		}
		defer trail.Close()

		page, err := trail.Search(audit.Query{
			Actor:    logsActor,
			Action:   logsAction,
			PageSize: logsLimit,
		})
		if err != nil {
			return err
		}

		for _, e := range page.Entries {
			outcome := "ok"
			if !e.Success {
				outcome = "FAILED: " + e.Error
			}
			fmt.Printf("%s  %-12s %-22s %-30s %s\n",
				e.Timestamp.Format(time.RFC3339), e.Actor, e.Action, e.Target, outcome)
		}
		fmt.Printf("%d of %d entries\n", len(page.Entries), page.Total)
		return nil
	},
}

func init() {
	logsCmd.Flags().StringVarP(&logsConfigPath, "config", "c", "", "path to YAML config file")
	logsCmd.Flags().IntVarP(&logsLimit, "limit", "n", 50, "maximum entries to show")
	logsCmd.Flags().StringVar(&logsActor, "actor", "", "filter by actor")
	logsCmd.Flags().StringVar(&logsAction, "action", "", "filter by action")
}
