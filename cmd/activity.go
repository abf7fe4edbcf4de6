package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/ridesim/core/monitor"
	"github.com/kilianp07/ridesim/core/monitor/logging"
)

type activityOptions struct {
	runID   string
	actor   string
	actorID string
	from    int
	to      int
}

func newActivityCmd(load configLoader) *cobra.Command {
	var opts activityOptions
	c := &cobra.Command{
		Use:   "activity [log-file]",
		Short: "Query an activity log written by run",
		Long: "Query an activity log written by run. Without a file argument the\n" +
			"activity_log.path of the configuration is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			path := cfg.ActivityLog.Path
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no activity log given")
			}
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("activity log: %w", err)
			}

			q := logging.ActivityQuery{RunID: opts.runID, ActorID: opts.actorID}
			if opts.actor != "" {
				kind, err := monitor.ParseActorKind(opts.actor)
				if err != nil {
					return err
				}
				q.Actor = &kind
			}
			if cmd.Flags().Changed("from") {
				q.From = &opts.from
			}
			if cmd.Flags().Changed("to") {
				q.To = &opts.to
			}

			store, err := logging.OpenStore(logging.Options{
				Path:       path,
				MaxSizeMB:  cfg.ActivityLog.MaxSizeMB,
				MaxBackups: cfg.ActivityLog.MaxBackups,
				MaxAgeDays: cfg.ActivityLog.MaxAgeDays,
			})
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			recs, err := store.Query(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("query activity log: %w", err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, r := range recs {
				if err := enc.Encode(r); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f := c.Flags()
	f.StringVar(&opts.runID, "run", "", "only records of this run id")
	f.StringVar(&opts.actor, "actor", "", "only records of this actor kind: driver or passenger")
	f.StringVar(&opts.actorID, "id", "", "only records of this actor id")
	f.IntVar(&opts.from, "from", 0, "earliest timestamp, inclusive")
	f.IntVar(&opts.to, "to", 0, "latest timestamp, inclusive")
	return c
}
