package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/ridesim/core/events"
	"github.com/kilianp07/ridesim/scenario"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <events-file>",
		Short: "Parse an event file and print what it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			evs, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			var drivers, passengers, last int
			for _, ev := range evs {
				switch e := ev.(type) {
				case *events.DriverRequest:
					drivers++
				case *events.PassengerRequest:
					passengers++
				default:
					return fmt.Errorf("unexpected initial event %s", e)
				}
				if ev.Timestamp() > last {
					last = ev.Timestamp()
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "events: %d\n", len(evs))
			fmt.Fprintf(out, "drivers: %d\n", drivers)
			fmt.Fprintf(out, "passengers: %d\n", passengers)
			fmt.Fprintf(out, "last request: %d\n", last)
			return nil
		},
	}
}
