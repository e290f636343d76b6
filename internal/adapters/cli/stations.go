package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/everoutes/eve-routes-go/internal/domain/shared"
)

// NewStationsCommand creates the stations command
func NewStationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List the supported trade hubs",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "HUB\tREGION ID\tSTATION ID")
			for _, name := range shared.HubNames() {
				hub, err := shared.ResolveHub(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%d\n", hub.Name, hub.RegionID, hub.StationID)
			}
			return w.Flush()
		},
	}
}
