package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/everoutes/eve-routes-go/internal/adapters/esi"
	appcatalog "github.com/everoutes/eve-routes-go/internal/application/catalog"
	"github.com/everoutes/eve-routes-go/internal/application/trading/queries"
	"github.com/everoutes/eve-routes-go/internal/application/trading/services"
	"github.com/everoutes/eve-routes-go/internal/domain/catalog"
	"github.com/everoutes/eve-routes-go/internal/domain/trading"
	"github.com/everoutes/eve-routes-go/internal/infrastructure/config"
	"github.com/everoutes/eve-routes-go/internal/infrastructure/logging"
)

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	var (
		fromStation string
		toStation   string
		maxCargo    float64
		minProfit   float64
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a trade route for profitable hauls",
		Long: `Fetch live market orders for two trade hubs and rank the items worth
hauling between them by total profit potential.

Examples:
  everoutes scan --from jita --to dodixie
  everoutes scan --from amarr --to hek --cargo 60000 --min-profit 500000 --limit 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig("")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Flags left at their zero value are not a request for zero:
			// fall back to the configured defaults for unset flags only.
			if !cmd.Flags().Changed("cargo") {
				maxCargo = cfg.Trading.DefaultMaxCargo
			}
			if !cmd.Flags().Changed("min-profit") {
				minProfit = cfg.Trading.DefaultMinProfit
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Trading.ResultLimit
			}

			logger := zap.NewNop()
			if verbose {
				logger, err = logging.NewLogger(config.LoggingConfig{
					Level:  "debug",
					Format: "text",
				})
				if err != nil {
					return fmt.Errorf("failed to build logger: %w", err)
				}
			}

			client := esi.NewClient(esi.Options{
				BaseURL:            cfg.ESI.BaseURL,
				UserAgent:          cfg.ESI.UserAgent,
				Timeout:            cfg.ESI.Timeout,
				MinRequestInterval: cfg.ESI.MinRequestInterval,
				MaxPages:           cfg.ESI.MaxPages,
			}, logger)

			resolver := appcatalog.NewResolver(client, catalog.NewNameCache(), logger)
			finder := services.NewOpportunityFinder(client, resolver, trading.NewAnalyzer(), logger)
			handler := queries.NewFindTradeOpportunitiesHandler(
				finder,
				cfg.Trading.DefaultMaxCargo,
				cfg.Trading.DefaultMinProfit,
				cfg.Trading.ResultLimit,
			)

			fmt.Printf("Scanning %s -> %s (this fetches live market data, expect a wait)...\n",
				fromStation, toStation)

			response, err := handler.Handle(context.Background(), &queries.FindTradeOpportunitiesQuery{
				FromStation: fromStation,
				ToStation:   toStation,
				MaxCargo:    maxCargo,
				MinProfit:   minProfit,
				Limit:       limit,
			})
			if err != nil {
				return fmt.Errorf("failed to scan route: %w", err)
			}

			result, ok := response.(*queries.FindTradeOpportunitiesResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			if len(result.Opportunities) == 0 {
				fmt.Println("No profitable opportunities found for this route.")
				return nil
			}

			fmt.Printf("\n=== Top %d of %d opportunities: %s -> %s ===\n\n",
				len(result.Opportunities), result.TotalFound, fromStation, toStation)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tITEM\tBUY\tSELL\tPROFIT/UNIT\tMARGIN\tUNITS\tTOTAL PROFIT\tINVESTMENT")
			for i, opp := range result.Opportunities {
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%.2f\t%.1f%%\t%d\t%.0f\t%.0f\n",
					i+1,
					opp.ItemName,
					opp.BuyPrice,
					opp.SellPrice,
					opp.ProfitPerUnit,
					opp.ProfitMargin,
					opp.MaxUnits,
					opp.TotalProfit,
					opp.Investment,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&fromStation, "from", "jita", "Origin trade hub")
	cmd.Flags().StringVar(&toStation, "to", "dodixie", "Destination trade hub")
	cmd.Flags().Float64Var(&maxCargo, "cargo", 0, "Cargo capacity in m³ (unset: config default)")
	cmd.Flags().Float64Var(&minProfit, "min-profit", 0, "Minimum total profit in ISK (unset: config default)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum opportunities to show (unset: config default)")

	return cmd
}
