package main

import (
	"coastal-day-planner/internal/adapters/repositories"
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/services"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRouteCmd(st *store) *cobra.Command {
	var (
		location string
		poiIDs   []string
		mobility string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Summarize a route from a spot through stored POIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			spot, err := repositories.NewSQLSpotRepository(st.db, st.dialect()).GetSpot(ctx, location)
			if err != nil {
				return err
			}

			all, err := repositories.NewSQLPOICatalog(st.db, st.dialect()).GetPOIsByLocation(ctx, location)
			if err != nil {
				return err
			}

			byID := make(map[string]domain.POI, len(all))
			for _, p := range all {
				byID[p.ID] = p
			}

			picked := make([]domain.POI, 0, len(poiIDs))
			for _, id := range poiIDs {
				p, ok := byID[id]
				if !ok {
					return fmt.Errorf("route: poi %q at %q: %w", id, location, domain.ErrNotFound)
				}
				picked = append(picked, p)
			}

			info, err := services.CalculateRoute(services.RouteFromPOIs(spot, picked), domain.Mobility(strings.ToLower(mobility)))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			names := make([]string, 0, len(info.Stops))
			for _, s := range info.Stops {
				names = append(names, s.Name)
			}
			fmt.Fprintln(out, strings.Join(names, " -> "))
			fmt.Fprintf(out, "%.1f km, %d min by %s\n", info.TotalKm, info.TotalMins, info.Mobility)
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Spot id (required)")
	cmd.Flags().StringSliceVarP(&poiIDs, "poi", "p", nil, "POI ids in visiting order")
	cmd.Flags().StringVarP(&mobility, "mobility", "m", string(domain.MobilityWalk), "walk, bike, scooter, car or transit")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}
