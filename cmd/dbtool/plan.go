package main

import (
	"coastal-day-planner/internal/adapters/conditions"
	"coastal-day-planner/internal/adapters/repositories"
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/services"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newPlanCmd(st *store) *cobra.Command {
	var (
		req        services.BuildItineraryRequest
		mobility   string
		budget     int
		maxTier    string
		checkHours bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a day plan from the stored catalog with mock conditions",
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, err := domain.ParsePriceTier(maxTier)
			if err != nil {
				return err
			}
			req.Preferences.MaxPriceTier = tier
			req.Mobility = domain.Mobility(strings.ToLower(mobility))
			if cmd.Flags().Changed("budget") {
				req.Budget = &budget
			}

			ctx := cmd.Context()
			catalog := repositories.NewSQLPOICatalog(st.db, st.dialect())

			plan, err := services.BuildItinerary(ctx, req, catalog, conditions.NewMockProvider())
			if err != nil {
				return err
			}

			if checkHours {
				hours := repositories.NewSQLOpenHoursRepository(st.db, st.dialect())
				warnings, err := services.CheckAvailability(ctx, plan, hours)
				if err != nil {
					return err
				}
				plan.Warnings = append(plan.Warnings, warnings...)
			}

			printPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&req.LocationID, "location", "l", "", "Spot id (required)")
	f.StringVarP(&req.Date, "date", "d", time.Now().Format("2006-01-02"), "Date as YYYY-MM-DD")
	f.StringVar(&req.StartTime, "start", "06:00", "Start of the day window (HH:MM)")
	f.StringVar(&req.EndTime, "end", "20:00", "End of the day window (HH:MM)")
	f.StringVarP(&mobility, "mobility", "m", string(domain.MobilityScooter), "walk, bike, scooter, car or transit")
	f.IntVarP(&budget, "budget", "b", 0, "Spending limit")
	f.BoolVar(&req.Preferences.WantSunset, "sunset", false, "Add a sunset viewpoint")
	f.BoolVar(&req.Preferences.WantSeafood, "seafood", false, "Only seafood for lunch")
	f.BoolVar(&req.Preferences.NeedRental, "rental", false, "Name a board rental in the surf slot")
	f.BoolVar(&req.Preferences.NeedShower, "shower", false, "Add a shower after surfing")
	f.StringVar(&maxTier, "max-tier", "", "Lunch price ceiling: low, mid or high")
	f.BoolVar(&checkHours, "check-hours", false, "Warn about stops that may be closed")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func printPlan(w io.Writer, p *domain.PlanDay) {
	fmt.Fprintf(w, "%s %s (%s)\n", p.LocationID, p.Date, p.Mobility)
	for _, e := range p.Timeline {
		fmt.Fprintf(w, "  %s-%s  %-8s %s", e.Start, e.End, e.Type, e.Label())
		if e.BudgetCost != nil {
			fmt.Fprintf(w, "  [%d]", *e.BudgetCost)
		}
		if e.Notes != "" {
			fmt.Fprintf(w, "  %s", e.Notes)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "estimated cost: %d\n", p.EstimatedTotalCost)
	for _, msg := range p.Warnings {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}
}
