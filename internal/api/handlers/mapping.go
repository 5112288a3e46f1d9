package handlers

import (
	"coastal-day-planner/internal/api/dto"
	"coastal-day-planner/internal/domain"
	"fmt"
	"slices"
)

var entryTypes = []domain.EntryType{
	domain.EntrySurf,
	domain.EntryFood,
	domain.EntryCafe,
	domain.EntryRental,
	domain.EntryShower,
	domain.EntryParking,
	domain.EntryView,
	domain.EntryCulture,
	domain.EntryMove,
}

func toPlanDTO(p *domain.PlanDay) dto.PlanDay {
	out := dto.PlanDay{
		LocationID:         p.LocationID,
		Date:               p.Date,
		Mobility:           string(p.Mobility),
		Budget:             p.Budget,
		Timeline:           make([]dto.TimelineEntry, 0, len(p.Timeline)),
		EstimatedTotalCost: p.EstimatedTotalCost,
		Warnings:           p.Warnings,
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}

	for _, e := range p.Timeline {
		out.Timeline = append(out.Timeline, toEntryDTO(e))
	}
	return out
}

func toEntryDTO(e domain.TimelineEntry) dto.TimelineEntry {
	out := dto.TimelineEntry{
		Type:       string(e.Type),
		Title:      e.Title,
		POIID:      e.POIID,
		Start:      e.Start.String(),
		End:        e.End.String(),
		BudgetCost: e.BudgetCost,
		Notes:      e.Notes,
	}
	if e.Leg != nil {
		out.TravelLeg = &dto.TravelLeg{
			Mode:       string(e.Leg.Mode),
			Minutes:    e.Leg.Minutes,
			Kilometers: e.Leg.Kilometers,
		}
	}
	return out
}

func fromPlanDTO(in dto.PlanDay) (*domain.PlanDay, error) {
	mode, err := domain.ParseMobility(in.Mobility)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}

	out := &domain.PlanDay{
		LocationID:         in.LocationID,
		Date:               in.Date,
		Mobility:           mode,
		Budget:             in.Budget,
		Timeline:           make([]domain.TimelineEntry, 0, len(in.Timeline)),
		EstimatedTotalCost: in.EstimatedTotalCost,
		Warnings:           in.Warnings,
	}

	for i, e := range in.Timeline {
		entry, err := fromEntryDTO(e)
		if err != nil {
			return nil, fmt.Errorf("plan: timeline[%d]: %w", i, err)
		}
		out.Timeline = append(out.Timeline, entry)
	}
	return out, nil
}

func fromEntryDTO(in dto.TimelineEntry) (domain.TimelineEntry, error) {
	typ := domain.EntryType(in.Type)
	if !slices.Contains(entryTypes, typ) {
		return domain.TimelineEntry{}, fmt.Errorf("entry type %q: %w", in.Type, domain.ErrInvalidInput)
	}

	start, err := domain.ParseClock(in.Start)
	if err != nil {
		return domain.TimelineEntry{}, fmt.Errorf("entry start: %w", err)
	}
	end, err := domain.ParseClock(in.End)
	if err != nil {
		return domain.TimelineEntry{}, fmt.Errorf("entry end: %w", err)
	}

	out := domain.TimelineEntry{
		Type:       typ,
		Title:      in.Title,
		POIID:      in.POIID,
		Start:      start,
		End:        end,
		BudgetCost: in.BudgetCost,
		Notes:      in.Notes,
	}

	if in.TravelLeg != nil {
		mode, err := domain.ParseMobility(in.TravelLeg.Mode)
		if err != nil {
			return domain.TimelineEntry{}, fmt.Errorf("travel leg: %w", err)
		}
		out.Leg = &domain.TravelLeg{
			Mode:       mode,
			Minutes:    in.TravelLeg.Minutes,
			Kilometers: in.TravelLeg.Kilometers,
		}
	}
	return out, nil
}

func toPOIDTO(p domain.POI) dto.POIResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.POIResponse{
		ID:          p.ID,
		LocationID:  p.LocationID,
		Name:        p.Name,
		Category:    string(p.Category),
		Lat:         p.Lat,
		Lng:         p.Lng,
		PriceTier:   p.PriceTier.String(),
		Rating:      p.Rating,
		Tags:        tags,
		Description: p.Description,
		Phone:       p.Phone,
		Address:     p.Address,
	}
}

func toSpotDTO(s domain.Spot) dto.SpotResponse {
	return dto.SpotResponse{
		ID:          s.ID,
		Name:        s.Name,
		NameEn:      s.NameEn,
		Lat:         s.Coordinates.Lat,
		Lng:         s.Coordinates.Lng,
		Kind:        s.Kind,
		Difficulty:  s.Difficulty,
		Description: s.Description,
	}
}
