package conditions

import (
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/platform/obs"
	"coastal-day-planner/internal/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	DefaultMarineURL   = "https://marine-api.open-meteo.com/v1/marine"
)

type OpenMeteoOptions struct {
	ForecastURL  string
	MarineURL    string
	Timeout      time.Duration
	RetryInitial time.Duration
}

// OpenMeteoProvider implements ConditionsProvider with the keyless
// Open-Meteo forecast and marine APIs, reducing their daily series to the
// single day asked for. Spot coordinates come from the SpotRepository.
//
// The provider is safe for concurrent use.
type OpenMeteoProvider struct {
	session      *http.Client
	spots        ports.SpotRepository
	forecastURL  string
	marineURL    string
	retryInitial time.Duration
}

func NewOpenMeteoProvider(spots ports.SpotRepository, opts OpenMeteoOptions) (*OpenMeteoProvider, error) {
	if spots == nil {
		return nil, errors.New("open-meteo: spot repository is nil")
	}

	p := &OpenMeteoProvider{
		session:      &http.Client{Timeout: 10 * time.Second},
		spots:        spots,
		forecastURL:  DefaultForecastURL,
		marineURL:    DefaultMarineURL,
		retryInitial: 200 * time.Millisecond,
	}
	if opts.ForecastURL != "" {
		p.forecastURL = opts.ForecastURL
	}
	if opts.MarineURL != "" {
		p.marineURL = opts.MarineURL
	}
	if opts.Timeout > 0 {
		p.session.Timeout = opts.Timeout
	}
	if opts.RetryInitial > 0 {
		p.retryInitial = opts.RetryInitial
	}

	return p, nil
}

type marineResponse struct {
	Daily struct {
		Time          []string   `json:"time"`
		WaveHeight    []*float64 `json:"wave_height_max"`
		WavePeriod    []*float64 `json:"wave_period_max"`
		WaveDirection []*float64 `json:"wave_direction_dominant"`
		SwellHeight   []*float64 `json:"swell_wave_height_max"`
	} `json:"daily"`
}

type forecastResponse struct {
	Daily struct {
		Time        []string   `json:"time"`
		Temperature []*float64 `json:"temperature_2m_max"`
		WindSpeed   []*float64 `json:"wind_speed_10m_max"`
		Rainfall    []*float64 `json:"precipitation_probability_max"`
		Humidity    []*float64 `json:"relative_humidity_2m_mean"`
	} `json:"daily"`
}

func (p *OpenMeteoProvider) GetSeaState(ctx context.Context, locationID, date string) (_ domain.SeaState, err error) {
	defer obs.Time(ctx, "openmeteo.GetSeaState")(&err)

	u, err := p.dailyURL(ctx, p.marineURL, locationID, date,
		"wave_height_max,wave_period_max,wave_direction_dominant,swell_wave_height_max", nil)
	if err != nil {
		return domain.SeaState{}, fmt.Errorf("open-meteo sea state: %w", err)
	}

	var resp marineResponse
	if err := p.getJSON(ctx, u, &resp); err != nil {
		return domain.SeaState{}, fmt.Errorf("open-meteo sea state %q on %s: %w", locationID, date, err)
	}

	i, err := dayIndex(resp.Daily.Time, date)
	if err != nil {
		return domain.SeaState{}, fmt.Errorf("open-meteo sea state %q: %w", locationID, err)
	}

	height, ok := at(resp.Daily.WaveHeight, i)
	if !ok {
		return domain.SeaState{}, fmt.Errorf("open-meteo sea state %q on %s: no wave height", locationID, date)
	}
	period, _ := at(resp.Daily.WavePeriod, i)
	dir, _ := at(resp.Daily.WaveDirection, i)
	swell, _ := at(resp.Daily.SwellHeight, i)

	return domain.SeaState{
		LocationID:       locationID,
		Date:             date,
		WaveHeightM:      height,
		WavePeriodS:      period,
		WaveDirectionDeg: dir,
		SwellHeightM:     swell,
	}, nil
}

func (p *OpenMeteoProvider) GetWeather(ctx context.Context, locationID, date string) (_ domain.Weather, err error) {
	defer obs.Time(ctx, "openmeteo.GetWeather")(&err)

	u, err := p.dailyURL(ctx, p.forecastURL, locationID, date,
		"temperature_2m_max,wind_speed_10m_max,precipitation_probability_max,relative_humidity_2m_mean",
		url.Values{"wind_speed_unit": {"ms"}})
	if err != nil {
		return domain.Weather{}, fmt.Errorf("open-meteo weather: %w", err)
	}

	var resp forecastResponse
	if err := p.getJSON(ctx, u, &resp); err != nil {
		return domain.Weather{}, fmt.Errorf("open-meteo weather %q on %s: %w", locationID, date, err)
	}

	i, err := dayIndex(resp.Daily.Time, date)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("open-meteo weather %q: %w", locationID, err)
	}

	wind, ok := at(resp.Daily.WindSpeed, i)
	if !ok {
		return domain.Weather{}, fmt.Errorf("open-meteo weather %q on %s: no wind speed", locationID, date)
	}
	temp, _ := at(resp.Daily.Temperature, i)
	rain, _ := at(resp.Daily.Rainfall, i)
	humidity, _ := at(resp.Daily.Humidity, i)

	return domain.Weather{
		LocationID:   locationID,
		Date:         date,
		TemperatureC: temp,
		WindSpeedMS:  wind,
		RainfallPct:  rain,
		HumidityPct:  humidity,
	}, nil
}

func (p *OpenMeteoProvider) dailyURL(ctx context.Context, base, locationID, date, daily string, extra url.Values) (string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("date %q: %w", date, domain.ErrInvalidInput)
	}

	spot, err := p.spots.GetSpot(ctx, locationID)
	if err != nil {
		return "", fmt.Errorf("resolve spot: %w", err)
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(spot.Coordinates.Lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(spot.Coordinates.Lng, 'f', 4, 64))
	q.Set("daily", daily)
	q.Set("timezone", "auto")
	q.Set("start_date", date)
	q.Set("end_date", date)
	for k, v := range extra {
		q[k] = v
	}

	return base + "?" + q.Encode(), nil
}

func dayIndex(days []string, date string) (int, error) {
	for i, d := range days {
		if d == date {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no daily data for %s", date)
}

func at(vals []*float64, i int) (float64, bool) {
	if i >= len(vals) || vals[i] == nil {
		return 0, false
	}
	return *vals[i], true
}
