package util

import (
	"cinemap/geo"
	"cinemap/models"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	NEARBY_MAP_TITLE = "Cinémas à proximité"
	STATS_PAGE_TITLE = "Statistiques des cinémas"
)

// RenderNearbyMap writes an HTML map of a proximity search: the search
// center and one labelled point per cinema.
func RenderNearbyMap(w io.Writer, result *models.NearbyResult) error {
	// GeoData values are [lng, lat].
	center := []opts.GeoData{
		{Name: "Vous êtes ici", Value: []float64{result.Center.Longitude, result.Center.Latitude}},
	}
	points := make([]opts.GeoData, 0, len(result.Venues))
	for _, rv := range result.Venues {
		points = append(points, opts.GeoData{
			Name:  fmt.Sprintf("%s (%s)", rv.Venue.Name, geo.FormatDistance(rv.DistanceKm)),
			Value: []float64{rv.Venue.Longitude, rv.Venue.Latitude},
		})
	}

	m := charts.NewGeo()
	m.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: NEARBY_MAP_TITLE,
			Width:     "900px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    NEARBY_MAP_TITLE,
			Subtitle: fmt.Sprintf("%d résultat(s) dans un rayon de %.0f km", result.Count, result.RadiusKm),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Formatter: "{b}"}),
	)

	m.AddSeries("Position", types.ChartEffectScatter, center)
	m.AddSeries("Cinémas", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if err := m.Render(w); err != nil {
		return fmt.Errorf("failed to render nearby map: %w", err)
	}
	return nil
}

// RenderStatsPage writes the HTML stats page: departement distribution,
// genre popularity, price ranges and service popularity.
func RenderStatsPage(w io.Writer, stats models.CatalogStats) error {
	page := components.NewPage()
	page.PageTitle = STATS_PAGE_TITLE
	page.AddCharts(
		pieChart("Répartition par département", stats.Departements),
		barChart("Genres les plus populaires", "Cinémas", stats.Genres),
		pieChart("Répartition par prix", stats.PriceRanges),
		barChart("Services les plus proposés", "Cinémas", stats.Services),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render stats page: %w", err)
	}
	return nil
}

func pieChart(title string, counts []models.LabelCount) *charts.Pie {
	data := make([]opts.PieData, 0, len(counts))
	for _, c := range counts {
		data = append(data, opts.PieData{Name: c.Label, Value: c.Count})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Formatter: "{b}: {c} ({d}%)"}),
	)
	pie.AddSeries(title, data,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}),
	)
	return pie
}

func barChart(title, series string, counts []models.LabelCount) *charts.Bar {
	labels := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, c.Label)
		data = append(data, opts.BarData{Value: c.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries(series, data)
	return bar
}
