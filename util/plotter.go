package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"dayout-server/models"
)

// PlotRouteGeometry generates an HTML file rendering a computed route
// polyline, for eyeballing provider output during development.
func PlotRouteGeometry(geometry models.RouteGeometry, outputPath string) {
	points := make([]opts.GeoData, 0, len(geometry.Polyline))
	for i, loc := range geometry.Polyline {
		points = append(points, opts.GeoData{
			Name:  fmt.Sprintf("p%d", i),
			Value: []float64{loc.Lng, loc.Lat},
		})
	}

	// Create a new Geo chart.
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Route Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true), // Disables interactivity on the map background.
		}),
	)

	geo.AddSeries("Route", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(false),
			Formatter: "{b}",
		}),
	)

	// Create an HTML file to render the chart.
	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Printf("Route map generated: %s (%.1f km, %.0f min)\n",
		outputPath, geometry.Distance/1000, geometry.Duration/60)
}
