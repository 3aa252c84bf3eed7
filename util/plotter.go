package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"np-server/models"
)

const ORIGIN_SERIES_NAME = "Origin"

// RenderPlacesMap renders an HTML geo chart with the origin and one scatter
// series per category. Empty categories still get a (blank) series so the
// legend always lists every category.
func RenderPlacesMap(w io.Writer, origin models.Coordinate, places models.PlacesByCategory) error {
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Nearby Places",
			Width:     "900px",
			Height:    "650px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Nearby Places",
			Subtitle: fmt.Sprintf("%.6f, %.6f", origin.Lat, origin.Lng),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries(ORIGIN_SERIES_NAME, types.ChartEffectScatter, []opts.GeoData{
		{Name: ORIGIN_SERIES_NAME, Value: []float64{origin.Lng, origin.Lat}},
	})

	for _, cp := range places {
		points := make([]opts.GeoData, 0, len(cp.Places))
		for _, p := range cp.Places {
			// echarts expects [lng, lat]
			points = append(points, opts.GeoData{
				Name:  fmt.Sprintf("%s (%s km)", p.Name, p.Distance),
				Value: []float64{p.Location[1], p.Location[0]},
			})
		}
		geo.AddSeries(cp.Category.Name, types.ChartScatter, points,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(false),
				Formatter: "{b}",
			}),
		)
	}

	return geo.Render(w)
}
