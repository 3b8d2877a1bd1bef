package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/owlpinetech/geocart"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger LoggerOptions `group:"Logger options"`

	Points   []string `short:"p" long:"point"    description:"Point to convert, as lon,lat[,alt] in degrees (or x,y,z with --reverse). Repeatable"`
	Reverse  bool     `short:"r" long:"reverse"  description:"Convert cartesian x,y,z back to geographic lon,lat,alt"`
	From     string   `long:"from"               description:"Arc start, as lon,lat in degrees"`
	To       string   `long:"to"                 description:"Arc end, as lon,lat in degrees"`
	Segments int      `short:"s" long:"segments" description:"Number of arc segments" default:"16"`
	Config   string   `short:"c" long:"config"   description:"YAML file with a list of named arcs"`
	Output   string   `short:"o" long:"out"      description:"Output file path. Writes to stdout if empty"`
}

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	switch {
	case len(opts.Points) > 0:
		if err := runConvert(opts); err != nil {
			log.Fatal().Err(err).Msg("Conversion failed")
		}
	case opts.Config != "" || (opts.From != "" && opts.To != ""):
		if err := runArcs(opts); err != nil {
			log.Fatal().Err(err).Msg("Arc tracing failed")
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: nothing to do; pass --point, --config, or --from/--to")
		os.Exit(1)
	}
}

func runConvert(opts Options) error {
	for _, raw := range opts.Points {
		if opts.Reverse {
			x, y, z, err := parseTriple(raw)
			if err != nil {
				return err
			}
			point := geocart.Cartesian[float64]{X: x, Y: y, Z: z}.Geographic()
			fmt.Printf("%g,%g,%g\n",
				point.Longitude.Value()*rad2deg,
				point.Latitude.Value()*rad2deg,
				point.Altitude.Value())
			continue
		}

		lon, lat, alt, err := parsePoint(raw)
		if err != nil {
			return err
		}
		point := geographic(lon, lat, alt).Cartesian()
		fmt.Printf("%g,%g,%g\n", point.X, point.Y, point.Z)
	}
	return nil
}

func runArcs(opts Options) error {
	arcs := []ArcConfig{}

	if opts.Config != "" {
		cfg, err := LoadConfig(opts.Config)
		if err != nil {
			return err
		}
		arcs = append(arcs, cfg.Arcs...)
		log.Debug().Int("arcs", len(cfg.Arcs)).Str("path", opts.Config).Msg("Loaded arc list")
	}

	if opts.From != "" && opts.To != "" {
		fromLon, fromLat, _, err := parsePoint(opts.From)
		if err != nil {
			return err
		}
		toLon, toLat, _, err := parsePoint(opts.To)
		if err != nil {
			return err
		}
		arcs = append(arcs, ArcConfig{
			Name:     "arc",
			From:     Position{Lon: fromLon, Lat: fromLat},
			To:       Position{Lon: toLon, Lat: toLat},
			Segments: opts.Segments,
		})
	}

	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, len(arcs)),
	}

	for _, entry := range arcs {
		segments := entry.Segments
		if segments < 1 {
			segments = opts.Segments
		}
		if segments < 1 {
			segments = 16
		}

		arc := geocart.NewArc(
			geographic(entry.From.Lon, entry.From.Lat, 0),
			geographic(entry.To.Lon, entry.To.Lat, 0),
			segments,
		)

		coords := make([][]float64, 0, segments+1)
		for iter := arc.Iter(); ; {
			point, ok := iter.Next()
			if !ok {
				break
			}
			coords = append(coords, []float64{
				point.Longitude.Value() * rad2deg,
				point.Latitude.Value() * rad2deg,
			})
		}

		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "LineString",
				Coordinates: coords,
			},
			Properties: map[string]interface{}{
				"name":     entry.Name,
				"segments": segments,
			},
		})
		log.Debug().Str("name", entry.Name).Int("points", len(coords)).Msg("Traced arc")
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}

	if opts.Output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
		return err
	}
	log.Info().Str("path", opts.Output).Int("arcs", len(fc.Features)).Msg("Wrote GeoJSON")
	return nil
}

func geographic(lonDeg, latDeg, alt float64) geocart.Geographic[float64] {
	return geocart.Geographic[float64]{}.
		WithLongitude(geocart.NewLongitude(lonDeg * deg2rad)).
		WithLatitude(geocart.NewLatitude(latDeg * deg2rad)).
		WithAltitude(geocart.NewAltitude(alt))
}

func parsePoint(raw string) (lon, lat, alt float64, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected lon,lat[,alt], got %q", raw)
	}
	if lon, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, 0, err
	}
	if lat, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, 0, err
	}
	if len(parts) == 3 {
		if alt, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err != nil {
			return 0, 0, 0, err
		}
	}
	return lon, lat, alt, nil
}

func parseTriple(raw string) (x, y, z float64, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected x,y,z, got %q", raw)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, 0, err
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, 0, err
	}
	if z, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}
