package main

import (
	"cinemap/config"
	"cinemap/di"
	"cinemap/geo"
	"cinemap/models"
	services "cinemap/service"
	"cinemap/util"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

const (
	LAT_FLAG          = "lat"
	LON_FLAG          = "lon"
	RADIUS_FLAG       = "radius"
	MAX_PRICE_FLAG    = "max-price"
	ONLY_OPEN_FLAG    = "only-open"
	PARKING_FLAG      = "parking"
	ACCESSIBLE_FLAG   = "accessible"
	ART_ET_ESSAI_FLAG = "art-et-essai"
	SERVICE_FLAG      = "service"
	LIMIT_FLAG        = "limit"
	MAP_FLAG          = "map"
	TOP_FLAG          = "top"
	CHARTS_FLAG       = "charts"
	COUNT_FLAG        = "count"
)

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{Name: RADIUS_FLAG, Usage: "search radius in km (1-50)"},
		&cli.Float64Flag{Name: MAX_PRICE_FLAG, Usage: "maximum average price, 0 disables"},
		&cli.BoolFlag{Name: ONLY_OPEN_FLAG, Usage: "only cinemas open now"},
		&cli.BoolFlag{Name: PARKING_FLAG, Usage: "only cinemas with parking"},
		&cli.BoolFlag{Name: ACCESSIBLE_FLAG, Usage: "only accessible cinemas"},
		&cli.BoolFlag{Name: ART_ET_ESSAI_FLAG, Usage: "only art et essai cinemas"},
		&cli.StringSliceFlag{Name: SERVICE_FLAG, Usage: "wanted service, repeatable; any of them matches"},
	}
}

// filtersFromFlags overlays the flags given on the command line on base.
func filtersFromFlags(ctx *cli.Context, base models.FilterConfig) models.FilterConfig {
	f := base
	if ctx.IsSet(RADIUS_FLAG) {
		f.RadiusKm = ctx.Float64(RADIUS_FLAG)
	}
	if ctx.IsSet(MAX_PRICE_FLAG) {
		f.MaxPrice = ctx.Float64(MAX_PRICE_FLAG)
	}
	if ctx.IsSet(ONLY_OPEN_FLAG) {
		f.OnlyOpen = ctx.Bool(ONLY_OPEN_FLAG)
	}
	if ctx.IsSet(PARKING_FLAG) {
		f.RequireParking = ctx.Bool(PARKING_FLAG)
	}
	if ctx.IsSet(ACCESSIBLE_FLAG) {
		f.RequireAccessible = ctx.Bool(ACCESSIBLE_FLAG)
	}
	if ctx.IsSet(ART_ET_ESSAI_FLAG) {
		f.ArtEtEssai = ctx.Bool(ART_ET_ESSAI_FLAG)
	}
	if ctx.IsSet(SERVICE_FLAG) {
		f.Services = ctx.StringSlice(SERVICE_FLAG)
	}
	return f.Normalize()
}

func withContainer(fn func(c *di.Container, ctx *cli.Context) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		container, err := di.NewContainer(cfg)
		if err != nil {
			return err
		}
		defer container.Close()
		return fn(container, ctx)
	}
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeHTML(path string, render func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()
	if err := render(f); err != nil {
		return err
	}
	fmt.Printf("Generated %s\n", path)
	return nil
}

func serve(c *di.Container, ctx *cli.Context) error {
	return c.CinemapHttpServer.Start(ctx.Context)
}

func nearest(c *di.Container, ctx *cli.Context) error {
	req := services.NearbyRequest{
		Filters: filtersFromFlags(ctx, c.PreferencesService.Load()),
		Limit:   c.Config.NearestLimit,
	}
	if ctx.IsSet(LIMIT_FLAG) {
		req.Limit = ctx.Int(LIMIT_FLAG)
	}
	if ctx.IsSet(LAT_FLAG) || ctx.IsSet(LON_FLAG) {
		req.Position = &models.Position{Latitude: ctx.Float64(LAT_FLAG), Longitude: ctx.Float64(LON_FLAG)}
	}

	result, err := c.ProximityService.FindNearest(ctx.Context, req)
	if err != nil {
		return err
	}
	util.PrintNearbyResult(os.Stdout, result)

	if path := ctx.String(MAP_FLAG); path != "" {
		return writeHTML(path, func(f *os.File) error { return util.RenderNearbyMap(f, result) })
	}
	return nil
}

func stats(c *di.Container, ctx *cli.Context) error {
	s := c.StatsService.Compute(ctx.Int(TOP_FLAG))
	if err := printJSON(s); err != nil {
		return err
	}
	if path := ctx.String(CHARTS_FLAG); path != "" {
		return writeHTML(path, func(f *os.File) error { return util.RenderStatsPage(f, s) })
	}
	return nil
}

// track prints position updates until interrupted, the session fails or
// --count updates were received. It never runs a search.
func track(c *di.Container, ctx *cli.Context) error {
	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	updates, err := c.Tracker.Start(runCtx)
	if err != nil {
		return err
	}
	defer c.Tracker.Stop()

	limit := ctx.Int(COUNT_FLAG)
	received := 0
	var last *models.Position
	for u := range updates {
		if u.Err != nil {
			return fmt.Errorf("tracking stopped: %w", u.Err)
		}
		moved := ""
		if last != nil {
			moved = " moved " + geo.FormatDistance(geo.Distance(last.Latitude, last.Longitude, u.Position.Latitude, u.Position.Longitude))
		}
		fmt.Printf("%s %v%s\n", u.At.Format("15:04:05"), u.Position, moved)
		pos := u.Position
		last = &pos

		received++
		if limit > 0 && received >= limit {
			return nil
		}
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:  "cinemap",
		Usage: "find the cinemas near you",
		Commands: []*cli.Command{{
			Name:   "serve",
			Usage:  "run the HTTP API",
			Action: withContainer(serve),
		}, {
			Name:  "nearest",
			Usage: "list the cinemas around a position, nearest first",
			Flags: append(filterFlags(),
				&cli.Float64Flag{Name: LAT_FLAG, Usage: "latitude; locate automatically when omitted"},
				&cli.Float64Flag{Name: LON_FLAG, Usage: "longitude; locate automatically when omitted"},
				&cli.IntFlag{Name: LIMIT_FLAG, Usage: "maximum number of results, 0 for all; defaults to CINEMAP_NEAREST_LIMIT"},
				&cli.StringFlag{Name: MAP_FLAG, Usage: "also write an HTML map to this file"},
			),
			Action: withContainer(nearest),
		}, {
			Name:  "stats",
			Usage: "print catalog statistics",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: TOP_FLAG, Usage: "number of top rated cinemas", Value: config.DEFAULT_TOP_RATED_LIMIT},
				&cli.StringFlag{Name: CHARTS_FLAG, Usage: "also write HTML charts to this file"},
			},
			Action: withContainer(stats),
		}, {
			Name:  "track",
			Usage: "follow the current position until interrupted",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: COUNT_FLAG, Usage: "stop after this many updates, 0 for no limit"},
			},
			Action: withContainer(track),
		}, {
			Name:  "prefs",
			Usage: "manage the saved search preferences",
			Subcommands: []*cli.Command{{
				Name:  "show",
				Usage: "print the saved preferences",
				Action: withContainer(func(c *di.Container, ctx *cli.Context) error {
					return printJSON(c.PreferencesService.Load())
				}),
			}, {
				Name:  "save",
				Usage: "save preferences; flags not given keep their saved value",
				Flags: filterFlags(),
				Action: withContainer(func(c *di.Container, ctx *cli.Context) error {
					cfg := filtersFromFlags(ctx, c.PreferencesService.Load())
					if !c.PreferencesService.Save(cfg) {
						return cli.Exit("preferences could not be saved", 1)
					}
					return printJSON(cfg)
				}),
			}, {
				Name:  "reset",
				Usage: "forget the saved preferences",
				Action: withContainer(func(c *di.Container, ctx *cli.Context) error {
					if !c.PreferencesService.Reset() {
						return cli.Exit("preferences could not be reset", 1)
					}
					return nil
				}),
			}},
		}},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
