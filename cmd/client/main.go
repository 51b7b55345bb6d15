package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/akhmetovr/go-grid-keeper/internal/adapter"
	"github.com/akhmetovr/go-grid-keeper/internal/config"
	"github.com/akhmetovr/go-grid-keeper/internal/logger"
	"github.com/akhmetovr/go-grid-keeper/internal/service"
	"github.com/akhmetovr/go-grid-keeper/internal/store"
	"github.com/akhmetovr/go-grid-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `Usage: grid-client <command> [flags]

Commands:
  list    list drivers (-team, -name, -min-wins, -skip, -limit, -sort-by, -sort-order)
  get     fetch a single driver (-id)
  add     create a driver (-name, -team, -first-season, -races, -wins)
  update  patch a driver (-id plus any of -name, -team, -first-season, -races, -wins)
  delete  remove a driver (-id)
  sync    replay queued offline operations
  status  show connectivity and queue depth

Configuration comes from environment variables or a JSON file (CONFIG).`

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("grid-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	command, args := commandArgs(os.Args[1:])
	if command == "" {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	storage, err := store.NewStorage(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error().Err(err).Msg("close local storage")
		}
	}()

	remote := adapter.NewHTTPDriverClient(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	cache := storage.Cache()
	pending := storage.PendingLog()
	reconciler := service.NewReconciler(cache, pending, remote, log)
	monitor := service.NewMonitor(remote, cfg.Workers.HealthInterval, log)
	controller := service.NewController(cache, pending, remote, reconciler, monitor, log)

	ctx := context.Background()
	monitor.OnChange(func(online bool) {
		controller.OnConnectivityChange(ctx, online)
	})
	// settle connectivity before the first command, then keep probing
	monitor.Probe(ctx)
	monitor.Start(ctx)
	defer monitor.Stop()

	if err := dispatch(ctx, controller, monitor, command, args); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}
}

// commandArgs picks the first non-flag argument as the command; anything
// before it belongs to the shared config flags already parsed.
func commandArgs(args []string) (string, []string) {
	for i, a := range args {
		if len(a) > 0 && a[0] != '-' {
			return a, args[i+1:]
		}
	}
	return "", nil
}

func dispatch(ctx context.Context, c service.Controller, m *service.Monitor, command string, args []string) error {
	switch command {
	case "list":
		return runList(ctx, c, args)
	case "get":
		return runGet(ctx, c, args)
	case "add":
		return runAdd(ctx, c, args)
	case "update":
		return runUpdate(ctx, c, args)
	case "delete":
		return runDelete(ctx, c, args)
	case "sync":
		return runSync(ctx, c)
	case "status":
		return runStatus(ctx, c, m)
	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runList(ctx context.Context, c service.Controller, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	team := fs.String("team", "", "filter by team (case-insensitive substring)")
	name := fs.String("name", "", "filter by name (case-insensitive substring)")
	minWins := fs.Int("min-wins", 0, "minimum win count")
	skip := fs.Int("skip", 0, "records to skip")
	limit := fs.Int("limit", 0, "page size, 0 for all")
	sortBy := fs.String("sort-by", "", "sort field: name, team, firstSeason, races, wins")
	sortOrder := fs.String("sort-order", "", "sort order: asc or desc")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := models.ListFilter{Team: *team, Name: *name, Skip: *skip, Limit: *limit}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "min-wins" {
			filter.MinWins = minWins
		}
	})

	drivers, err := c.Fetch(ctx, filter, models.ListSort{By: *sortBy, Order: models.SortOrder(*sortOrder)})
	if err != nil {
		return err
	}
	return printJSON(drivers)
}

func runGet(ctx context.Context, c service.Controller, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	id := fs.String("id", "", "driver id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("get requires -id")
	}

	driver, err := c.Get(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(driver)
}

func runAdd(ctx context.Context, c service.Controller, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "driver name")
	team := fs.String("team", "", "team name")
	firstSeason := fs.Int("first-season", 0, "first season year")
	races := fs.Int("races", 0, "career race count")
	wins := fs.Int("wins", 0, "career win count")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := c.Add(ctx, models.DriverPayload{
		Name:        *name,
		Team:        *team,
		FirstSeason: *firstSeason,
		Races:       *races,
		Wins:        *wins,
	})
	if err != nil {
		return err
	}
	return printJSON(created)
}

func runUpdate(ctx context.Context, c service.Controller, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.String("id", "", "driver id")
	name := fs.String("name", "", "driver name")
	team := fs.String("team", "", "team name")
	firstSeason := fs.Int("first-season", 0, "first season year")
	races := fs.Int("races", 0, "career race count")
	wins := fs.Int("wins", 0, "career win count")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("update requires -id")
	}

	// only explicitly passed flags become patch fields
	var patch models.DriverPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "team":
			patch.Team = team
		case "first-season":
			patch.FirstSeason = firstSeason
		case "races":
			patch.Races = races
		case "wins":
			patch.Wins = wins
		}
	})
	if patch.IsEmpty() {
		return fmt.Errorf("update requires at least one field flag")
	}

	updated, err := c.Update(ctx, *id, patch)
	if err != nil {
		return err
	}
	return printJSON(updated)
}

func runDelete(ctx context.Context, c service.Controller, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "driver id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("delete requires -id")
	}

	deleted, err := c.Delete(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(deleted)
}

func runSync(ctx context.Context, c service.Controller) error {
	result, err := c.Sync(ctx)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runStatus(ctx context.Context, c service.Controller, m *service.Monitor) error {
	count, err := c.PendingCount(ctx)
	if err != nil {
		return err
	}
	return printJSON(struct {
		Online  bool `json:"online"`
		Pending int  `json:"pending"`
	}{Online: m.Online(), Pending: count})
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
