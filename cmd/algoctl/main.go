package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"

	"algoconfig/internal/client/algoconfig"
	"algoconfig/internal/config"
	"algoconfig/internal/models"
)

const usage = `algoctl - terminal client for the AlgoConfig service

Usage:
  algoctl [-api URL] [-timeout DUR] <command> [arguments]

Commands:
  list                 list all configurations
  get <id>             show one configuration
  create [flags]       create a configuration
  update <id> [flags]  update a configuration
  delete <id>          delete a configuration
  health               check service liveness

Create/update flags:
  -name -instrument -timeframe -entry -exit -max-loss -max-trades
  -enabled -stop-loss -notes
`

func main() {
	// Optional .env for ALGOCONFIG_* overrides; absence is fine.
	_ = godotenv.Load()

	cfgPath := os.Getenv("ALGOCONFIG_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}
	envOnly := false
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		envOnly = true
	}
	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not load config: %v\n", err)
		os.Exit(1)
	}

	apiURL := flag.String("api", cfg.Client.BaseURL, "service base URL")
	timeout := flag.Duration("timeout", cfg.Client.Timeout, "request timeout")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	c := algoconfig.NewClient(&http.Client{Timeout: *timeout}, *apiURL)
	store := algoconfig.NewStore()
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch args[0] {
	case "list":
		err = runList(ctx, c, store)
	case "get":
		err = runGet(ctx, c, store, args[1:])
	case "create":
		err = runCreate(ctx, c, store, args[1:])
	case "update":
		err = runUpdate(ctx, c, store, args[1:])
	case "delete":
		err = runDelete(ctx, c, store, args[1:])
	case "health":
		err = runHealth(ctx, c)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		reportFailure(store, err)
		os.Exit(1)
	}
}

func runList(ctx context.Context, c *algoconfig.Client, store *algoconfig.Store) error {
	store.BeginFetch()
	list, err := c.FetchConfigs(ctx)
	if err != nil {
		store.Fail(err)
		return err
	}
	store.FetchSucceeded(list)
	renderTable(store.List)
	fmt.Printf("%d configuration(s)\n", len(store.List))
	return nil
}

func runGet(ctx context.Context, c *algoconfig.Client, store *algoconfig.Store, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: algoctl get <id>")
	}
	store.BeginFetch()
	item, err := c.FetchConfig(ctx, args[0])
	if err != nil {
		store.Fail(err)
		return err
	}
	store.SetSelected(item)
	renderDetail(*item)
	return nil
}

func runCreate(ctx context.Context, c *algoconfig.Client, store *algoconfig.Store, args []string) error {
	payload, err := parsePayload("create", args)
	if err != nil {
		return err
	}
	store.BeginSave()
	item, err := c.CreateConfig(ctx, payload)
	if err != nil {
		store.Fail(err)
		return err
	}
	store.CreateSucceeded(*item)
	fmt.Printf("created %s\n", item.ID)
	renderDetail(*item)
	return nil
}

func runUpdate(ctx context.Context, c *algoconfig.Client, store *algoconfig.Store, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: algoctl update <id> [flags]")
	}
	payload, err := parsePayload("update", args[1:])
	if err != nil {
		return err
	}
	store.BeginSave()
	item, err := c.UpdateConfig(ctx, args[0], payload)
	if err != nil {
		store.Fail(err)
		return err
	}
	store.UpdateSucceeded(*item)
	fmt.Printf("updated %s\n", item.ID)
	renderDetail(*item)
	return nil
}

func runDelete(ctx context.Context, c *algoconfig.Client, store *algoconfig.Store, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: algoctl delete <id>")
	}
	item, err := c.DeleteConfig(ctx, args[0])
	if err != nil {
		store.Fail(err)
		return err
	}
	store.DeleteSucceeded(item.ID)
	fmt.Printf("deleted %s\n", item.ID)
	return nil
}

func runHealth(ctx context.Context, c *algoconfig.Client) error {
	if err := c.Health(ctx); err != nil {
		return err
	}
	fmt.Println("service is up")
	return nil
}

func parsePayload(name string, args []string) (models.ConfigPayload, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fieldName := fs.String("name", "", "configuration name")
	instrument := fs.String("instrument", "", "instrument symbol")
	timeframe := fs.String("timeframe", "", "candle timeframe")
	entry := fs.Float64("entry", 0, "entry threshold")
	exit := fs.Float64("exit", 0, "exit threshold")
	maxLoss := fs.Float64("max-loss", 0, "max loss percent (0-100]")
	maxTrades := fs.Float64("max-trades", 0, "max trades per day")
	enabled := fs.Bool("enabled", true, "enable the configuration")
	stopLoss := fs.Bool("stop-loss", false, "enable stop loss")
	notes := fs.String("notes", "", "free-form notes")
	if err := fs.Parse(args); err != nil {
		return models.ConfigPayload{}, err
	}

	p := models.ConfigPayload{
		Name:       *fieldName,
		Instrument: *instrument,
		Timeframe:  *timeframe,
		Notes:      *notes,
	}
	// Only flags the user actually set travel in the payload, so an
	// update without -enabled keeps the stored value.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "entry":
			p.EntryThreshold = entry
		case "exit":
			p.ExitThreshold = exit
		case "max-loss":
			p.MaxLossPercent = maxLoss
		case "max-trades":
			p.MaxTradesPerDay = maxTrades
		case "enabled":
			p.Enabled = enabled
		case "stop-loss":
			p.StopLossEnabled = stopLoss
		}
	})
	return p, nil
}

func renderTable(items []models.AlgoConfig) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Name", "Instrument", "TF", "Entry", "Exit", "Max Loss %", "Trades/Day", "Enabled"})
	for _, item := range items {
		t.AppendRow(table.Row{
			item.ID, item.Name, item.Instrument, item.Timeframe,
			item.EntryThreshold, item.ExitThreshold,
			item.MaxLossPercent, item.MaxTradesPerDay, item.Enabled,
		})
	}
	t.Render()
}

func renderDetail(item models.AlgoConfig) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendRows([]table.Row{
		{"ID", item.ID},
		{"Name", item.Name},
		{"Instrument", item.Instrument},
		{"Timeframe", item.Timeframe},
		{"Entry threshold", item.EntryThreshold},
		{"Exit threshold", item.ExitThreshold},
		{"Max loss %", item.MaxLossPercent},
		{"Max trades/day", item.MaxTradesPerDay},
		{"Enabled", item.Enabled},
		{"Stop loss", item.StopLossEnabled},
		{"Notes", item.Notes},
		{"Created", item.CreatedAt.Format(time.RFC3339)},
		{"Updated", item.UpdatedAt.Format(time.RFC3339)},
	})
	t.Render()
}

func reportFailure(store *algoconfig.Store, err error) {
	if len(store.FieldErrors) > 0 {
		fmt.Fprintln(os.Stderr, "validation failed:")
		fields := make([]string, 0, len(store.FieldErrors))
		for field := range store.FieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, store.FieldErrors[field])
		}
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

