package main

import (
	"bufio"
	"chat-gateway/domain/channel"
	"chat-gateway/domain/notification"
	infrasearch "chat-gateway/infrastructure/search"
	"chat-gateway/internal"
	"chat-gateway/projection"
	"chat-gateway/repositories"
	"chat-gateway/runtime"
	"chat-gateway/runtime/workers"
	"chat-gateway/services"
	"chat-gateway/sink"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

const usage = `usage: chat-gateway <command> [flags]

commands:
  seed     -file seed.json          load gateways and channels
  sidebar  [-search "query"]        print the sidebar
  rename   -channel ID -name NAME   rename a channel from its topbar
  notify   -channel ID -author A -body B
                                    push a channel message through the guard
  listen                            read JSON lines {"channel","author","body"} from stdin`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	config   internal.Config
	log      *slog.Logger
	channels *repositories.ChannelRepository
	gateways *repositories.GatewayRepository
	sidebar  *services.SidebarService
	out      io.Writer
}

// run wires the stores once and dispatches to the sub command, so deferred
// cleanups always run before the process exits.
func run(args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n%s", usage)
	}

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Stores
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	index := infrasearch.NewChannelIndex(writer, log)
	defer func() { _ = index.Close() }()

	channels := repositories.NewChannelRepository(db, log, config.Self())
	gateways := repositories.NewGatewayRepository(db, log)

	a := app{
		config:   config,
		log:      log,
		channels: channels,
		gateways: gateways,
		sidebar: services.NewSidebarService(log, channels, gateways, index,
			config.Separator(), config.Defaults(), config.Self()),
		out: out,
	}

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "seed":
		return a.seed(args[1:])
	case "sidebar":
		return a.printSidebar(ctx, args[1:])
	case "rename":
		return a.rename(ctx, args[1:])
	case "notify":
		return a.notify(ctx, args[1:])
	case "listen":
		return a.listen(ctx, in)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

type seedFile struct {
	Gateways []repositories.Gateway       `json:"gateways"`
	Channels []repositories.ChannelRecord `json:"channels"`
}

func (a app) seed(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	file := fs.String("file", "seed.json", "JSON file with gateways and channels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bytes, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read seed: %w", err)
	}
	var seed seedFile
	if err = json.Unmarshal(bytes, &seed); err != nil {
		return fmt.Errorf("parse seed: %w", err)
	}
	for _, gw := range seed.Gateways {
		if err = a.gateways.Save(gw); err != nil {
			return fmt.Errorf("gateway %d: %w", gw.ID, err)
		}
	}
	for _, record := range seed.Channels {
		if err = a.channels.Save(record); err != nil {
			return fmt.Errorf("channel %d: %w", record.ID, err)
		}
	}
	a.log.Info("Seed loaded", "gateways", len(seed.Gateways), "channels", len(seed.Channels))
	return nil
}

func (a app) printSidebar(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sidebar", flag.ContinueOnError)
	query := fs.String("search", "", "quick search, e.g. \"sales --category gateway_1\"")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		sections []projection.Section
		err      error
	)
	if *query == "" {
		sections, err = a.sidebar.Sections(ctx)
	} else {
		sections, err = a.sidebar.Search(ctx, *query)
	}
	if err != nil {
		return err
	}

	for _, section := range sections {
		header := fmt.Sprintf("%s (%d)", section.Category.Name, len(section.Entries))
		if a.config.Colours {
			header = color.New(color.BgBlack, color.FgGreen).Render(header)
		}
		fmt.Fprintln(a.out, header)

		table := tablewriter.NewWriter(a.out)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetTablePadding("\t")
		for _, entry := range section.Entries {
			table.Append([]string{fmt.Sprintf("#%d", entry.ChannelID), string(entry.Type), entry.Name})
		}
		table.Render()
	}
	return nil
}

func (a app) rename(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rename", flag.ContinueOnError)
	id := fs.Int("channel", 0, "channel id")
	name := fs.String("name", "", "new name, empty to clear when allowed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	action, err := a.sidebar.Rename(ctx, channel.ID(*id), *name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "channel #%d: %s %q\n", *id, action.Kind, action.Name)
	return nil
}

func (a app) notify(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("notify", flag.ContinueOnError)
	id := fs.Int("channel", 0, "channel id")
	author := fs.String("author", "", "message author")
	body := fs.String("body", "", "message body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// The registry starts empty: the guard resolves the channel from the store.
	handler := services.NewNotificationService(a.log, runtime.NewChannelRegistry(), a.channels,
		sink.NewConsole(a.out, a.config.Colours), a.config.FetchTimeout)
	defer handler.Close()

	msg := notification.NewChannelMessage(channel.ID(*id), *author, *body, time.Now().UTC())
	return handler.HandleChannelMessage(ctx, msg)
}

type busLine struct {
	Channel int    `json:"channel"`
	Author  string `json:"author"`
	Body    string `json:"body"`
}

// listen feeds stdin lines to a supervised consumer sharing one registry,
// so only the first message of a channel triggers a lookup.
func (a app) listen(ctx context.Context, in io.Reader) error {
	handler := services.NewNotificationService(a.log, runtime.NewChannelRegistry(), a.channels,
		sink.NewConsole(a.out, a.config.Colours), a.config.FetchTimeout)
	defer handler.Close()

	inbox := make(chan notification.ChannelMessage, a.config.InboxSize)
	sup := workers.NewSupervisor(a.log, a.config.RestartInterval)
	sup.Add(workers.NewNotificationConsumer(a.log, inbox, handler))

	done := make(chan struct{})
	go func() {
		defer close(done)
		sup.Run(ctx)
	}()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		var line busLine
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			a.log.Warn("Skipping malformed bus line", "error", err)
			continue
		}
		msg := notification.NewChannelMessage(channel.ID(line.Channel), line.Author, line.Body, time.Now().UTC())
		select {
		case inbox <- msg:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(inbox)
	<-done
	return scanner.Err()
}
