package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/joho/godotenv"
	"github.com/phsym/console-slog"

	"github.com/rharriso/pywo/internal/config"
	"github.com/rharriso/pywo/internal/dispatch"
	"github.com/rharriso/pywo/internal/sutureext"
	"github.com/rharriso/pywo/internal/wm"
	"github.com/rharriso/pywo/internal/x11"
)

func main() {
	godotenv.Load()

	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		os.Exit(runDaemon(os.Args[2:]))
	case "list":
		os.Exit(runList(os.Args[2:]))
	case "info":
		os.Exit(runInfo(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pywo <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Watch window events in the foreground")
	fmt.Fprintln(w, "  list [match]        List windows, optionally filtered by name")
	fmt.Fprintln(w, "  info                Dump window manager and active window details")
	fmt.Fprintln(w, "  help                Show this help")
}

func initLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

func connect() (*x11.Connection, *wm.WindowManager, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to display: %w", err)
	}
	return conn, wm.NewWindowManager(conn), nil
}

func runDaemon(args []string) int {
	fs := flag.NewFlagSet("daemon", flag.ExitOnError)
	debug := fs.Bool("debug", false, "enable debug logging")
	configPath := fs.String("config", "", "configuration file (default ~/.config/pywo/pywo.yaml)")
	fs.Parse(args)
	logger := initLogger(*debug)

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath, logger)
	} else {
		cfg, err = config.Load(logger)
	}
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		return 1
	}
	logger.Info("configuration loaded", "sections", len(cfg.Sections), "keys", len(cfg.Keys))

	conn, manager, err := connect()
	if err != nil {
		logger.Error(err.Error())
		return 1
	}
	defer conn.Close()
	logger.Info("connected", "wm", manager.Name(), "type", manager.Type().String())

	dispatcher := dispatch.New(conn, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	super := sutureext.NewSupervisor("pywo", logger)
	super.Add(sutureext.NewServiceFunc("event-watcher", func(ctx context.Context) error {
		return watchEvents(ctx, conn, dispatcher, logger)
	}))

	if err := super.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("supervisor exited", "error", err)
		return 1
	}
	logger.Info("shutting down")
	return 0
}

// watchEvents subscribes to root window events and logs them until the
// context ends.
func watchEvents(ctx context.Context, conn *x11.Connection, dispatcher *dispatch.Dispatcher, logger *slog.Logger) error {
	root := conn.RootWindow()

	structure := &dispatch.StructureHandler{
		OnCreate: func(ev xproto.CreateNotifyEvent) {
			logger.Debug("window created", "window", ev.Window)
		},
		OnDestroy: func(ev xproto.DestroyNotifyEvent) {
			logger.Debug("window destroyed", "window", ev.Window)
		},
		OnMap: func(ev xproto.MapNotifyEvent) {
			logger.Debug("window mapped", "window", ev.Window)
		},
		OnUnmap: func(ev xproto.UnmapNotifyEvent) {
			logger.Debug("window unmapped", "window", ev.Window)
		},
	}
	properties := &dispatch.PropertyHandler{
		OnChange: func(ev xproto.PropertyNotifyEvent) {
			logger.Debug("property changed", "window", ev.Window, "atom", conn.AtomName(ev.Atom))
		},
	}

	dispatcher.Register(root, structure)
	mask := dispatcher.Register(root, properties)
	if err := conn.ChangeEventMask(root, mask); err != nil {
		return fmt.Errorf("failed to select root events: %w", err)
	}
	defer dispatcher.UnregisterAll()

	<-ctx.Done()
	return ctx.Err()
}

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Parse(args)
	logger := initLogger(*debug)
	match := strings.Join(fs.Args(), " ")

	conn, manager, err := connect()
	if err != nil {
		logger.Error(err.Error())
		return 1
	}
	defer conn.Close()

	windows, err := manager.Windows(wm.Standard(), match)
	if err != nil {
		logger.Error("failed to list windows", "error", err)
		return 1
	}
	for _, win := range windows {
		states := strings.Join(win.States(), ",")
		fmt.Printf("0x%08x  %d  %-20s  %s  %s\n",
			win.ID, win.Desktop(), win.ClassName(), win.Name(), states)
	}
	return 0
}

func runInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Parse(args)
	logger := initLogger(true)

	conn, manager, err := connect()
	if err != nil {
		logger.Error(err.Error())
		return 1
	}
	defer conn.Close()

	manager.DebugInfo(logger)
	if active := manager.ActiveWindow(); active != nil {
		active.DebugInfo(logger)
	}
	return 0
}
