package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/rook-computer/lvconf/internal/display"
	"github.com/rook-computer/lvconf/internal/fonts"
	"github.com/rook-computer/lvconf/internal/logging"
	"github.com/rook-computer/lvconf/internal/lvconf"
	"github.com/rook-computer/lvconf/internal/render"
	"github.com/rook-computer/lvconf/internal/web"
)

const (
	envStdioLog    = "LVCONF_STDIO_LOG"
	envFramebuffer = "LVCONF_FB"
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: lvconf [flags] <command> [args]\n\n")
	fmt.Fprintf(out, "commands:\n")
	fmt.Fprintf(out, "  header      write lv_conf.h to stdout (or -o)\n")
	fmt.Fprintf(out, "  get NAME    print one option value\n")
	fmt.Fprintf(out, "  list        print every option\n")
	fmt.Fprintf(out, "  check       validate and print the fingerprint\n")
	fmt.Fprintf(out, "  show        draw the test card on the panel until Esc, F4 or a signal\n")
	fmt.Fprintf(out, "  serve       expose the configuration read-only over HTTP until a signal\n\n")
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "YAML overrides applied on top of the header or built-in defaults")
	headerPath := flag.String("header", "", "start from this lv_conf.h instead of the built-in defaults")
	outPath := flag.String("o", "", "output file for header (default stdout)")
	debug := flag.Bool("debug", false, "enable debug logging to ./lvconf-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	listen := flag.String("listen", "", "address for serve (default :8080, also configurable via "+web.EnvListenAddr+")")
	fbPath := flag.String("fb", "", "framebuffer device for show; default depends on the display driver, also configurable via "+envFramebuffer)
	flag.Usage = usage
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	var logger logging.Logger = logging.NoopLogger{}
	if *debug {
		l, f, err := logging.OpenFile("./lvconf-debug.log")
		if err != nil {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		} else {
			defer f.Close()
			logger = l
			logger.Infof("main", "debug logging enabled")
		}
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	set, duplicates, err := lvconf.Load(lvconf.Sources{Header: *headerPath, Overrides: *configPath})
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}
	for _, name := range duplicates {
		logger.Infof("lvconf", "dropped duplicate definition of %s", name)
	}
	logger.Infof("lvconf", "built %d options, fingerprint %s", set.Len(), set.Fingerprint())

	switch cmd := flag.Arg(0); cmd {
	case "header":
		err = writeHeader(set, *outPath)
	case "get":
		if flag.NArg() != 2 {
			usage()
			os.Exit(2)
		}
		err = printOption(os.Stdout, set, flag.Arg(1))
	case "list":
		err = listOptions(os.Stdout, set)
	case "check":
		fmt.Printf("ok %s (%d options)\n", set.Fingerprint(), set.Len())
	case "show":
		path := *fbPath
		if path == "" {
			path = os.Getenv(envFramebuffer)
		}
		if path == "" {
			path = display.DevicePath(set.Display())
		}
		err = show(set, path, logger)
	case "serve":
		err = serve(set, *listen, logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Errorf("main", "%v", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func writeHeader(set *lvconf.Set, path string) error {
	if path == "" {
		return lvconf.WriteHeader(os.Stdout, set)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := lvconf.WriteHeader(f, set); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printOption(w io.Writer, set *lvconf.Set, name string) error {
	v, err := set.Get(name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v.Define())
	return err
}

func listOptions(w io.Writer, set *lvconf.Set) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, o := range set.Options() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", o.Category, o.Name, o.Value.Define())
	}
	return tw.Flush()
}

func show(set *lvconf.Set, path string, logger logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	display.WatchExitKeys(ctx, logger, cancel)

	reg, err := fonts.NewRegistry(set, nil, logger)
	if err != nil {
		return err
	}
	defer reg.Close()

	panel, err := display.Open(path, display.FormatOf(set), logger)
	if err != nil {
		return err
	}
	defer panel.Close()

	console := display.Console{Logger: logger}
	_ = console.EnterGraphics()
	defer func() { _ = console.Restore() }()

	bounds := panel.Bounds()
	card, err := render.TestCard(set, reg, bounds.Dx(), bounds.Dy())
	if err != nil {
		return err
	}
	if err := panel.Show(card.Image); err != nil {
		return err
	}
	logger.Infof("main", "test card shown on %s (%d widgets drawn)", path, len(card.Drawn))

	<-ctx.Done()
	return nil
}

func serve(set *lvconf.Set, listen string, logger logging.Logger) error {
	cfg, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.ListenAddr = listen
	}

	reg, err := fonts.NewRegistry(set, nil, logger)
	if err != nil {
		return err
	}
	defer reg.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := web.NewHTTPServer(cfg.ListenAddr, web.NewMux(&web.APIV1{Set: set, Fonts: reg}, cfg), logger)
	if err := srv.Start(ctx); err != nil {
		return err
	}
	fmt.Printf("serving %s on %s\n", set.Fingerprint(), srv.ListenAddr())

	<-ctx.Done()
	return srv.Stop()
}
