package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/muurk/mainviews/internal/app"
	"github.com/muurk/mainviews/internal/config"
	"github.com/muurk/mainviews/internal/discovery"
	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/preview"
	"github.com/muurk/mainviews/internal/sim"
	"github.com/muurk/mainviews/internal/widgets"
)

// Command flags
var (
	servePort    int
	serveHost    string
	noAdvertise  bool
	instanceName string
	scanTimeout  int
	outputFormat string
	showEvents   string
	showFrame    bool
	saveChanges  bool
	forceInit    bool
)

func init() {
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(factoriesCmd)
	rootCmd.AddCommand(initCmd)
}

func openSession(cfg *config.Config, simulate bool) (*app.Session, error) {
	return app.New(app.Options{
		ModelPath:   cfg.ModelFile(),
		GeneralPath: cfg.GeneralFile(),
		Simulate:    simulate,
		FlushDelay:  cfg.Simulator.FlushDelay(),
	})
}

// simCmd runs the terminal simulator
var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Edit the main views in the terminal simulator",
	Long: `Run the screen editor in the terminal.

Keys follow the desktop radio simulator: PgUp/PgDn switch pages, -/+ or the
mouse wheel turn the rotary encoder, Enter presses it and l long-presses it,
Esc or Down exits. Press ? for the full key list.`,
	RunE: runSim,
}

func runSim(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("the simulator needs a terminal; use 'mainviews show --frame' for scripted rendering")
	}
	if w, h, err := term.GetSize(fd); err == nil && (w < sim.MinWidth || h < sim.MinHeight) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the display needs %dx%d\n", w, h, sim.MinWidth, sim.MinHeight)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := openSession(cfg, true)
	if err != nil {
		return err
	}

	runErr := sim.Run(sess, cfg.Simulator.Tick())
	if err := sess.Close(); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

// serveCmd runs the headless preview server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the editor over WebSocket",
	Long: `Run the screen editor headless and stream its frames over WebSocket.

Clients send events and receive every rendered frame. The server advertises
itself over mDNS unless --no-advertise is given.`,
	Example: `  # Serve on the configured port
  mainviews serve

  # Drive it from the shell
  curl -d event=long-enter http://localhost:8765/event
  curl http://localhost:8765/frame`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (default from config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen address (default all interfaces)")
	serveCmd.Flags().BoolVar(&noAdvertise, "no-advertise", false, "Do not advertise over mDNS")
	serveCmd.Flags().StringVar(&instanceName, "instance", "", "mDNS instance name (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pc := preview.Config{
		Host:        serveHost,
		Port:        cfg.Preview.Port,
		FramePeriod: cfg.Simulator.Tick(),
		Advertise:   cfg.Preview.Advertise && !noAdvertise,
		Instance:    cfg.Preview.Instance,
	}
	if servePort != 0 {
		pc.Port = servePort
	}
	if instanceName != "" {
		pc.Instance = instanceName
	}

	sess, err := openSession(cfg, true)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving main views on port %d (Ctrl+C to stop)\n", pc.Port)
	serveErr := preview.New(pc, sess).ListenAndServe(ctx)
	if err := sess.Close(); err != nil {
		return errors.Join(serveErr, err)
	}
	return serveErr
}

// discoverCmd browses for preview servers
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find preview servers on the network",
	Example: `  # Browse for 5 seconds (default)
  mainviews discover

  # Longer scan for busy networks
  mainviews discover --timeout 15`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&scanTimeout, "timeout", 5, "Scan timeout in seconds")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	fmt.Printf("Scanning for preview servers (timeout: %ds)...\n\n", scanTimeout)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(scanTimeout) * time.Second
	peers, err := scanner.Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(peers) == 0 {
		fmt.Println("No preview servers found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Ensure 'mainviews serve' is running without --no-advertise")
		fmt.Println("  - Check that multicast traffic is allowed on this network")
		fmt.Println("  - Try increasing --timeout")
		return nil
	}

	fmt.Printf("Found %d server(s):\n\n", len(peers))
	for i, p := range peers {
		fmt.Printf("%d. %s\n", i+1, p.Instance)
		fmt.Printf("   Host:    %s\n", p.Hostname)
		fmt.Printf("   Stream:  %s\n", p.WebSocketURL())
		if v := p.GetMetadata("version"); v != "" {
			fmt.Printf("   Version: %s\n", v)
		}
		fmt.Println()
	}
	return nil
}

// showCmd prints the configured screens
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured main views",
	Long: `Print the screens of the model: layout, layout options and the widget of
every zone with its options.

With --events the events are applied first, like key presses on the radio;
--frame prints the resulting display as text. Changes are only written with
--save.`,
	Example: `  # Summary
  mainviews show

  # Open the setup menu and print the display
  mainviews show --events enter --frame

  # Add a screen from the shell
  mainviews show --events long-enter,page-up,enter --save`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, yaml, json)")
	showCmd.Flags().StringVar(&showEvents, "events", "", "Comma separated events to apply first")
	showCmd.Flags().BoolVar(&showFrame, "frame", false, "Print the rendered display")
	showCmd.Flags().BoolVar(&saveChanges, "save", false, "Write changes made by --events")
}

func runShow(cmd *cobra.Command, args []string) error {
	events, err := parseEvents(showEvents)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := openSession(cfg, false)
	if err != nil {
		return err
	}

	if err := sess.Step(event.None); err != nil {
		sess.Discard()
		return err
	}
	for _, ev := range events {
		if err := sess.Step(ev); err != nil {
			sess.Discard()
			return err
		}
	}

	if showFrame {
		fmt.Println(sess.Grid().String())
	} else if err := printSummary(describe(sess), outputFormat); err != nil {
		sess.Discard()
		return err
	}

	if saveChanges {
		return sess.Close()
	}
	sess.Discard()
	return nil
}

func parseEvents(list string) ([]event.Event, error) {
	var events []event.Event
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		ev, err := event.Parse(name)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// Summary types for show output
type (
	screenSummary struct {
		Slot    int               `json:"slot" yaml:"slot"`
		Layout  string            `json:"layout" yaml:"layout"`
		Options map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
		Zones   []zoneSummary     `json:"zones" yaml:"zones"`
	}
	zoneSummary struct {
		Zone    int               `json:"zone" yaml:"zone"`
		Widget  string            `json:"widget,omitempty" yaml:"widget,omitempty"`
		Options map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
	}
	modelSummary struct {
		Model   string          `json:"model" yaml:"model"`
		Theme   string          `json:"theme" yaml:"theme"`
		Screens []screenSummary `json:"screens" yaml:"screens"`
	}
)

func describeOptions(opts []options.Option, value func(i int) options.Value) map[string]string {
	if len(opts) == 0 {
		return nil
	}
	out := make(map[string]string, len(opts))
	for i, opt := range opts {
		out[opt.Name] = options.Format(opt, value(i), nil)
	}
	return out
}

func describe(sess *app.Session) modelSummary {
	set := sess.Screens()
	theme := sess.Controller().Theme()
	summary := modelSummary{
		Model: sess.Store().Model.Name,
		Theme: theme.Factory().Name(),
	}

	for slot := 0; slot < set.Count(); slot++ {
		layout := set.Screen(slot)
		sc := screenSummary{
			Slot:    slot + 1,
			Layout:  layout.Factory().Name(),
			Options: describeOptions(layout.Factory().Options(), layout.OptionValue),
		}
		for z := 0; z < layout.ZonesCount(); z++ {
			zs := zoneSummary{Zone: z + 1}
			if w := layout.Widget(z); w != nil {
				zs.Widget = w.Factory().Name()
				zs.Options = describeOptions(w.Factory().Options(), w.OptionValue)
			}
			sc.Zones = append(sc.Zones, zs)
		}
		summary.Screens = append(summary.Screens, sc)
	}
	return summary
}

func printSummary(s modelSummary, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Print(string(data))
	case "text":
		fmt.Printf("Model: %s\nTheme: %s\n", s.Model, s.Theme)
		for _, sc := range s.Screens {
			fmt.Printf("\nMain view %d: %s\n", sc.Slot, sc.Layout)
			for _, name := range sortedKeys(sc.Options) {
				fmt.Printf("  %-12s %s\n", name, sc.Options[name])
			}
			for _, z := range sc.Zones {
				widget := z.Widget
				if widget == "" {
					widget = "(empty)"
				}
				fmt.Printf("  Zone %d: %s\n", z.Zone, widget)
				for _, name := range sortedKeys(z.Options) {
					fmt.Printf("    %-10s %s\n", name, z.Options[name])
				}
			}
		}
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
	return nil
}

// factoriesCmd lists the registered factories
var factoriesCmd = &cobra.Command{
	Use:   "factories",
	Short: "List the available widgets, layouts and themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := app.NewCatalog(widgets.Env{})
		if err != nil {
			return err
		}

		fmt.Println("Widgets:")
		for _, f := range catalog.Widgets.All() {
			fmt.Printf("  %-12s %s\n", f.Name(), optionList(f.Options()))
		}
		fmt.Println("\nLayouts:")
		for _, f := range catalog.Layouts.All() {
			fmt.Printf("  %-12s %s\n", f.Name(), optionList(f.Options()))
		}
		fmt.Println("\nThemes:")
		for _, f := range catalog.Themes.All() {
			fmt.Printf("  %-12s %s\n", f.Name(), optionList(f.Options()))
		}
		return nil
	},
}

func optionList(opts []options.Option) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = fmt.Sprintf("%s (%s)", o.Name, o.Kind)
	}
	return strings.Join(parts, ", ")
}

// initCmd writes a default configuration and records
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration file and default records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if _, err := os.Stat(cfg.Path()); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.Path())
		}
		if err := cfg.Save(); err != nil {
			return err
		}

		sess, err := openSession(cfg, false)
		if err != nil {
			return err
		}
		if err := sess.Store().Save(); err != nil {
			sess.Discard()
			return err
		}
		sess.Discard()

		fmt.Printf("Wrote %s\n", cfg.Path())
		fmt.Printf("Model records:   %s\n", cfg.ModelFile())
		fmt.Printf("General records: %s\n", cfg.GeneralFile())
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration")
}
