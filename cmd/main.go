package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"haat/browse/internal/app"
	"haat/browse/internal/catalog"
	"haat/browse/internal/common"
	"haat/browse/internal/config"
	"haat/browse/internal/watcher"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// A TUI app spends most of its time waiting for I/O (HTTP fetches,
	// fsnotify, terminal input). 2 OS threads is plenty for the actual Go
	// work (render + message dispatch). If the user explicitly sets
	// GOMAXPROCS, we respect that.
	if os.Getenv("GOMAXPROCS") == "" {
		maxProcs := 2
		if n := runtime.NumCPU(); n < maxProcs {
			maxProcs = n
		}
		runtime.GOMAXPROCS(maxProcs)
	}

	// Limit the GC target to 50 MB. The catalog and render buffers should
	// rarely exceed 30 MB resident; this triggers the GC earlier and keeps
	// RSS low.
	debug.SetMemoryLimit(50 * 1024 * 1024) // 50 MiB
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "haat",
		Short: "A TUI for browsing Haat delivery markets",
		Long: `haat is a keyboard-first, terminal-based browser for Haat delivery
market catalogs.

It opens on the market's category grid; selecting a category drops into a
scroll-synced detail view where category and subcategory tab strips follow
the list as you scroll, and tapping a tab scrolls the list to its section.`,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"haat %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())

	rootCmd.Flags().IntP("market", "m", 0, "Market id to open (overrides config)")
	rootCmd.Flags().IntP("category", "c", -1, "Category id to open straight into")
	rootCmd.Flags().Bool("offline", false, "Skip the network, use the bundled catalog")
	rootCmd.Flags().String("catalog", "", "Path to a local catalog JSON (hot-reloaded on change)")

	return rootCmd
}

// buildVersionCmd creates the `haat version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			if jsonOutput {
				info := map[string]string{
					"version": version,
					"commit":  commit,
					"date":    date,
					"go":      runtime.Version(),
					"os":      runtime.GOOS,
					"arch":    runtime.GOARCH,
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Printf("haat %s\n", version)
			fmt.Printf("  commit:  %s\n", commit)
			fmt.Printf("  built:   %s\n", date)
			fmt.Printf("  go:      %s\n", runtime.Version())
			fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `haat completion` subcommand for shell completions.
func buildCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for haat.

Examples:
  # Bash (add to ~/.bashrc)
  haat completion bash > /etc/bash_completion.d/haat

  # Zsh (add to ~/.zshrc before compinit)
  haat completion zsh > "${fpath[1]}/_haat"

  # Fish
  haat completion fish > ~/.config/fish/completions/haat.fish

  # PowerShell
  haat completion powershell > haat.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}

	return cmd
}

// setupLogging sends logrus output to a state-dir file. Writing to stderr
// would corrupt the TUI, so on any failure logging is discarded instead.
func setupLogging() func() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
	if os.Getenv("HAAT_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	dir := config.StateDirectory()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "haat.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }
}

func runApp(cmd *cobra.Command, _ []string) error {
	closeLog := setupLogging()
	defer closeLog()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if id, _ := cmd.Flags().GetInt("market"); id > 0 {
		cfg.MarketID = id
	}
	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		cfg.Offline = true
	}
	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		cfg.CatalogFile = path
	}
	deepLink, _ := cmd.Flags().GetInt("category")

	// The offline service doubles as the fallback data set when the live
	// fetch fails, so it is always constructed.
	var offline *catalog.Offline
	if cfg.CatalogFile != "" {
		offline, err = catalog.NewOfflineFromFile(cfg.CatalogFile)
		if err != nil {
			return fmt.Errorf("loading catalog file: %w", err)
		}
	} else {
		offline = catalog.NewOffline()
	}

	var svc catalog.Service
	var closer interface{ Close() error }
	if cfg.Offline {
		svc = offline
		if cfg.MarketID == 0 {
			cfg.MarketID = offline.MarketID()
		}
	} else {
		client := catalog.NewClient(cfg.APIBaseURL, cfg.APITimeout)
		closer = client
		// Short TTL cache so screen switches don't re-fetch the catalog.
		svc = catalog.NewCached(client, cfg.CacheTTL)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	model := app.New(svc, offline, cfg, deepLink)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Hot-reload the local catalog file on change.
	if cfg.CatalogFile != "" {
		if watchCh, stop, watchErr := watcher.Watch(cfg.CatalogFile, 500*time.Millisecond); watchErr == nil {
			defer stop()
			go func() {
				for range watchCh {
					p.Send(common.RefreshMsg{})
				}
			}()
		} else {
			log.WithError(watchErr).Warn("catalog watcher failed to start")
		}
	}

	_, err = p.Run()
	return err
}
