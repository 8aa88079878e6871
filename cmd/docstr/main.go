package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MichaelHallik/python-docstring-generator/internal/config"
	"github.com/MichaelHallik/python-docstring-generator/internal/docstring"
	"github.com/MichaelHallik/python-docstring-generator/internal/server"
	"github.com/MichaelHallik/python-docstring-generator/internal/tui"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	rootCmd = &cobra.Command{
		Use:   "docstr",
		Short: "Python docstring generator",
		Long: `docstr renders Python docstring bodies in Google, reStructuredText
or NumPy style from flags, a request file, an interactive wizard or an
HTTP API.`,
	}

	configPath string
	verbose    bool

	// generate flags
	requestPath string
	summary     string
	description string
	styleName   string
	width       int
	argFlags    []string
	returnsText string
	raiseFlags  []string
	withQuotes  bool
	copyOut     bool
	outPath     string

	// serve flags
	addr string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "docstr.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	generateCmd.Flags().StringVarP(&requestPath, "file", "f", "", "Read the request from a YAML file instead of flags")
	generateCmd.Flags().StringVar(&summary, "summary", "", "One-line summary")
	generateCmd.Flags().StringVar(&description, "description", "", "Extended description, blank lines separate paragraphs")
	generateCmd.Flags().StringVar(&styleName, "style", "", "Docstring style: google, rest or numpy")
	generateCmd.Flags().IntVar(&width, "width", 0, "Maximum line length, 0 uses the style default")
	generateCmd.Flags().StringArrayVar(&argFlags, "arg", nil, "Argument as name=description, repeatable")
	generateCmd.Flags().StringVar(&returnsText, "returns", "", "Return value description")
	generateCmd.Flags().StringArrayVar(&raiseFlags, "raise", nil, "Raised exception as name=description, repeatable")
	generateCmd.Flags().BoolVar(&withQuotes, "quotes", false, "Wrap the result in triple quotes")
	generateCmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the result to the clipboard")
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the result to a file instead of stdout")

	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address, defaults to the configured server.addr")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stylesCmd)
}

// loadConfig reads the config file, falling back to defaults when absent.
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// parseEntries splits repeated "name=description" flag values into entries.
func parseEntries(pairs []string) []docstring.Entry {
	entries := make([]docstring.Entry, 0, len(pairs))
	for _, pair := range pairs {
		name, desc, _ := strings.Cut(pair, "=")
		entries = append(entries, docstring.Entry{Name: name, Description: desc})
	}
	return entries
}

// requestFromFlags assembles a request from the generate command's flags.
func requestFromFlags(cfg *config.Config) (docstring.Request, error) {
	name := styleName
	if name == "" {
		name = cfg.Defaults.Style
	}
	style, err := docstring.ParseStyle(name)
	if err != nil {
		return docstring.Request{}, err
	}
	return docstring.Request{
		Summary:       summary,
		Description:   description,
		Style:         style,
		MaxLineLength: cfg.ResolveLineLength(style, width),
		Args:          parseEntries(argFlags),
		Returns:       returnsText,
		Raises:        parseEntries(raiseFlags),
	}, nil
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a docstring from flags or a request file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		// 1. Assemble the request
		var req docstring.Request
		var err error
		if requestPath != "" {
			req, err = cfg.LoadRequest(requestPath)
			if err != nil {
				log.Fatalf("Failed to load request: %v", err)
			}
		} else {
			req, err = requestFromFlags(cfg)
			if err != nil {
				log.Fatalf("Invalid request: %v", err)
			}
		}

		// 2. Render
		out, err := docstring.Format(req)
		if err != nil {
			log.Fatalf("Failed to render docstring: %v", err)
		}

		quotes := cfg.Output.TripleQuotes
		if cmd.Flags().Changed("quotes") {
			quotes = withQuotes
		}
		if quotes {
			out = docstring.TripleQuoted(out)
		}

		// 3. Deliver
		if outPath != "" {
			if err := os.WriteFile(outPath, []byte(out+"\n"), 0o644); err != nil {
				log.Fatalf("Failed to write %s: %v", outPath, err)
			}
			fmt.Printf("✅ Docstring written to %s\n", outPath)
		} else {
			fmt.Println(out)
		}

		copyResult := cfg.Output.CopyToClipboard
		if cmd.Flags().Changed("copy") {
			copyResult = copyOut
		}
		if copyResult {
			if err := clipboard.WriteAll(out); err != nil {
				log.Printf("⚠️  Clipboard copy failed: %v", err)
			} else {
				fmt.Println("📋 Copied to clipboard.")
			}
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Build a docstring through an interactive wizard",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if err := tui.Run(cfg); err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Println("Aborted.")
				return
			}
			log.Fatalf("Wizard failed: %v", err)
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and web form",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		// 1. Initialize logger
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := zapCfg.Build()
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer func() { _ = logger.Sync() }()

		if addr == "" {
			addr = cfg.Server.Addr
		}

		// 2. Cancel the context on SIGINT/SIGTERM so the server drains
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			logger.Info("Received shutdown signal")
			cancel()
		}()

		fmt.Printf("🚀 Serving on %s\n", addr)
		if err := server.New(cfg, logger).Run(ctx, addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	},
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the supported docstring styles",
	Run: func(cmd *cobra.Command, args []string) {
		for _, style := range docstring.Styles() {
			fmt.Printf("%-8s %s (default width %d)\n", style, style.Label(), style.DefaultLineLength())
		}
		fmt.Printf("\nWidth presets: %v (minimum %d)\n", docstring.LineLengthPresets, docstring.MinLineLength)
	},
}
