package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wanjala-dev/duetrack/internal/api"
	"github.com/wanjala-dev/duetrack/internal/config"
	"github.com/wanjala-dev/duetrack/internal/gateway"
	"github.com/wanjala-dev/duetrack/internal/importer"
	"github.com/wanjala-dev/duetrack/internal/store"
	"github.com/wanjala-dev/duetrack/internal/ui"
)

func main() {
	path, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving config path: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	loc, err := cfg.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading timezone %q: %v\n", cfg.Timezone, err)
		os.Exit(1)
	}

	client, err := api.New(cfg.APIBaseURL, loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating API client: %v\n", err)
		os.Exit(1)
	}

	// The cache is best-effort: without it the app still works, it just
	// cannot show anything when the server is unreachable.
	cache, err := store.OpenCache(cfg.CachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: snapshot cache unavailable: %v\n", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	st := store.New(client, cache)
	gw := gateway.New(client, st)

	if len(os.Args) > 2 && os.Args[1] == "verify" {
		if err := client.VerifyEmail(context.Background(), os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error verifying email: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Email verified. You can now log in.")
		return
	}

	if len(os.Args) > 2 && os.Args[1] == "import" {
		if os.Args[2] == "--template" {
			fmt.Print(importer.Template())
			return
		}
		if err := runImport(client, gw, loc, os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(ui.NewModel(client, st, gw, loc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// runImport logs in with DUETRACK_EMAIL / DUETRACK_PASSWORD and creates every
// assignment in the given YAML file through the normal validation path.
func runImport(client *api.Client, gw *gateway.Gateway, loc *time.Location, file string) error {
	email := os.Getenv("DUETRACK_EMAIL")
	password := os.Getenv("DUETRACK_PASSWORD")
	if email == "" || password == "" {
		return fmt.Errorf("set DUETRACK_EMAIL and DUETRACK_PASSWORD to import")
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	ctx := context.Background()
	if _, err := client.Login(ctx, email, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	n, err := importer.Import(ctx, gw, string(data), loc)
	if n > 0 {
		fmt.Printf("Imported %d assignment(s)\n", n)
	}
	return err
}
