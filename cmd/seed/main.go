// Seeds the database with the built-in content defs so a fresh install has
// playable species, daos, titles and person types before anyone touches the
// editor. Reseeding is idempotent: ids derive from record keys, so existing
// rows are updated in place and editor-created records are left alone.
//
// Usage:
//
//	go run ./cmd/seed                          # seed content only
//	go run ./cmd/seed -admin ops               # also create an admin account
//	                                           # (password from CULTIVATOR_ADMIN_PASSWORD)
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/slopworks/cultivator/internal/auth"
	"github.com/slopworks/cultivator/internal/config"
	"github.com/slopworks/cultivator/internal/data"
	"github.com/slopworks/cultivator/internal/db"
	"github.com/slopworks/cultivator/internal/model"
)

const ConfigPath = "config/contentserver.yaml"

func main() {
	configPath := flag.String("config", ConfigPath, "content server config file")
	adminLogin := flag.String("admin", "", "create or promote an admin account with this login")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), *configPath, *adminLogin); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, adminLogin string) error {
	cfg, err := config.LoadContentServer(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := data.LoadContent(); err != nil {
		return fmt.Errorf("loading built-in content: %w", err)
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	if err := seedContent(ctx, database); err != nil {
		return err
	}

	if adminLogin != "" {
		if err := seedAdmin(ctx, database, adminLogin); err != nil {
			return err
		}
	}

	slog.Info("seed complete")
	return nil
}

func seedContent(ctx context.Context, database *db.DB) error {
	pool := database.Pool()
	speciesRepo := db.NewSpeciesRepository(pool)
	daoRepo := db.NewDaoRepository(pool)
	titleRepo := db.NewTitleRepository(pool)
	personTypeRepo := db.NewPersonTypeRepository(pool)

	for _, s := range data.AllSpecies() {
		if err := speciesRepo.Save(ctx, s); err != nil {
			return fmt.Errorf("seeding species %q: %w", s.Key, err)
		}
	}
	for _, d := range data.AllDaos() {
		if err := daoRepo.Save(ctx, d); err != nil {
			return fmt.Errorf("seeding dao %q: %w", d.Key, err)
		}
	}
	for _, t := range data.AllTitles() {
		if err := titleRepo.Save(ctx, t); err != nil {
			return fmt.Errorf("seeding title %q: %w", t.Key, err)
		}
	}
	// Person types go last so their references already exist.
	for _, p := range data.AllPersonTypes() {
		if err := personTypeRepo.Save(ctx, p); err != nil {
			return fmt.Errorf("seeding person type %q: %w", p.Key, err)
		}
	}

	slog.Info("seeded content",
		"species", len(data.AllSpecies()),
		"daos", len(data.AllDaos()),
		"titles", len(data.AllTitles()),
		"person_types", len(data.AllPersonTypes()))
	return nil
}

func seedAdmin(ctx context.Context, database *db.DB, login string) error {
	password := os.Getenv("CULTIVATOR_ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("CULTIVATOR_ADMIN_PASSWORD is not set")
	}

	existing, err := database.GetAccount(ctx, login)
	if err != nil {
		return fmt.Errorf("looking up account %q: %w", login, err)
	}
	if existing == nil {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		if err := database.CreateAccount(ctx, login, hash, "seed"); err != nil {
			return err
		}
	}
	if err := database.SetAccessLevel(ctx, login, model.AccessAdmin); err != nil {
		return fmt.Errorf("promoting account %q: %w", login, err)
	}
	slog.Info("admin account ready", "login", login)
	return nil
}
