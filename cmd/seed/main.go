package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"proposal-ai-subscription/internal/config"
	"proposal-ai-subscription/internal/domain/model"
	pg "proposal-ai-subscription/internal/infra/db/postgres"
)

// Seeds a demo subscription row so the dashboard and quota paths can be
// exercised without going through a live PayPal checkout.
func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	userID := flag.String("user", "demo-user", "user id to seed")
	planID := flag.String("plan", "pro", "plan id to activate")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, false)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 4)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	catalog := model.NewCatalog(cfg.Plans)
	pid, err := model.ParsePlanID(*planID)
	if err != nil {
		log.Fatalf("unknown plan %q", *planID)
	}
	plan, err := catalog.FindByID(pid)
	if err != nil {
		log.Fatalf("plan %q not in catalog", *planID)
	}

	sub, err := model.NewActiveSubscription(*userID, plan.ID, plan.Name, "SEED-"+time.Now().UTC().Format("20060102150405"))
	if err != nil {
		log.Fatalf("build subscription: %v", err)
	}

	repo := pg.NewPostgresSubscriptionRepo(pool)
	if err := repo.Upsert(ctx, sub); err != nil {
		log.Fatalf("upsert subscription: %v", err)
	}

	fmt.Printf("seeded %s subscription for user %s (ref %s)\n", plan.Name, *userID, sub.ProviderOrderRef)
}
