package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"gymrank/infrastructure/postgres"
	"gymrank/pkg/config"
)

// Maintenance tool: wipes every rankings table so the next server start
// reseeds from scratch. Asks for confirmation unless -y is passed.
func main() {
	skipConfirm := len(os.Args) > 1 && os.Args[1] == "-y"

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	fmt.Println("============================================")
	fmt.Println("  gymrank - Clear All Data")
	fmt.Println("============================================")
	fmt.Printf("Database: %s@%s:%s/%s\n\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if !skipConfirm {
		fmt.Print("This deletes every ranking, category and setting. Continue? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "y" {
			fmt.Println("Aborted.")
			return
		}
	}

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatalf("connect: %v", err)
	}

	// Order matters for the foreign key.
	tables := []string{"rankings", "categories", "settings"}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			fmt.Printf("  Warning: could not clear %s: %v\n", table, err)
			continue
		}
		fmt.Printf("  Cleared %s\n", table)
	}

	fmt.Println()
	fmt.Println("Done. The server reseeds defaults on next start.")
}
