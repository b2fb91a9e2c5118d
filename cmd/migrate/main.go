package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"backoffice/pkg/database"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var dbURL string

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the back-office Postgres schema",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if dbURL == "" {
				dbURL = os.Getenv("DATABASE_URL")
			}
			if dbURL == "" {
				return fmt.Errorf("DATABASE_URL environment variable is not set")
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&dbURL, "database-url", "", "Postgres connection string (defaults to $DATABASE_URL)")

	root.AddCommand(
		newStepCommand("up", "Create tables and indexes", &dbURL, createTables, "All tables created successfully"),
		newStepCommand("drop", "Drop all back-office tables", &dbURL, dropTables, "All tables dropped successfully"),
		newStepCommand("seed", "Insert sample reservations and audit events", &dbURL, seedData, "Data seeded successfully"),
	)
	return root
}

func newStepCommand(use, short string, dbURL *string, step func(context.Context, *database.PostgresDB) error, done string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := database.NewPostgresDB(ctx, *dbURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := step(ctx, db); err != nil {
				return err
			}
			fmt.Println("✅ " + done)
			return nil
		},
	}
}

func createTables(ctx context.Context, db *database.PostgresDB) error {
	if err := db.Migrate(ctx); err != nil {
		return err
	}
	for _, stmt := range database.Schema {
		fmt.Printf("  Created: %s\n", database.Summary(stmt))
	}
	return nil
}

func dropTables(ctx context.Context, db *database.PostgresDB) error {
	if err := db.Drop(ctx); err != nil {
		return err
	}
	for _, table := range database.Tables {
		fmt.Printf("  Dropped: %s\n", table)
	}
	return nil
}

func seedData(ctx context.Context, db *database.PostgresDB) error {
	reservations := `
		INSERT INTO reservations (activity_name, customer_name, participants, remaining_seats, status, starts_on, created_at) VALUES
		('Kayak de mer', 'Jean Dupont', '2 adultes', '6', 'awaiting_validation', CURRENT_DATE + 3, NOW() - INTERVAL '2 hours'),
		('Randonnée des crêtes', 'Marie Curie', '2 adultes, 1 enfant', '4', 'awaiting_validation', CURRENT_DATE + 5, NOW() - INTERVAL '5 hours'),
		('Plongée découverte', 'Paul Martin', '1 adulte', '9', 'awaiting_payment', CURRENT_DATE + 1, NOW() - INTERVAL '1 hour'),
		('Kayak de mer', 'Sophie Bernard', '4 adultes', '2', 'paid', CURRENT_DATE + 2, NOW() - INTERVAL '26 hours'),
		('Balade en voilier', 'Luc Moreau', '2 adultes', '8', 'cancelled', CURRENT_DATE + 7, NOW() - INTERVAL '3 days')
	`
	if _, err := db.Pool.Exec(ctx, reservations); err != nil {
		return fmt.Errorf("failed to seed reservations: %w", err)
	}
	fmt.Println("  Seeded 5 reservations")

	events := `
		INSERT INTO audit_events (actor, action, subject, created_at) VALUES
		('Thierry', 'a ajouté un prestataire', 'Kayak Club', NOW() - INTERVAL '1 day'),
		('Thierry', 'a ajouté une activité', 'Kayak de mer', NOW() - INTERVAL '20 hours')
	`
	if _, err := db.Pool.Exec(ctx, events); err != nil {
		return fmt.Errorf("failed to seed audit events: %w", err)
	}
	fmt.Println("  Seeded 2 audit events")

	return nil
}
