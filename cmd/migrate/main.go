package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
)

// Applies every .sql file under migrations/ in lexical order to a Cloud
// Spanner database. This creates the cart_snapshots, orders and
// outbox_events tables; typically run once against the emulator.
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := os.Getenv("SPANNER_DATABASE")
	if db == "" {
		log.Fatal("SPANNER_DATABASE is required (e.g. projects/test-project/instances/emulator-instance/databases/test-db)")
	}

	stmts, err := collectDDL("migrations")
	if err != nil {
		log.Fatalf("collect DDL: %v", err)
	}
	if len(stmts) == 0 {
		log.Fatal("no DDL statements found under migrations/")
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		log.Fatalf("database admin client: %v", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		log.Fatalf("UpdateDatabaseDdl: %v", err)
	}
	if err := op.Wait(ctx); err != nil {
		log.Fatalf("UpdateDatabaseDdl wait: %v", err)
	}

	fmt.Printf("Applied %d DDL statements to %s\n", len(stmts), db)
}

func collectDDL(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var stmts []string
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		sql := strings.ReplaceAll(string(b), "\r\n", "\n")
		for _, part := range strings.Split(sql, ";") {
			if stmt := strings.TrimSpace(part); stmt != "" {
				stmts = append(stmts, stmt)
			}
		}
	}
	return stmts, nil
}
