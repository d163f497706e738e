package main

import (
	"flag"
	"log"

	"scholarstream/internal/app/bootstrap"
)

// Schema migration entrypoint: `migrate -direction up` or
// `migrate -direction down -steps 1`.
func main() {
	direction := flag.String("direction", "up", "up or down")
	steps := flag.Int("steps", 1, "migrations to roll back when direction is down")
	flag.Parse()

	if err := bootstrap.RunMigrations(*direction, *steps); err != nil {
		log.Fatalf("migrate %s failed: %v", *direction, err)
	}
	log.Printf("migrate %s done", *direction)
}
