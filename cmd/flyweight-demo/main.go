// Command flyweight-demo shows three cars sharing two model flyweights.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"flyweight-registry/internal/car"
	"flyweight-registry/internal/flyweight"
	"flyweight-registry/pkg/logging/logging"
)

type sighting struct {
	model, brand, engine string
	reg                  car.Registration
}

var sightings = []sighting{
	{"Model S", "Tesla", "Electric", car.Registration{Number: "TS1234", Owner: "Alice"}},
	{"Model S", "Tesla", "Electric", car.Registration{Number: "TS5678", Owner: "Bob"}},
	{"Mustang", "Ford", "Gasoline", car.Registration{Number: "FD1234", Owner: "Charlie"}},
}

func main() {
	logger, err := logging.NewLoggerWith(logging.Options{Development: true, Level: os.Getenv("LOG_LEVEL")})
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	registry := car.NewRegistry(flyweight.WithObserver(car.NewLoggingObserver(logger)))
	if err := run(os.Stdout, registry); err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
}

func run(w io.Writer, registry *car.Registry) error {
	for _, s := range sightings {
		m, _ := registry.Acquire(s.model, s.brand, s.engine)
		if err := m.Display(w, s.reg); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Distinct car flyweights: %d\n", registry.Len())
	return err
}
