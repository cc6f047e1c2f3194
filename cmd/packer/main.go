// Command packer runs a single disk-packing scenario from a YAML config
// file: it loads the disk radius, symmetry constraint and fixed shape
// list, drives the placer until no shape fits (or, without -loop, until
// the shape list is used up), and reports (and
// optionally publishes) the final count and filled-area ratio.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/danherbriley/mamba-crystal-sorting-solution-riley/config"
	"github.com/danherbriley/mamba-crystal-sorting-solution-riley/packing"
	"github.com/danherbriley/mamba-crystal-sorting-solution-riley/telemetry"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	configFile = flag.String("config", "config.yaml", "Path to scenario configuration file")
	concurrent = flag.Bool("concurrent", false, "Evaluate rotation candidates concurrently")
	loop       = flag.Bool("loop", false, "Loop the fixed shape list once exhausted instead of stopping")
)

func main() {
	flag.Parse()
	fmt.Printf("packer version: %s\n", Version)

	scenario, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v (looked at %s)", err, *configFile)
	}
	log.Printf("Loaded scenario from %s (radius=%.2f, symmetryStep=%d, shapes=%d)",
		*configFile, scenario.Radius, scenario.SymmetryStep, len(scenario.Shapes))

	publisher, err := telemetry.NewMQTTPublisher(scenario.Telemetry)
	if err != nil {
		log.Fatalf("Failed to connect telemetry: %v", err)
	}
	var events telemetry.EventPublisher = telemetry.NoopPublisher{}
	if publisher != nil {
		events = publisher
		log.Printf("Telemetry publishing to %s/placements and %s/summary",
			scenario.Telemetry.TopicPrefix, scenario.Telemetry.TopicPrefix)
	} else {
		log.Println("Telemetry disabled: no mqttBroker configured")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	source := newFixedSource(scenario.Radius, scenario.Symmetry(), scenario.Polygons(), *loop)
	placer := packing.NewPlacer(source)
	placer.Concurrent = *concurrent
	source.onCommit = func(x, y, rotationDeg float64) {
		filled := source.FilledRatio()
		if err := events.PublishPlacement(telemetry.PlacementEvent{
			Count:       placer.Count(),
			RotationDeg: rotationDeg,
			X:           x,
			Y:           y,
			FilledRatio: filled,
		}); err != nil {
			log.Printf("telemetry: failed to publish placement: %v", err)
		}
		log.Printf("Placed shape %d at (%.3f, %.3f) rotated %.1f° (filled %.1f%%)",
			placer.Count(), x, y, rotationDeg, filled*100)
	}

	go func() {
		if err := placer.Run(); err != nil {
			log.Printf("Packing run aborted: %v", err)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-sigChan:
		fmt.Println("\nInterrupted, waiting for the run to finish (it has no mid-run cancellation)...")
		<-done
	}

	summary := telemetry.Summary{Count: placer.Count(), FilledRatio: source.FilledRatio()}
	if err := events.PublishSummary(summary); err != nil {
		log.Printf("telemetry: failed to publish summary: %v", err)
	}
	events.Disconnect()

	fmt.Printf("\nPacked %d shapes, filled %.2f%% of the disk\n", summary.Count, summary.FilledRatio*100)
}
