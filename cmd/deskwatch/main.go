package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/karimjl/DCB-AppointmentService/internal/dashboard"
	"github.com/karimjl/DCB-AppointmentService/internal/integrations/appointments"
	"github.com/karimjl/DCB-AppointmentService/pkg/logger"
)

// deskwatch polls the appointment service and prints the reception dashboard
// to the terminal. It is the same aggregation loop the desk UI runs.
func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8080", "appointment service base URL")
		interval = flag.Duration("interval", dashboard.DefaultRefreshInterval, "refresh interval")
		logLevel = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	log, err := logger.New("", *logLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	gateway := appointments.NewClient(*baseURL)

	aggregator := dashboard.NewAggregator(
		gateway,
		dashboard.RealTimeProvider{},
		log,
		dashboard.WithRefreshInterval(*interval),
		dashboard.WithOnSnapshot(printSnapshot),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	aggregator.Run(ctx)
}

func printSnapshot(s *dashboard.Snapshot) {
	fmt.Printf("\n=== %s | %d rendez-vous aujourd'hui ===\n",
		s.FetchedAt.Format("15:04:05"), len(s.Rows))

	for _, row := range s.Rows {
		marker := " "
		switch row.Urgency {
		case dashboard.UrgencyPastDue:
			marker = "!"
		case dashboard.UrgencyImminent:
			marker = "*"
		}

		fmt.Printf("%s %s  #%-4d patient=%-4d %-12s %-10s\n",
			marker,
			row.StartsAt.Format("15:04"),
			row.ID,
			row.PatientID,
			row.Type,
			row.Status,
		)
	}

	fmt.Print("statuts:")
	for status, count := range s.CountsByStatus {
		fmt.Printf(" %s=%d", status, count)
	}
	fmt.Println()
}
