package websocket

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"reports-backend/internal/service"
)

// Broadcaster pushes a fresh monthly sales snapshot to connected dashboards
// on a fixed interval. Each tick recomputes from source data; nothing is
// cached between ticks.
type Broadcaster struct {
	hub      *Hub
	reports  service.ReportService
	interval time.Duration
}

func NewBroadcaster(hub *Hub, reports service.ReportService, interval time.Duration) *Broadcaster {
	return &Broadcaster{hub: hub, reports: reports, interval: interval}
}

// Run loops until ctx is cancelled. Ticks with no connected dashboards skip
// the query entirely.
func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if b.hub.ClientCount() == 0 {
				continue
			}

			rows, err := b.reports.GetMonthlySales(ctx)
			if err != nil {
				log.Printf("report broadcast skipped: %v", err)
				continue
			}

			payload, err := json.Marshal(map[string]interface{}{
				"type":   "monthly_sales",
				"report": rows,
			})
			if err != nil {
				log.Printf("report broadcast marshal failed: %v", err)
				continue
			}

			b.hub.Broadcast <- payload
		}
	}
}
