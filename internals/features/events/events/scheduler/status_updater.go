package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	eventService "volunteerhub_backend/internals/features/events/events/service"
)

// StartEventStatusScheduler periodically flips upcoming events whose day
// has passed to completed, so listings stay honest without waiting for an
// administrative edit.
func StartEventStatusScheduler(svc *eventService.EventService) {
	go func() {
		intervalMinutes := 60
		if val := os.Getenv("EVENT_STATUS_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMinutes = parsed
			}
		}

		for {
			closed, err := svc.CloseElapsedEvents(time.Now())
			if err != nil {
				log.Printf("[STATUS SYNC ERROR] %v", err)
			} else if closed > 0 {
				log.Printf("[STATUS SYNC] %d event(s) marked completed", closed)
			}

			time.Sleep(time.Duration(intervalMinutes) * time.Minute)
		}
	}()
}
