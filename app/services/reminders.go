package services

import (
	"log"
	"time"

	"github.com/beelineschool-pixel/account/app/ledger"
)

// StartReminderScanner starts the background task scheduler. Once a day it
// scans for unpaid fee entries whose reminder date has arrived and logs a
// summary; the front desk pulls the same list through the reports API.
func StartReminderScanner(svc *ledger.Service) {
	go func() {
		log.Println("Reminder scanner started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 8:00 AM
			if now.Hour() == 8 && now.Minute() == 0 {
				due, err := svc.DueReminders(now)
				if err != nil {
					log.Printf("Error scanning fee reminders: %v", err)
					continue
				}
				if len(due) > 0 {
					log.Printf("Fee reminders due today: %d unpaid entries", len(due))
				}
			}
		}
	}()
}
