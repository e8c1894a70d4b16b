package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"homey/models"
	"homey/store"
	"homey/utils"
)

// StartReminderJobs starts the scheduler for booking reminders. It runs
// every minute looking for confirmed bookings starting in the next hour.
func StartReminderJobs(st *store.Store) *cron.Cron {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	_, err := c.AddFunc("* * * * *", func() { sendBookingReminders(st) })
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
	return c
}

// sendBookingReminders checks for upcoming bookings and sends reminders
func sendBookingReminders(st *store.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bookings, err := st.Bookings.Find(ctx, store.Document{"status": models.StatusConfirmed}, 0)
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	for _, booking := range bookings {
		at, ok := scheduleTime(booking)
		if !ok || at.Before(startWindow) || at.After(endWindow) {
			continue
		}
		if err := sendReminderEmail(booking, at); err != nil {
			log.Printf("Failed to send reminder for booking %v: %v", booking["_id"], err)
			continue
		}
		log.Printf("Sent reminder for booking %v to %v", booking["_id"], booking["userEmail"])
	}
}

// scheduleTime reads the optional scheduleTime field. Bookings are
// schemaless documents; anything absent or unparseable means skip, not
// error.
func scheduleTime(booking store.Document) (time.Time, bool) {
	raw, ok := booking["scheduleTime"].(string)
	if !ok {
		return time.Time{}, false
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking store.Document, at time.Time) error {
	to, _ := booking["userEmail"].(string)
	if to == "" {
		return nil
	}

	serviceName, _ := booking["serviceName"].(string)
	providerEmail, _ := booking["providerEmail"].(string)

	subject := "Reminder: Upcoming Booking"
	if serviceName != "" {
		subject = fmt.Sprintf("Reminder: Upcoming Booking - %s", serviceName)
	}
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p>This is a reminder for your upcoming booking scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, contact your provider as soon as possible.</p>
		<p>Best regards,</p>
		<p>The Homey Team</p>
	`, serviceName, providerEmail, at.Format("2006-01-02 15:04:05"))

	return utils.SendEmail(to, subject, body)
}
