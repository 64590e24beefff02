package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	bookingRepo "salonapi/database/repository/booking"
	serviceRepo "salonapi/database/repository/service"
	userRepo "salonapi/database/repository/user"
	"salonapi/models"
)

// ReminderScheduler scans tomorrow's bookings once a day and enqueues a
// reminder email for each, fired a few hours before the appointment.
type ReminderScheduler struct {
	Bookings bookingRepo.Repository
	Users    userRepo.Repository
	Services serviceRepo.Repository
	Location *time.Location

	client *asynq.Client
}

// Start launches the daily scan loop in background. The first scan runs
// immediately so a restart never misses tomorrow's batch.
func (s *ReminderScheduler) Start() {
	s.client = asynq.NewClient(queueRedisOpts())

	go func() {
		for {
			s.scanOnce()

			loc := s.Location
			if loc == nil {
				loc = time.Local
			}
			now := time.Now().In(loc)
			next := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, loc).AddDate(0, 0, 1)
			time.Sleep(time.Until(next))
		}
	}()
}

func (s *ReminderScheduler) scanOnce() {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	now := time.Now().In(loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	to := from.AddDate(0, 0, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bookings, err := s.Bookings.FindActiveStartingBetween(ctx, from, to)
	if err != nil {
		log.Printf("[ReminderScheduler] ❌ Failed to load tomorrow's bookings: %v", err)
		return
	}
	if len(bookings) == 0 {
		return
	}

	log.Printf("[ReminderScheduler] 📬 Enqueueing %d reminder(s) for %s", len(bookings), from.Format("02/01/2006"))

	for _, b := range bookings {
		client, err := s.Users.GetByID(ctx, b.ClientID)
		if err != nil || client.Email == "" {
			continue
		}
		service, err := s.Services.GetByID(ctx, b.ServiceID)
		if err != nil {
			continue
		}

		payload, err := json.Marshal(models.ReminderPayload{
			BookingID:   b.ID.Hex(),
			Email:       client.Email,
			ClientName:  client.FullName(),
			ServiceName: service.Name,
			StartsAt:    b.Start.Format(time.RFC3339),
		})
		if err != nil {
			continue
		}

		fireAt := b.Start.Add(-3 * time.Hour)
		if fireAt.Before(time.Now()) {
			fireAt = time.Now().Add(time.Minute)
		}

		task := asynq.NewTask(TypeReminderSend, payload)
		if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3)); err != nil {
			log.Printf("[ReminderScheduler] ❌ Failed to enqueue reminder for booking %s: %v", b.ID.Hex(), err)
		}
	}
}
