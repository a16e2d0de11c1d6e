package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hudumahub/config"
	bookingRepo "hudumahub/database/repository/booking"
	booking "hudumahub/services/booking"
	"hudumahub/services/notification"
	"hudumahub/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitWorker runs the async task worker in background. It processes AI
// auto-decisions on new quote requests and invoice due reminders.
func InitWorker(bookingSvc booking.BookingService, bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAIDecide, handleAIDecideTask(bookingSvc))
	mux.HandleFunc(tasks.TypeInvoiceDueReminder, handleInvoiceDueTask(bookings, notifSvc))

	go monitorRedisConnection()

	// Start async worker with retry logic.
	go func() {
		log.Println("[TaskWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TaskWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TaskWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAIDecideTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.AIDecidePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AIDecideHandler] Invalid payload: %v", err)
			return err
		}

		decision, err := bookingSvc.DecideBooking(ctx, p.BookingID)
		if err != nil {
			// Guard errors mean the booking moved on before the task ran;
			// retrying would never succeed.
			if status := ctx.Err(); status != nil {
				return status
			}
			log.Printf("[AIDecideHandler] Decision skipped for %s: %v", p.BookingID, err)
			return nil
		}

		log.Printf("[AIDecideHandler] Booking %s auto-%sed: %s", p.BookingID, decision.Action, decision.Reason)
		return nil
	}
}

func handleInvoiceDueTask(bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.InvoiceDuePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[InvoiceDueHandler] Invalid payload: %v", err)
			return err
		}

		b, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil || b == nil {
			log.Printf("[InvoiceDueHandler] Booking %s not found: %v", p.BookingID, err)
			return nil
		}
		if b.Paid() {
			return nil
		}

		data := map[string]string{"bookingId": b.ID}
		body := fmt.Sprintf("Your invoice of KES %.2f for %s is now due.", b.JobValue(), b.Provider.Name)
		if err := notifSvc.NotifyUser(ctx, b.Customer.ID, "invoice_due", "Invoice due", body, data); err != nil {
			log.Printf("[InvoiceDueHandler] Failed to notify customer: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[TaskWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
