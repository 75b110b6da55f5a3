package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/DigitariaWebs/cheminement-sub002/config"
	appointmentRepo "github.com/DigitariaWebs/cheminement-sub002/database/repository/appointment"
	"github.com/DigitariaWebs/cheminement-sub002/models"
	"github.com/DigitariaWebs/cheminement-sub002/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// reminderLead is how long before the session start the reminder fires.
const reminderLead = time.Hour

// ReminderClient enqueues appointment reminder tasks onto the Redis-backed queue.
type ReminderClient struct {
	client *asynq.Client
}

// NewReminderClient creates the enqueue side of the reminder queue.
func NewReminderClient() *ReminderClient {
	return &ReminderClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// EnqueueAppointmentReminder schedules a reminder ahead of the session start.
// Sessions starting sooner than the lead get an immediate reminder.
func (c *ReminderClient) EnqueueAppointmentReminder(ctx context.Context, appt *models.Appointment) error {
	startsAt, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(models.ReminderPayload{
		AppointmentID:  appt.ID,
		ProfessionalID: appt.ProfessionalID,
		ClientID:       appt.ClientID,
		Date:           appt.Date,
		Time:           appt.Time,
		Type:           appt.Type,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	fireAt := startsAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		_, err = c.client.EnqueueContext(ctx, task)
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	return err
}

func (c *ReminderClient) Close() error {
	return c.client.Close()
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc, apptRepo))

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		// Re-read the appointment; it may have been cancelled since enqueue.
		appt, err := apptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrNotFound) {
				log.Printf("[ReminderHandler] appointment %s no longer exists, dropping reminder", p.AppointmentID)
				return nil
			}
			return err
		}
		if appt.Status == models.StatusCancelled {
			log.Printf("[ReminderHandler] appointment %s cancelled, dropping reminder", p.AppointmentID)
			return nil
		}

		if err := notifSvc.SendAppointmentReminder(ctx, p); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder: %v", err)
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
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
