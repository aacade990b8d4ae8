package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-tracker/internal/config"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/service"
	"todo-tracker/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	locationRepo := repository.NewLocationRepository(db)
	priorityRepo := repository.NewPriorityRepository(db)
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	categorySvc := service.NewCategoryService(categoryRepo)
	userSvc := service.NewUserService(userRepo)
	taskSvc := service.NewTaskService(locationRepo, priorityRepo, userRepo, categoryRepo, taskRepo)
	reminderSvc := service.NewReminderService(taskRepo)

	scheduler := service.NewSchedulerService(time.Local)
	if cfg.ReminderInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.ReminderInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			summary, err := reminderSvc.DailySummary(jobCtx, time.Now())
			if err != nil {
				log.Printf("report: %v", err)
				return
			}
			log.Println(summary)
		}); err != nil {
			log.Fatalf("schedule reports: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	menu := ui.NewMenu(taskSvc, categorySvc, userSvc, os.Stdin, os.Stdout)

	log.Println("Todo tracker started.")
	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("menu stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
