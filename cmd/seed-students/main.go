package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lionsacademy/register-backend/internal/config"
	"github.com/lionsacademy/register-backend/internal/database"
	"github.com/lionsacademy/register-backend/internal/logger"
	"github.com/lionsacademy/register-backend/internal/model"
	"github.com/lionsacademy/register-backend/internal/repository"
	"github.com/lionsacademy/register-backend/internal/service"
)

// sampleStudents is the roster a fresh install starts with.
var sampleStudents = []model.CreateStudentRequest{
	{Name: "John Smith", ClassCategory: model.CategoryAdults},
	{Name: "Sarah Johnson", ClassCategory: model.CategoryYouths},
	{Name: "Michael Chen", ClassCategory: model.CategoryJuniors},
	{Name: "Emma Williams", ClassCategory: model.CategoryLittleLions},
	{Name: "David Brown", ClassCategory: model.CategoryAdults},
	{Name: "Olivia Davis", ClassCategory: model.CategoryJuniors},
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid TIMEZONE")
	}
	studentService := service.NewStudentService(repository.NewStudentRepository(pool), service.NewClock(loc), log)

	existing, err := studentService.List(ctx, model.StudentFilter{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list students")
	}
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s.Name] = true
	}

	fmt.Printf("=== Seeding %d Students ===\n", len(sampleStudents))

	created := 0
	for _, req := range sampleStudents {
		if seen[req.Name] {
			fmt.Printf("Skipping %s (already exists)\n", req.Name)
			continue
		}
		s, err := studentService.Create(ctx, req)
		if err != nil {
			fmt.Printf("Error creating student %s: %v\n", req.Name, err)
			continue
		}
		created++
		fmt.Printf("Created %s (%s) with ID: %d\n", s.Name, s.ClassCategory, s.ID)
	}

	fmt.Printf("\nSeed completed! Added %d/%d students.\n", created, len(sampleStudents))
}
