package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/lionsacademy/register-backend/internal/config"
	"github.com/lionsacademy/register-backend/internal/database"
	"github.com/lionsacademy/register-backend/internal/logger"
	"github.com/lionsacademy/register-backend/internal/repository"
	"github.com/lionsacademy/register-backend/internal/service"
	"golang.org/x/term"
)

const minPasswordLength = 6

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	authService := service.NewAuthService(cfg, repository.NewAdminRepository(pool), log)

	// ─── CLI Input ─────────────────────────────────────────────────────
	// ADMIN_PASSWORD makes the command non-interactive for provisioning.
	username := cfg.AdminUsername
	password := cfg.AdminPassword

	if password == "" {
		reader := bufio.NewReader(os.Stdin)
		fmt.Println("=== Create Admin Account ===")

		fmt.Printf("Enter Username (default %s): ", cfg.AdminUsername)
		input, _ := reader.ReadString('\n')
		if input = strings.TrimSpace(input); input != "" {
			username = input
		}

		fmt.Print("Enter Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println() // Newline after password input
		if err != nil {
			fmt.Println("Error reading password")
			os.Exit(1)
		}
		password = string(bytePassword)
	}

	if username == "" {
		fmt.Println("Error: Username is required")
		os.Exit(1)
	}
	if len(password) < minPasswordLength {
		fmt.Printf("Error: Password must be at least %d characters\n", minPasswordLength)
		os.Exit(1)
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	admin, err := authService.CreateAdmin(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			fmt.Printf("Admin '%s' already exists, nothing to do.\n", username)
			return
		}
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	fmt.Printf("\nSuccess! Admin '%s' created with ID: %d\n", admin.Username, admin.ID)
}
