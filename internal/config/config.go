package config

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	// Transfer policy. Operator-configurable, never caller-controlled.
	TransferMinAmount  decimal.Decimal
	TransferMaxAmount  decimal.Decimal
	TransferDailyLimit decimal.Decimal
	TransferMaxRetries int
	CommitTimeout      time.Duration
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		TransferMinAmount:  decimal.RequireFromString("0.01"),
		TransferMaxAmount:  decimal.RequireFromString("10000.00"),
		TransferDailyLimit: decimal.RequireFromString("50000.00"),
		TransferMaxRetries: 3,
		CommitTimeout:      5 * time.Second,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if err := overrideDecimal(&env.TransferMinAmount, "TRANSFER_MIN_AMOUNT"); err != nil {
		return nil, err
	}
	if err := overrideDecimal(&env.TransferMaxAmount, "TRANSFER_MAX_AMOUNT"); err != nil {
		return nil, err
	}
	if err := overrideDecimal(&env.TransferDailyLimit, "TRANSFER_DAILY_LIMIT"); err != nil {
		return nil, err
	}

	if raw := os.Getenv("TRANSFER_MAX_RETRIES"); len(raw) != 0 {
		retries, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		env.TransferMaxRetries = retries
	}

	if raw := os.Getenv("TRANSFER_COMMIT_TIMEOUT_MS"); len(raw) != 0 {
		millis, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		env.CommitTimeout = time.Duration(millis) * time.Millisecond
	}

	return &env, nil
}

func overrideDecimal(target *decimal.Decimal, envName string) error {
	raw := os.Getenv(envName)
	if len(raw) == 0 {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return err
	}
	*target = value
	return nil
}
