package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

// TestEnv holds test environment resources
type TestEnv struct {
	DB                *sql.DB
	Redis             *goredis.Client
	PostgresContainer *postgres.PostgresContainer
	RedisContainer    *tcredis.RedisContainer
	Logger            *zap.Logger
	ctx               context.Context
}

var testEnv *TestEnv

// SetupTestEnvironment initializes the test environment with containers
func SetupTestEnvironment(t *testing.T) *TestEnv {
	if testEnv != nil {
		return testEnv
	}

	ctx := context.Background()

	// Check if using external services (CI environment)
	if os.Getenv("DATABASE_URL") != "" {
		return setupExternalServices(t, ctx)
	}

	// Use testcontainers for local testing
	return setupContainers(t, ctx)
}

func setupExternalServices(t *testing.T, ctx context.Context) *TestEnv {
	logger, _ := zap.NewDevelopment()

	// Connect to external Postgres
	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	// Connect to external Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		t.Fatalf("Failed to parse Redis URL: %v", err)
	}

	redisClient := goredis.NewClient(opt)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to connect to Redis: %v", err)
	}

	testEnv = &TestEnv{
		DB:     db,
		Redis:  redisClient,
		Logger: logger,
		ctx:    ctx,
	}

	return testEnv
}

func setupContainers(t *testing.T, ctx context.Context) *TestEnv {
	logger, _ := zap.NewDevelopment()

	// Start Postgres container
	postgresContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("sigec_test"),
		postgres.WithUsername("sigec"),
		postgres.WithPassword("sigec_test"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	pgConnStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get postgres connection string: %v", err)
	}

	// Connect to Postgres
	db, err := sql.Open("postgres", pgConnStr)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping postgres: %v", err)
	}

	// Start Redis container
	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("Failed to start redis container: %v", err)
	}

	redisConnStr, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("Failed to get redis connection string: %v", err)
	}

	opt, err := goredis.ParseURL(redisConnStr)
	if err != nil {
		t.Fatalf("Failed to parse redis connection string: %v", err)
	}

	redisClient := goredis.NewClient(opt)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to connect to redis: %v", err)
	}

	testEnv = &TestEnv{
		DB:                db,
		Redis:             redisClient,
		PostgresContainer: postgresContainer,
		RedisContainer:    redisContainer,
		Logger:            logger,
		ctx:               ctx,
	}

	return testEnv
}

// TeardownTestEnvironment cleans up the test environment
func TeardownTestEnvironment(t *testing.T) {
	if testEnv == nil {
		return
	}

	if testEnv.DB != nil {
		testEnv.DB.Close()
	}

	if testEnv.Redis != nil {
		testEnv.Redis.Close()
	}

	if testEnv.PostgresContainer != nil {
		if err := testEnv.PostgresContainer.Terminate(testEnv.ctx); err != nil {
			t.Logf("Failed to terminate postgres container: %v", err)
		}
	}

	if testEnv.RedisContainer != nil {
		if err := testEnv.RedisContainer.Terminate(testEnv.ctx); err != nil {
			t.Logf("Failed to terminate redis container: %v", err)
		}
	}

	testEnv = nil
}

// CleanDatabase truncates all tables
func CleanDatabase(t *testing.T, db *sql.DB) {
	tables := []string{
		"payment_records",
		"swap_transactions",
		"bookings",
		"user_subscriptions",
		"service_packages",
		"wallet_transactions",
		"wallets",
		"staff_shifts",
		"batteries",
		"swap_stations",
		"vehicles",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Table might not exist, that's ok
			t.Logf("Failed to truncate %s: %v", table, err)
		}
	}
}

// FlushRedis clears all Redis keys
func FlushRedis(t *testing.T, client *goredis.Client) {
	ctx := context.Background()
	if err := client.FlushAll(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush redis: %v", err)
	}
}

// SetupSchema creates the database schema for testing
func SetupSchema(t *testing.T, db *sql.DB) {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		phone VARCHAR(50),
		password VARCHAR(255) NOT NULL,
		role VARCHAR(50) DEFAULT 'driver',
		status VARCHAR(50) DEFAULT 'Active',
		default_station_id VARCHAR(36),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS vehicles (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) REFERENCES users(id),
		plate_number VARCHAR(20) UNIQUE NOT NULL,
		model VARCHAR(255),
		battery_type VARCHAR(100),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS swap_stations (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		address TEXT,
		city VARCHAR(255),
		latitude DECIMAL(10, 8),
		longitude DECIMAL(11, 8),
		status VARCHAR(50) DEFAULT 'Active',
		capacity INTEGER DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS batteries (
		id VARCHAR(36) PRIMARY KEY,
		station_id VARCHAR(36) REFERENCES swap_stations(id),
		serial_number VARCHAR(100) UNIQUE,
		model VARCHAR(255),
		status VARCHAR(50) DEFAULT 'Available',
		charge_level INTEGER DEFAULT 100,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS staff_shifts (
		id VARCHAR(36) PRIMARY KEY,
		staff_id VARCHAR(36) REFERENCES users(id),
		station_id VARCHAR(36) REFERENCES swap_stations(id),
		shift_date VARCHAR(10) NOT NULL,
		shift_start TIMESTAMP NOT NULL,
		shift_end TIMESTAMP NOT NULL,
		status VARCHAR(50) DEFAULT 'scheduled',
		notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS wallets (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) UNIQUE REFERENCES users(id),
		balance BIGINT DEFAULT 0,
		currency VARCHAR(10) DEFAULT 'BRL',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS wallet_transactions (
		id VARCHAR(36) PRIMARY KEY,
		wallet_id VARCHAR(36) REFERENCES wallets(id),
		user_id VARCHAR(36) REFERENCES users(id),
		type VARCHAR(20),
		amount BIGINT,
		balance BIGINT,
		description TEXT,
		reference_id VARCHAR(36),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS service_packages (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price BIGINT NOT NULL,
		currency VARCHAR(10) DEFAULT 'BRL',
		duration_days INTEGER NOT NULL,
		swap_limit INTEGER,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS user_subscriptions (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) REFERENCES users(id),
		package_id VARCHAR(36) REFERENCES service_packages(id),
		start_date TIMESTAMP NOT NULL,
		end_date TIMESTAMP NOT NULL,
		remaining_swaps INTEGER,
		auto_renew BOOLEAN DEFAULT FALSE,
		status VARCHAR(50) DEFAULT 'active',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) REFERENCES users(id),
		vehicle_id VARCHAR(36) REFERENCES vehicles(id),
		station_id VARCHAR(36) REFERENCES swap_stations(id),
		scheduled_at TIMESTAMP NOT NULL,
		status VARCHAR(50) DEFAULT 'pending',
		checked_in_at TIMESTAMP,
		checked_in_by_staff_id VARCHAR(36),
		notes TEXT,
		cancellation_reason TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS swap_transactions (
		id VARCHAR(36) PRIMARY KEY,
		booking_id VARCHAR(36) UNIQUE REFERENCES bookings(id),
		user_id VARCHAR(36) REFERENCES users(id),
		station_id VARCHAR(36) REFERENCES swap_stations(id),
		staff_id VARCHAR(36) REFERENCES users(id),
		old_battery_id VARCHAR(36),
		new_battery_id VARCHAR(36),
		swap_started_at TIMESTAMP NOT NULL,
		swap_completed_at TIMESTAMP NOT NULL,
		swap_duration_minutes INTEGER NOT NULL,
		amount BIGINT DEFAULT 0,
		currency VARCHAR(10) DEFAULT 'BRL',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS payment_records (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) REFERENCES users(id),
		subscription_id VARCHAR(36),
		transaction_id VARCHAR(36),
		method VARCHAR(50),
		status VARCHAR(50) DEFAULT 'pending',
		amount BIGINT,
		currency VARCHAR(10) DEFAULT 'BRL',
		description TEXT,
		paid_at TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_staff_shifts_staff_id ON staff_shifts(staff_id);
	CREATE INDEX IF NOT EXISTS idx_staff_shifts_station_id ON staff_shifts(station_id);
	CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id);
	CREATE INDEX IF NOT EXISTS idx_bookings_station_id ON bookings(station_id);
	CREATE INDEX IF NOT EXISTS idx_user_subscriptions_user_id ON user_subscriptions(user_id);
	CREATE INDEX IF NOT EXISTS idx_wallet_transactions_wallet_id ON wallet_transactions(wallet_id);
	CREATE INDEX IF NOT EXISTS idx_payment_records_user_id ON payment_records(user_id);
	`

	_, err := db.Exec(schema)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
}
