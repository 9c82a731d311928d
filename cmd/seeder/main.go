package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	roster := []string{"서준", "하윤", "지호", "수아", "도윤", "예린"}
	for _, name := range roster {
		_, err := db.Exec("INSERT OR IGNORE INTO users (id, name, created_at) VALUES (?, ?, ?)",
			uuid.NewString(), name, time.Now().Unix())
		if err != nil {
			log.Fatalf("Failed to insert roster name %s: %s", name, err)
		}
	}
	log.Info("Ensured roster names exist.", "count", len(roster))

	const batchSize = 100
	const numTennisRecords = 5000

	log.Info("Preparing to insert dummy tennis records...", "total", numTennisRecords, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*8) // 8 columns per record

	for i := 0; i < numTennisRecords; i++ {
		matchTime := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)
		players := rand.Perm(len(roster))[:4]

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(),
			roster[players[0]],
			roster[players[1]],
			roster[players[2]],
			roster[players[3]],
			rand.Intn(7),
			rand.Intn(7),
			matchTime.Unix(),
		)

		if (i+1)%batchSize == 0 || (i+1) == numTennisRecords {
			stmt := fmt.Sprintf(`
				INSERT INTO tennis_records (id, player1, player2, player3, player4, score_left, score_right, created_at)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*8)
			log.Info("Inserted batch", "completed", i+1, "total", numTennisRecords)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	const numBilliardsDays = 90

	log.Info("Preparing to insert dummy billiards sessions...", "days", numBilliardsDays)

	tx, err = db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	for day := 0; day < numBilliardsDays; day++ {
		sessionTime := time.Now().AddDate(0, 0, -day)
		for _, name := range roster {
			base := float64(10 + rand.Intn(4)*10)
			minus := float64(rand.Intn(10))
			plus := float64(rand.Intn(3))
			denominator := base/10 + plus
			percentage := 0.0
			if denominator > 0 {
				percentage = minus / denominator * 100
			}

			_, err := tx.Exec(`
				INSERT INTO billiards_records (id, player_name, base_dama, minus_dama, plus_dama, percentage, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				uuid.NewString(), name, base, minus, plus, percentage, sessionTime.Unix())
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to insert billiards row for %s: %s", name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy records.", "duration", duration)
}
