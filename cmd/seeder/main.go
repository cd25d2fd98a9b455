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

type seedVenue struct {
	id, name, cityID, cityName, countryID, countryName string
	lat, lng                                           float64
}

type seedPlayer struct {
	id, name, homeVenueID string
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

	venues := []seedVenue{
		{"venue-camp-nou-courts", "Camp Nou Courts", "city-barcelona", "Barcelona", "country-es", "Spain", 41.3809, 2.1228},
		{"venue-retiro-park", "Retiro Park Hoops", "city-madrid", "Madrid", "country-es", "Spain", 40.4153, -3.6844},
		{"venue-tempelhofer", "Tempelhofer Feld", "city-berlin", "Berlin", "country-de", "Germany", 52.4731, 13.4039},
	}
	for _, v := range venues {
		_, err := db.Exec(`INSERT OR IGNORE INTO venues (id, name, city_id, city_name, country_id, country_name, lat, lng)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			v.id, v.name, v.cityID, v.cityName, v.countryID, v.countryName, v.lat, v.lng)
		if err != nil {
			log.Fatalf("Failed to insert venue %s: %s", v.name, err)
		}
	}
	log.Info("Ensured venues exist.", "count", len(venues))

	sports := map[string]string{
		"sport-basketball": "Basketball",
		"sport-padel":      "Padel",
		"sport-football":   "Football",
	}
	for id, name := range sports {
		if _, err := db.Exec("INSERT OR IGNORE INTO sports (id, name) VALUES (?, ?)", id, name); err != nil {
			log.Fatalf("Failed to insert sport %s: %s", name, err)
		}
	}

	players := []seedPlayer{
		{"player-1", "Seeder Player A", venues[0].id},
		{"player-2", "Seeder Player B", venues[0].id},
		{"player-3", "Seeder Player C", venues[1].id},
		{"player-4", "Seeder Player D", venues[2].id},
	}
	for _, p := range players {
		_, err := db.Exec("INSERT OR IGNORE INTO players (id, name, home_venue_id) VALUES (?, ?, ?)", p.id, p.name, p.homeVenueID)
		if err != nil {
			log.Fatalf("Failed to insert dummy player %s: %s", p.name, err)
		}
		// One predictable session token per player, for local API testing.
		token := "token-" + p.id
		if _, err := db.Exec("INSERT OR IGNORE INTO sessions (token, player_id, created_at) VALUES (?, ?, ?)", token, p.id, time.Now().Unix()); err != nil {
			log.Fatalf("Failed to insert session for %s: %s", p.name, err)
		}
	}
	log.Info("Ensured dummy players and sessions exist.")

	challenges := [][]any{
		{"challenge-free-throws", "sport-basketball", "Free Throw 10", "easy", 50, 10},
		{"challenge-three-point", "sport-basketball", "Three Point Contest", "medium", 100, 20},
		{"challenge-wall-rally", "sport-padel", "Wall Rally 50", "hard", 150, 30},
	}
	for _, c := range challenges {
		_, err := db.Exec(`INSERT OR IGNORE INTO challenges (id, sport_id, name, difficulty, base_xp, base_rp)
			VALUES (?, ?, ?, ?, ?, ?)`, c...)
		if err != nil {
			log.Fatalf("Failed to insert challenge %v: %s", c[2], err)
		}
	}
	log.Info("Ensured challenges exist.")

	const batchSize = 100
	const numMatches = 5000

	log.Info("Preparing to insert dummy completed matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*17)

	for i := 0; i < numMatches; i++ {
		p1 := players[rand.Intn(len(players))]
		p2 := players[rand.Intn(len(players))]
		for p2.id == p1.id {
			p2 = players[rand.Intn(len(players))]
		}
		score1 := rand.Intn(21)
		score2 := rand.Intn(21)
		var winnerID any
		switch {
		case score1 > score2:
			winnerID = p1.id
		case score2 > score1:
			winnerID = p2.id
		default:
			winnerID = nil
		}
		matchTime := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, 1, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(),
			p1.homeVenueID,
			"sport-basketball",
			p1.id,
			p2.id,
			"completed",
			score1,
			score2,
			winnerID,
			100, 20, 25, 0,
			matchTime.Unix(),
			matchTime.Add(45*time.Minute).Unix(),
		)

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			stmt := fmt.Sprintf(`
				INSERT INTO matches (id, venue_id, sport_id, player1_id, player2_id, status,
					player1_score, player2_score, winner_id, winner_xp, winner_rp, loser_xp, loser_rp,
					player1_agreed, player2_agreed, created_at, completed_at)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*17)
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy matches.", "duration", duration)

	// Give the leaderboard something to rank.
	for _, p := range players {
		_, err := db.Exec(`INSERT INTO player_stats (player_id, sport_id, matches_played, matches_won, matches_lost, total_xp, total_rp, spendable_rp)
			VALUES (?, 'sport-basketball', ?, ?, ?, ?, ?, ?)
			ON CONFLICT(player_id, sport_id) DO NOTHING`,
			p.id, 20, 10, 10, rand.Intn(2000), 200, 200)
		if err != nil {
			log.Fatalf("Failed to seed stats for %s: %s", p.name, err)
		}
	}
	log.Info("Seeded player stats.")
}
