// cmd/seed - wipes the octofit collections and repopulates them with
// superhero sample data, then recomputes leaderboard ranks from summed
// calories. One-off tool; the API never depends on it.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"octofit/config"
	"octofit/database"
	"octofit/models"
)

type hero struct {
	Name         string
	Email        string
	FitnessLevel models.FitnessLevel
	Avatar       string
}

var marvelHeroes = []hero{
	{"Iron Man", "tony.stark@marvel.com", models.FitnessAdvanced, "https://example.com/ironman.jpg"},
	{"Captain America", "steve.rogers@marvel.com", models.FitnessAdvanced, "https://example.com/cap.jpg"},
	{"Thor", "thor.odinson@marvel.com", models.FitnessAdvanced, "https://example.com/thor.jpg"},
	{"Black Widow", "natasha.romanoff@marvel.com", models.FitnessAdvanced, "https://example.com/blackwidow.jpg"},
	{"Hulk", "bruce.banner@marvel.com", models.FitnessIntermediate, "https://example.com/hulk.jpg"},
	{"Spider-Man", "peter.parker@marvel.com", models.FitnessIntermediate, "https://example.com/spiderman.jpg"},
}

var dcHeroes = []hero{
	{"Batman", "bruce.wayne@dc.com", models.FitnessAdvanced, "https://example.com/batman.jpg"},
	{"Superman", "clark.kent@dc.com", models.FitnessAdvanced, "https://example.com/superman.jpg"},
	{"Wonder Woman", "diana.prince@dc.com", models.FitnessAdvanced, "https://example.com/wonderwoman.jpg"},
	{"Flash", "barry.allen@dc.com", models.FitnessAdvanced, "https://example.com/flash.jpg"},
	{"Aquaman", "arthur.curry@dc.com", models.FitnessIntermediate, "https://example.com/aquaman.jpg"},
	{"Green Lantern", "hal.jordan@dc.com", models.FitnessIntermediate, "https://example.com/greenlantern.jpg"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	db := database.GetDB()

	log.Println("Deleting existing data...")
	for _, table := range []string{"activities", "leaderboard", "teams", "users", "workouts"} {
		db.Exec("DELETE FROM " + table)
	}

	marvelUsers := createUsers(db, marvelHeroes, "marvel123")
	dcUsers := createUsers(db, dcHeroes, "dc123")
	log.Printf("✓ Created %d users", len(marvelUsers)+len(dcUsers))

	teamMarvel := createTeam(db, "Team Marvel",
		"Earth's Mightiest Heroes united in fitness", marvelUsers)
	teamDC := createTeam(db, "Team DC",
		"Justice League - Fighting for fitness and justice", dcUsers)
	log.Println("✓ Created Team Marvel and Team DC")

	allUsers := append(append([]models.User{}, marvelUsers...), dcUsers...)
	activityCount := createActivities(db, allUsers)
	log.Printf("✓ Created %d activities", activityCount)

	entries := buildLeaderboard(db, marvelUsers, teamMarvel)
	entries = append(entries, buildLeaderboard(db, dcUsers, teamDC)...)
	rankAndStore(db, entries)
	log.Printf("✓ Created %d leaderboard entries", len(entries))

	createWorkouts(db)

	log.Println("=== Database Population Complete ===")
}

func createUsers(db *gorm.DB, heroes []hero, password string) []models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	users := make([]models.User, 0, len(heroes))
	for _, h := range heroes {
		user := models.User{
			Name:         h.Name,
			Email:        h.Email,
			PasswordHash: string(hash),
			Avatar:       h.Avatar,
			FitnessLevel: h.FitnessLevel,
			CreatedAt:    time.Now().UTC(),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", h.Name, err)
		}
		users = append(users, user)
	}
	return users
}

func createTeam(db *gorm.DB, name, description string, users []models.User) models.Team {
	members := make(models.MemberList, 0, len(users))
	for _, u := range users {
		members = append(members, models.UserRef(u.Name))
	}

	team := models.Team{
		Name:        name,
		Description: description,
		Captain:     members[0],
		Members:     members,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.Create(&team).Error; err != nil {
		log.Fatalf("Failed to create team %s: %v", name, err)
	}
	return team
}

func createActivities(db *gorm.DB, users []models.User) int {
	types := models.ActivityTypes()
	count := 0

	for _, user := range users {
		// 5-10 activities per user
		for i := 0; i < 5+rand.Intn(6); i++ {
			activityType := types[rand.Intn(len(types)-1)] // skip "other"
			duration := 20 + rand.Intn(101)

			var distance *float64
			switch activityType {
			case models.ActivityRunning, models.ActivityCycling, models.ActivitySwimming:
				d := 2 + rand.Float64()*23
				distance = &d
			}

			activity := models.Activity{
				User:           models.UserRef(user.Name),
				ActivityType:   activityType,
				Duration:       duration,
				Distance:       distance,
				CaloriesBurned: duration * (5 + rand.Intn(8)),
				Date:           time.Now().UTC().AddDate(0, 0, -rand.Intn(31)),
				Notes:          fmt.Sprintf("%s completed %s session", user.Name, activityType),
				CreatedAt:      time.Now().UTC(),
			}
			if err := db.Create(&activity).Error; err != nil {
				log.Fatalf("Failed to create activity: %v", err)
			}
			count++
		}
	}
	return count
}

// buildLeaderboard sums each user's burned calories into total points. Rank
// assignment is the batch step below, not a service concern.
func buildLeaderboard(db *gorm.DB, users []models.User, team models.Team) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		var totalPoints int64
		db.Model(&models.Activity{}).
			Where(`"user" = ?`, user.Name).
			Select("COALESCE(SUM(calories_burned), 0)").
			Scan(&totalPoints)

		entries = append(entries, models.LeaderboardEntry{
			User:        models.UserRef(user.Name),
			Team:        models.TeamRef(team.Name),
			TotalPoints: int(totalPoints),
		})
	}
	return entries
}

func rankAndStore(db *gorm.DB, entries []models.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})

	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].LastUpdated = time.Now().UTC()
		if err := db.Create(&entries[i]).Error; err != nil {
			log.Fatalf("Failed to create leaderboard entry: %v", err)
		}
	}
}

func createWorkouts(db *gorm.DB) {
	workouts := []models.Workout{
		{
			Title:              "Super Soldier Morning Run",
			Description:        "Start your day like Captain America with an intense morning run",
			DifficultyLevel:    models.FitnessAdvanced,
			Duration:           45,
			ActivityType:       "running",
			TargetFitnessLevel: models.FitnessAdvanced,
			Instructions:       "1. Warm up for 5 minutes\n2. Run at moderate pace for 20 minutes\n3. Sprint intervals: 30 sec sprint, 90 sec jog (repeat 5 times)\n4. Cool down for 5 minutes",
		},
		{
			Title:              "Hulk Strength Training",
			Description:        "Build incredible strength with this power workout",
			DifficultyLevel:    models.FitnessIntermediate,
			Duration:           60,
			ActivityType:       "gym",
			TargetFitnessLevel: models.FitnessIntermediate,
			Instructions:       "1. Deadlifts: 3 sets of 8 reps\n2. Bench Press: 3 sets of 10 reps\n3. Squats: 3 sets of 12 reps\n4. Shoulder Press: 3 sets of 10 reps\n5. Pull-ups: 3 sets to failure",
		},
		{
			Title:              "Spider-Man Agility Training",
			Description:        "Improve your flexibility and agility with web-slinging moves",
			DifficultyLevel:    models.FitnessIntermediate,
			Duration:           30,
			ActivityType:       "yoga",
			TargetFitnessLevel: models.FitnessBeginner,
			Instructions:       "1. Dynamic stretching: 5 minutes\n2. Sun salutations: 5 rounds\n3. Balance poses: Tree, Warrior III\n4. Core work: Plank variations\n5. Cool down stretches",
		},
		{
			Title:              "Flash Speed Cycling",
			Description:        "High-speed cycling workout for explosive power",
			DifficultyLevel:    models.FitnessAdvanced,
			Duration:           50,
			ActivityType:       "cycling",
			TargetFitnessLevel: models.FitnessAdvanced,
			Instructions:       "1. Easy pace warm up: 10 minutes\n2. Tempo intervals: 5 min hard, 2 min easy (repeat 4 times)\n3. Cool down: 10 minutes easy pace",
		},
		{
			Title:              "Aquaman Swimming Session",
			Description:        "Master the waters with this comprehensive swim workout",
			DifficultyLevel:    models.FitnessIntermediate,
			Duration:           45,
			ActivityType:       "swimming",
			TargetFitnessLevel: models.FitnessIntermediate,
			Instructions:       "1. Warm up: 200m easy freestyle\n2. Main set: 8x50m freestyle (30 sec rest)\n3. Technique work: 4x100m mixed strokes\n4. Cool down: 200m easy",
		},
		{
			Title:              "Wonder Woman Warrior Workout",
			Description:        "Complete warrior training for total body fitness",
			DifficultyLevel:    models.FitnessAdvanced,
			Duration:           55,
			ActivityType:       "gym",
			TargetFitnessLevel: models.FitnessAdvanced,
			Instructions:       "1. Battle ropes: 3 sets of 30 seconds\n2. Box jumps: 3 sets of 15\n3. Kettlebell swings: 3 sets of 20\n4. Burpees: 3 sets of 15\n5. Medicine ball slams: 3 sets of 20",
		},
		{
			Title:              "Beginner Hero Walk",
			Description:        "Start your hero journey with a gentle walking routine",
			DifficultyLevel:    models.FitnessBeginner,
			Duration:           30,
			ActivityType:       "walking",
			TargetFitnessLevel: models.FitnessBeginner,
			Instructions:       "1. Start with 5 min slow pace\n2. Increase to moderate pace for 20 minutes\n3. Cool down with 5 min slow pace\n4. Focus on good posture and breathing",
		},
	}

	for i := range workouts {
		workouts[i].CreatedAt = time.Now().UTC()
		if err := db.Create(&workouts[i]).Error; err != nil {
			log.Fatalf("Failed to create workout: %v", err)
		}
	}
	log.Printf("✓ Created %d workout suggestions", len(workouts))
}
