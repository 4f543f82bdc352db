package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"exam-service/internal/db"
	"exam-service/internal/models"
	"exam-service/internal/repository"
	"exam-service/internal/service"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
)

// Wipes the question bank and loads it from a JSON file. An optional
// -clear-exams also drops every exam session, for test resets.
func main() {
	file := flag.String("file", "questions.json", "path to the questions JSON file")
	clearExams := flag.Bool("clear-exams", false, "also delete all exam sessions")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}
	var questions []models.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		log.Fatalf("Seed file must be a JSON array of questions: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database := db.Client.Database("exam_service")
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)

	if err := questionService.SeedQuestions(ctx, questions); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}
	count, err := questionService.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count questions: %v", err)
	}
	log.Printf("Seeded %d questions from %s", count, *file)

	if *clearExams {
		examRepo := repository.NewExamRepository(database)
		if _, err := examRepo.Col.DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear exams: %v", err)
		}
		log.Println("Cleared all exam sessions")
	}
}
