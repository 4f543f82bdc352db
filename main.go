package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"exam-service/internal/db"
	"exam-service/internal/event"
	"exam-service/internal/handlers"
	"exam-service/internal/repository"
	"exam-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, exam events will not be published")
	}

	r := gin.Default()

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "X-User-ID", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("exam_service")

	// Questions
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Practice
	practiceService := service.NewPracticeService(questionRepo)
	practiceHandler := handlers.NewPracticeHandler(practiceService)

	// Exam sessions
	examRepo := repository.NewExamRepository(database)
	examService := service.NewExamService(examRepo, questionRepo)
	examHandler := handlers.NewExamHandler(examService)

	r.GET("/health", handlers.Health)

	// Public routes - practice browsing, solutions included
	practice := r.Group("/practice")
	{
		practice.GET("/questions/count", practiceHandler.GetCount)
		practice.GET("/question/:index", practiceHandler.GetQuestion)
	}
	r.GET("/question/:index", practiceHandler.GetQuestion)

	// Protected routes - question bank management
	questions := r.Group("/questions")
	{
		questions.GET("/", questionHandler.ListQuestions)
		questions.POST("/", questionHandler.CreateQuestion)
		questions.GET("/:id", questionHandler.GetQuestion)
		questions.PUT("/:id", questionHandler.UpdateQuestion)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	setupExamRoutes(r, examHandler, publisher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	r.Run(":" + port)
}

// requireUser rejects exam calls that arrive without the gateway-verified
// user id. The engine trusts this value completely; verifying it is the
// gateway's job.
func requireUser(c *gin.Context) {
	if c.GetHeader("X-User-ID") == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
			"code":  "MISSING_USER_ID",
		})
		c.Abort()
		return
	}
	c.Next()
}

func setupExamRoutes(r *gin.Engine, examHandler *handlers.ExamHandler, publisher *event.EventPublisher) {
	exams := r.Group("/exams")
	exams.Use(requireUser)
	{
		exams.POST("/", func(c *gin.Context) {
			examHandler.CreateExam(c)
			if publisher != nil {
				publisher.Publish("exam.session.created", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		exams.GET("/:examId/questions/:index", examHandler.GetQuestion)

		exams.POST("/:examId/questions/:index/answer", func(c *gin.Context) {
			examHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("exam.answer.submitted", gin.H{
					"exam_id":   c.Param("examId"),
					"index":     c.Param("index"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		exams.GET("/:examId/result", examHandler.GetResult)

		exams.DELETE("/", func(c *gin.Context) {
			examHandler.ClearExams(c)
			if publisher != nil {
				publisher.Publish("exam.sessions.cleared", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}
}
