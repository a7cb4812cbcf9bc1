package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"fitlink_server/routes"
	"fitlink_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// requireEnv reads a required configuration value, failing fast when absent
func requireEnv(name string) string {
	value := os.Getenv(name)
	if value == "" {
		log.Fatalf("%s is not set", name)
	}
	return value
}

func main() {
	// Required provider configuration; missing keys abort startup
	stripeKey := requireEnv("STRIPE_SECRET_KEY")
	webhookSecret := requireEnv("STRIPE_WEBHOOK_SECRET")
	openAIKey := requireEnv("OPENAI_API_KEY")
	bucket := requireEnv("S3_BUCKET_NAME")

	// Initialize provider clients once; handlers get injected handles
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	s3Service := &services.S3Service{Client: services.InitializeS3Client(), Bucket: bucket}
	stripeAPI := services.InitializeStripeAPI(stripeKey)
	openAIClient := services.InitializeOpenAIClient(openAIKey)

	// Initialize services
	directoryService := &services.CoachDirectoryService{
		Store:     dynamoService,
		TableName: os.Getenv("COACHES_TABLE"),
	}
	matchService := &services.MatchService{
		AI:        openAIClient,
		Directory: directoryService,
		Model:     os.Getenv("OPENAI_MODEL"),
	}
	connectService := &services.StripeConnectService{API: stripeAPI}
	webhookService := &services.WebhookService{Secret: webhookSecret}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to FitLink")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterCoachRoutes(r, directoryService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterConnectRoutes(r, connectService)
	routes.RegisterWebhookRoutes(r, webhookService)
	routes.RegisterS3Routes(r, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Stripe-Signature"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
