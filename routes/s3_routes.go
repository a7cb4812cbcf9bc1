package routes

import (
	"fitlink_server/controllers"
	"fitlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for coach photo upload URLs
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service) {
	controller := controllers.NewS3Controller(s3Service)

	r.HandleFunc("/api/uploads/presign", controller.GeneratePresignedURL).Methods("POST")
	r.HandleFunc("/api/uploads/presign-read", controller.GetPresignedReadURL).Methods("POST")
}
