package models

// Coach defines the structure for coach directory records
type Coach struct {
	CoachID     string   `json:"id" dynamodbav:"coachId"`
	Name        string   `json:"name" dynamodbav:"name"`
	Specialties []string `json:"specialties" dynamodbav:"specialties,omitempty"`
	Bio         string   `json:"bio,omitempty" dynamodbav:"bio,omitempty"`
	PhotoKey    string   `json:"photoKey,omitempty" dynamodbav:"photoKey,omitempty"`
	Status      string   `json:"status,omitempty" dynamodbav:"status,omitempty"`
}

// CoachesTable is the default DynamoDB table name for coach profiles
const CoachesTable = "Coaches"

// CoachStatusSuspended marks coaches excluded from the public directory
const CoachStatusSuspended = "suspended"

// DefaultCoaches returns the built-in roster used when the directory
// has no data source to offer (fresh environments, scan failures).
func DefaultCoaches() []Coach {
	return []Coach{
		{CoachID: "coach-1", Name: "Alex Rivera", Specialties: []string{"strength training", "powerlifting"}, Status: "active"},
		{CoachID: "coach-2", Name: "Maya Chen", Specialties: []string{"yoga", "mobility"}, Status: "active"},
		{CoachID: "coach-3", Name: "Jordan Okafor", Specialties: []string{"nutrition", "weight loss"}, Status: "active"},
	}
}
