package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"fitlink_server/models"
	"fitlink_server/routes"
	"fitlink_server/services"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gorilla/mux"
)

// recordingStore keeps coach items in memory and counts writes
type recordingStore struct {
	items    map[string]map[string]types.AttributeValue
	putCalls int
}

func newRecordingStore() *recordingStore {
	return &recordingStore{items: map[string]map[string]types.AttributeValue{}}
}

func coachIDOf(item map[string]types.AttributeValue) string {
	if attr, ok := item["coachId"].(*types.AttributeValueMemberS); ok {
		return attr.Value
	}
	return ""
}

func (s *recordingStore) PutItem(ctx context.Context, tableName string, item interface{}) error {
	s.putCalls++
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	s.items[coachIDOf(marshaled)] = marshaled
	return nil
}

func (s *recordingStore) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	return s.items[coachIDOf(key)], nil
}

func (s *recordingStore) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	delete(s.items, coachIDOf(key))
	return nil
}

func (s *recordingStore) ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, excludeFields map[string]string, result interface{}) error {
	var filtered []map[string]types.AttributeValue
	for _, item := range s.items {
		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}
	return attributevalue.UnmarshalListOfMaps(filtered, result)
}

func (s *recordingStore) BatchWriteItems(ctx context.Context, tableName string, writeRequests []types.WriteRequest) error {
	return nil
}

func newCoachRouter(store services.DirectoryStore) *mux.Router {
	r := mux.NewRouter()
	routes.RegisterCoachRoutes(r, &services.CoachDirectoryService{Store: store})
	return r
}

func TestCreateCoachEndpointMissingName(t *testing.T) {
	store := newRecordingStore()
	r := newCoachRouter(store)

	rec := doJSON(r, "POST", "/api/coaches", map[string]interface{}{
		"specialties": []string{"yoga"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if store.putCalls != 0 {
		t.Errorf("store written %d times for invalid input", store.putCalls)
	}
}

func TestCreateAndGetCoachEndpoint(t *testing.T) {
	store := newRecordingStore()
	r := newCoachRouter(store)

	rec := doJSON(r, "POST", "/api/coaches", map[string]interface{}{
		"name":        "Sam Lee",
		"specialties": []string{"running", "endurance"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Coach models.Coach `json:"coach"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if created.Coach.CoachID == "" {
		t.Fatal("coach ID not minted")
	}

	get := doJSON(r, "GET", "/api/coaches/"+created.Coach.CoachID, nil)
	if get.Code != http.StatusOK {
		t.Fatalf("get status = %d", get.Code)
	}
	var fetched models.Coach
	if err := json.Unmarshal(get.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("invalid get body: %v", err)
	}
	if fetched.Name != "Sam Lee" {
		t.Errorf("fetched name = %q", fetched.Name)
	}
}

func TestGetCoachEndpointNotFound(t *testing.T) {
	r := newCoachRouter(newRecordingStore())

	rec := doJSON(r, "GET", "/api/coaches/unknown-id", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
