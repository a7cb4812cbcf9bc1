package services

import (
	"context"
	"log"
	"time"

	"fitlink_server/models"
	"fitlink_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// dynamoCallTimeout bounds every DynamoDB round trip
const dynamoCallTimeout = 10 * time.Second

// DirectoryStore is the slice of DynamoService the coach directory uses,
// kept as an interface so tests can substitute an in-memory double.
type DirectoryStore interface {
	PutItem(ctx context.Context, tableName string, item interface{}) error
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error
	ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, excludeFields map[string]string, result interface{}) error
	BatchWriteItems(ctx context.Context, tableName string, writeRequests []types.WriteRequest) error
}

// CoachDirectoryService manages coach profiles in the directory table
type CoachDirectoryService struct {
	Store     DirectoryStore
	TableName string
}

func (cs *CoachDirectoryService) table() string {
	if cs.TableName != "" {
		return cs.TableName
	}
	return models.CoachesTable
}

// CreateCoach stores a new coach profile with a server-minted ID
func (cs *CoachDirectoryService) CreateCoach(ctx context.Context, coach models.Coach) (*models.Coach, error) {
	coach.CoachID = uuid.NewString()
	if coach.Status == "" {
		coach.Status = "active"
	}

	ctx, cancel := context.WithTimeout(ctx, dynamoCallTimeout)
	defer cancel()

	if err := cs.Store.PutItem(ctx, cs.table(), coach); err != nil {
		return nil, err
	}
	return &coach, nil
}

// GetCoach fetches a coach profile by ID. An unknown ID yields (nil, nil).
func (cs *CoachDirectoryService) GetCoach(ctx context.Context, coachID string) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, dynamoCallTimeout)
	defer cancel()

	key := map[string]types.AttributeValue{
		"coachId": &types.AttributeValueMemberS{Value: coachID},
	}
	item, err := cs.Store.GetItem(ctx, cs.table(), key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var coach models.Coach
	if err := attributevalue.UnmarshalMap(item, &coach); err != nil {
		return nil, err
	}
	return &coach, nil
}

// DeleteCoach removes a coach profile from the directory
func (cs *CoachDirectoryService) DeleteCoach(ctx context.Context, coachID string) error {
	ctx, cancel := context.WithTimeout(ctx, dynamoCallTimeout)
	defer cancel()

	key := map[string]types.AttributeValue{
		"coachId": &types.AttributeValueMemberS{Value: coachID},
	}
	return cs.Store.DeleteItem(ctx, cs.table(), key)
}

// ListCoaches returns non-suspended coaches, optionally filtered to those
// carrying the given specialty tag.
func (cs *CoachDirectoryService) ListCoaches(ctx context.Context, specialty string) ([]models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, dynamoCallTimeout)
	defer cancel()

	var filterFunc func(map[string]types.AttributeValue) bool
	if specialty != "" {
		filterFunc = func(item map[string]types.AttributeValue) bool {
			for _, tag := range utils.ExtractStringList(item, "specialties") {
				if tag == specialty {
					return true
				}
			}
			return false
		}
	}

	var coaches []models.Coach
	err := cs.Store.ScanWithFilter(ctx, cs.table(), filterFunc,
		map[string]string{"status": models.CoachStatusSuspended}, &coaches)
	if err != nil {
		return nil, err
	}
	return coaches, nil
}

// ListCandidates returns the candidate set for a matching request. When the
// directory is unreachable or empty it falls back to the built-in roster so
// the match endpoint always has candidates to rank.
func (cs *CoachDirectoryService) ListCandidates(ctx context.Context) ([]models.Coach, error) {
	coaches, err := cs.ListCoaches(ctx, "")
	if err != nil {
		log.Printf("Coach directory scan failed, using built-in roster: %v", err)
		return models.DefaultCoaches(), nil
	}
	if len(coaches) == 0 {
		return models.DefaultCoaches(), nil
	}
	return coaches, nil
}

// SeedDefaultCoaches batch-writes the built-in roster, for fresh environments
func (cs *CoachDirectoryService) SeedDefaultCoaches(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, dynamoCallTimeout)
	defer cancel()

	var writeRequests []types.WriteRequest
	for _, coach := range models.DefaultCoaches() {
		item, err := attributevalue.MarshalMap(coach)
		if err != nil {
			return err
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}
	return cs.Store.BatchWriteItems(ctx, cs.table(), writeRequests)
}
