package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fitlink_server/models"

	openai "github.com/sashabaranov/go-openai"
)

const (
	matchModelTimeout = 20 * time.Second
	matchMaxTokens    = 500
	matchTemperature  = 0.2
	defaultMatchModel = openai.GPT4oMini
	matchSystemPrompt = "You are a fitness coach matching assistant. Reply with a single JSON object and nothing else."
)

// MatchService ranks directory coaches against a free-text client query
// using the chat-completion adapter, with a deterministic fallback so the
// endpoint never fails on provider trouble.
type MatchService struct {
	AI        ChatCompleter
	Directory CandidateSource
	Model     string
}

// CandidateSource supplies the candidate set for a single matching request
type CandidateSource interface {
	ListCandidates(ctx context.Context) ([]models.Coach, error)
}

// modelReply is the one JSON shape the model is instructed to return
type modelReply struct {
	Explanation string `json:"explanation"`
	Matches     []struct {
		CandidateID string `json:"candidateId"`
		Score       int    `json:"score"`
	} `json:"matches"`
}

// MatchCoaches returns ranked matches for the query. Any failure between the
// model call and candidate resolution falls back to the full candidate set
// with score 100; only an empty candidate set is surfaced as an error.
func (ms *MatchService) MatchCoaches(ctx context.Context, query string) (*models.MatchResponse, error) {
	candidates, err := ms.Directory.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errors.New("no coaches available to match against")
	}

	response, err := ms.rankWithModel(ctx, query, candidates)
	if err != nil {
		log.Printf("Coach matching fell back to default ranking: %v", err)
		return fallbackResponse(candidates), nil
	}
	return response, nil
}

func (ms *MatchService) rankWithModel(ctx context.Context, query string, candidates []models.Coach) (*models.MatchResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, matchModelTimeout)
	defer cancel()

	model := ms.Model
	if model == "" {
		model = defaultMatchModel
	}

	completion, err := ms.AI.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		MaxTokens:   matchMaxTokens,
		Temperature: matchTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: matchSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildMatchPrompt(query, candidates)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	reply, err := parseModelReply(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	return resolveMatches(reply, candidates)
}

// buildMatchPrompt lists the candidate set and pins the reply to a single
// JSON object with per-candidate scores.
func buildMatchPrompt(query string, candidates []models.Coach) string {
	var b strings.Builder
	b.WriteString("A client is looking for a fitness coach. Their request:\n")
	b.WriteString(query)
	b.WriteString("\n\nAvailable coaches:\n")
	for _, coach := range candidates {
		fmt.Fprintf(&b, "- id: %s, name: %s, specialties: %s\n",
			coach.CoachID, coach.Name, strings.Join(coach.Specialties, ", "))
	}
	b.WriteString("\nScore how well each coach fits the request. Respond with exactly one JSON object of the form ")
	b.WriteString(`{"explanation": "<short explanation for the client>", "matches": [{"candidateId": "<id>", "score": <0-100>}]}`)
	b.WriteString(" and no other text.")
	return b.String()
}

// parseModelReply decodes the reply strictly: one JSON value, known fields
// only, scores in range. Anything else is a parse failure feeding the
// fallback, never a partial extraction.
func parseModelReply(content string) (*modelReply, error) {
	decoder := json.NewDecoder(strings.NewReader(strings.TrimSpace(content)))
	decoder.DisallowUnknownFields()

	var reply modelReply
	if err := decoder.Decode(&reply); err != nil {
		return nil, fmt.Errorf("model reply is not the expected JSON object: %w", err)
	}
	if decoder.More() {
		return nil, errors.New("model reply contains trailing data after the JSON object")
	}
	if len(reply.Matches) == 0 {
		return nil, errors.New("model reply contains no matches")
	}
	for _, match := range reply.Matches {
		if match.Score < 0 || match.Score > 100 {
			return nil, fmt.Errorf("model reply score %d for %q is out of range", match.Score, match.CandidateID)
		}
	}
	return &reply, nil
}

// resolveMatches maps scored candidate IDs back onto the candidate set,
// dropping IDs the model invented and preserving the model's ordering.
func resolveMatches(reply *modelReply, candidates []models.Coach) (*models.MatchResponse, error) {
	byID := make(map[string]models.Coach, len(candidates))
	for _, coach := range candidates {
		byID[coach.CoachID] = coach
	}

	var matches []models.CoachMatch
	for _, scored := range reply.Matches {
		coach, ok := byID[scored.CandidateID]
		if !ok {
			log.Printf("Dropping match for unknown candidate %q", scored.CandidateID)
			continue
		}
		matches = append(matches, models.CoachMatch{
			CoachID:     coach.CoachID,
			Name:        coach.Name,
			Specialties: coach.Specialties,
			Score:       scored.Score,
		})
	}
	if len(matches) == 0 {
		return nil, errors.New("model reply matched no known candidates")
	}

	return &models.MatchResponse{Explanation: reply.Explanation, Matches: matches}, nil
}

func fallbackResponse(candidates []models.Coach) *models.MatchResponse {
	matches := make([]models.CoachMatch, 0, len(candidates))
	for _, coach := range candidates {
		matches = append(matches, models.CoachMatch{
			CoachID:     coach.CoachID,
			Name:        coach.Name,
			Specialties: coach.Specialties,
			Score:       100,
		})
	}
	return &models.MatchResponse{Explanation: models.FallbackExplanation, Matches: matches}
}
