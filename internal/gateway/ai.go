package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/samber/lo"

	"github.com/voyageai/backend/internal/domain"
)

// AIConfig carries everything the AI client needs at construction time.
// Credentials are injected here, never read from ambient process state, so
// tests can point BaseURL at a fake backend.
type AIConfig struct {
	// APIKey authenticates against the chat-completions API. Required.
	APIKey string

	// BaseURL overrides the API endpoint. Empty means the provider default.
	BaseURL string

	// Model names per call type. The optimizer gets the heavyweight
	// reasoning model; generation and recommendations use the fast one.
	GenerationModel     string
	RecommendationModel string
	OptimizationModel   string
}

// AIClient is the gateway to the generative AI service. All three calls are
// structured-output chat completions: the request carries a JSON schema, the
// reply is decoded into a payload struct and validated before any of it is
// allowed near the trip state.
type AIClient struct {
	client   openai.Client
	cfg      AIConfig
	validate *validator.Validate
}

// NewAIClient constructs the gateway from cfg.
func NewAIClient(cfg AIConfig) *AIClient {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &AIClient{
		client:   openai.NewClient(opts...),
		cfg:      cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ---- generation ------------------------------------------------------------

// itineraryPayload mirrors the generation response schema. Field names are
// camelCase on the wire because that is what the schema dictates to the model.
type itineraryPayload struct {
	Nodes []nodePayload `json:"nodes" validate:"required,min=1,dive"`
	Edges []edgePayload `json:"edges" validate:"dive"`
}

type nodePayload struct {
	ID          string       `json:"id" validate:"required"`
	Name        string       `json:"name" validate:"required"`
	Nights      int          `json:"nights" validate:"required,min=1"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	MealPlan    string       `json:"mealPlan"`
	Experiences []string     `json:"experiences"`
	Coordinates *coordsPayload `json:"coordinates"`
}

type coordsPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type edgePayload struct {
	ID       string  `json:"id" validate:"required"`
	FromID   string  `json:"fromId" validate:"required"`
	ToID     string  `json:"toId" validate:"required"`
	Mode     string  `json:"mode" validate:"required,oneof=Flight Train Bus Cab"`
	Duration string  `json:"duration" validate:"required"`
	Cost     float64 `json:"cost" validate:"gte=0"`
}

// GenerateItinerary asks the model for a full stop/leg plan for the request.
// The returned nodes and edges are taken verbatim from the (validated)
// payload; tier and hotel-selection defaults are the store's job, not ours.
// Every failure mode — transport, empty completion, bad JSON, schema
// violation — wraps ErrGeneration.
func (c *AIClient) GenerateItinerary(ctx context.Context, req domain.PlanRequest) ([]domain.CityNode, []domain.TransportEdge, error) {
	intent := req.Intent
	if intent == "" {
		intent = "General sightseeing"
	}
	prompt := fmt.Sprintf(
		"Plan a luxury/standard balance trip to %s starting %s and ending %s for %d people. "+
			"User intent: %s. "+
			"Return a structured itinerary with cities (nodes) and transport between them (edges). "+
			"Give every node and edge a short unique id. Include a high-quality Unsplash image URL "+
			"for each city (nature or city landscape).",
		req.Destination, req.StartDate, req.EndDate, req.Travelers, intent,
	)

	raw, err := c.complete(ctx, c.cfg.GenerationModel, prompt, "itinerary", itinerarySchema)
	if err != nil {
		return nil, nil, fmt.Errorf("gateway.AIClient.GenerateItinerary: %w: %w", ErrGeneration, err)
	}

	var payload itineraryPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, nil, fmt.Errorf("gateway.AIClient.GenerateItinerary: %w: decoding response: %w", ErrGeneration, err)
	}
	if err := c.validate.Struct(payload); err != nil {
		return nil, nil, fmt.Errorf("gateway.AIClient.GenerateItinerary: %w: invalid payload: %w", ErrGeneration, err)
	}

	nodes := lo.Map(payload.Nodes, func(n nodePayload, _ int) domain.CityNode {
		node := domain.CityNode{
			ID:          n.ID,
			Name:        n.Name,
			Nights:      n.Nights,
			MealPlan:    n.MealPlan,
			Experiences: n.Experiences,
			Description: n.Description,
			ImageURL:    n.ImageURL,
		}
		if n.Coordinates != nil {
			node.Coordinates = &domain.Coordinates{Lat: n.Coordinates.Lat, Lng: n.Coordinates.Lng}
		}
		return node
	})
	edges := lo.Map(payload.Edges, func(e edgePayload, _ int) domain.TransportEdge {
		return domain.TransportEdge{
			ID:       e.ID,
			FromID:   e.FromID,
			ToID:     e.ToID,
			Mode:     domain.TransportMode(e.Mode),
			Duration: e.Duration,
			Cost:     e.Cost,
		}
	})
	return nodes, edges, nil
}

// ---- recommendations -------------------------------------------------------

type recommendationPayload struct {
	Text    string          `json:"text" validate:"required"`
	Sources []sourcePayload `json:"sources"`
}

type sourcePayload struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// GetPlaceRecommendations returns the AI's hotel/restaurant write-up for a
// city along with grounding citations. Sources that come back without a URI
// are dropped; a missing title gets a generic placeholder. Failures wrap
// ErrRecommendation.
func (c *AIClient) GetPlaceRecommendations(ctx context.Context, cityName string) (domain.Recommendation, error) {
	prompt := fmt.Sprintf(
		"Find top-rated hotels and restaurants in %s. Highlight why a tourist enthusiast would love it. "+
			"Cite the places you mention as sources with a title and a maps or web uri.",
		cityName,
	)

	raw, err := c.complete(ctx, c.cfg.RecommendationModel, prompt, "recommendation", recommendationSchema)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("gateway.AIClient.GetPlaceRecommendations: %w: %w", ErrRecommendation, err)
	}

	var payload recommendationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return domain.Recommendation{}, fmt.Errorf("gateway.AIClient.GetPlaceRecommendations: %w: decoding response: %w", ErrRecommendation, err)
	}
	if err := c.validate.Struct(payload); err != nil {
		return domain.Recommendation{}, fmt.Errorf("gateway.AIClient.GetPlaceRecommendations: %w: invalid payload: %w", ErrRecommendation, err)
	}

	withURI := lo.Filter(payload.Sources, func(s sourcePayload, _ int) bool {
		return s.URI != ""
	})
	sources := lo.Map(withURI, func(s sourcePayload, _ int) domain.GroundingSource {
		title := s.Title
		if title == "" {
			title = "Location Source"
		}
		return domain.GroundingSource{Title: title, URI: s.URI}
	})
	return domain.Recommendation{Text: payload.Text, Sources: sources}, nil
}

// ---- optimization ----------------------------------------------------------

type optimizationPayload struct {
	Nodes     []nodeOptPayload `json:"nodes" validate:"dive"`
	Edges     []edgeOptPayload `json:"edges" validate:"dive"`
	Reasoning string           `json:"reasoning" validate:"required"`
}

type nodeOptPayload struct {
	ID     string `json:"id" validate:"required"`
	Nights int    `json:"nights" validate:"required,min=1"`
}

type edgeOptPayload struct {
	ID       string  `json:"id" validate:"required"`
	Mode     string  `json:"mode" validate:"required,oneof=Flight Train Bus Cab"`
	Cost     float64 `json:"cost" validate:"gte=0"`
	Duration string  `json:"duration" validate:"required"`
}

// GetOptimization sends the current trip snapshot to the reasoning model and
// returns its sparse patch set. A patch missing its id fails validation —
// that is malformed input wrapping ErrOptimization, never a silent skip.
func (c *AIClient) GetOptimization(ctx context.Context, trip domain.Trip) (domain.OptimizationResult, error) {
	tripJSON, err := json.Marshal(trip)
	if err != nil {
		return domain.OptimizationResult{}, fmt.Errorf("gateway.AIClient.GetOptimization: %w: encoding trip: %w", ErrOptimization, err)
	}
	prompt := fmt.Sprintf(
		"You are a world-class travel route optimizer. Review the following trip: %s. "+
			"Optimize the number of nights in each city and the transport modes for better flow and value. "+
			"Return updated values only for the nodes and edges you want to change, keyed by their original ids. "+
			"Include a 'reasoning' field explaining why these changes were made.",
		tripJSON,
	)

	raw, err := c.complete(ctx, c.cfg.OptimizationModel, prompt, "optimization", optimizationSchema)
	if err != nil {
		return domain.OptimizationResult{}, fmt.Errorf("gateway.AIClient.GetOptimization: %w: %w", ErrOptimization, err)
	}

	var payload optimizationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return domain.OptimizationResult{}, fmt.Errorf("gateway.AIClient.GetOptimization: %w: decoding response: %w", ErrOptimization, err)
	}
	if err := c.validate.Struct(payload); err != nil {
		return domain.OptimizationResult{}, fmt.Errorf("gateway.AIClient.GetOptimization: %w: invalid payload: %w", ErrOptimization, err)
	}

	result := domain.OptimizationResult{
		Nodes: lo.Map(payload.Nodes, func(p nodeOptPayload, _ int) domain.NodeOptimization {
			return domain.NodeOptimization{ID: p.ID, Nights: p.Nights}
		}),
		Edges: lo.Map(payload.Edges, func(p edgeOptPayload, _ int) domain.EdgeOptimization {
			return domain.EdgeOptimization{
				ID:       p.ID,
				Mode:     domain.TransportMode(p.Mode),
				Cost:     p.Cost,
				Duration: p.Duration,
			}
		}),
		Reasoning: payload.Reasoning,
	}
	return result, nil
}

// ---- shared ----------------------------------------------------------------

// complete runs one structured-output chat completion and returns the raw
// JSON text of the first choice.
func (c *AIClient) complete(ctx context.Context, model, prompt, schemaName string, schema map[string]any) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are the itinerary engine for a travel planning product. Respond with JSON that conforms exactly to the provided schema."),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schemaName,
					Schema: schema,
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
