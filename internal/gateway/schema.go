package gateway

// JSON schemas for the three structured-output calls. Strict mode requires
// every property to be listed under "required" and additionalProperties to
// be false at every level.

var itinerarySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"nodes": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string"},
					"name":        map[string]any{"type": "string"},
					"nights":      map[string]any{"type": "integer"},
					"description": map[string]any{"type": "string"},
					"imageUrl":    map[string]any{"type": "string"},
					"mealPlan":    map[string]any{"type": "string"},
					"experiences": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"coordinates": map[string]any{
						"type": []string{"object", "null"},
						"properties": map[string]any{
							"lat": map[string]any{"type": "number"},
							"lng": map[string]any{"type": "number"},
						},
						"required":             []string{"lat", "lng"},
						"additionalProperties": false,
					},
				},
				"required":             []string{"id", "name", "nights", "description", "imageUrl", "mealPlan", "experiences", "coordinates"},
				"additionalProperties": false,
			},
		},
		"edges": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string"},
					"fromId":   map[string]any{"type": "string"},
					"toId":     map[string]any{"type": "string"},
					"mode":     map[string]any{"type": "string", "enum": []string{"Flight", "Train", "Bus", "Cab"}},
					"duration": map[string]any{"type": "string"},
					"cost":     map[string]any{"type": "number"},
				},
				"required":             []string{"id", "fromId", "toId", "mode", "duration", "cost"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"nodes", "edges"},
	"additionalProperties": false,
}

var recommendationSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text": map[string]any{"type": "string"},
		"sources": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string"},
					"uri":   map[string]any{"type": "string"},
				},
				"required":             []string{"title", "uri"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"text", "sources"},
	"additionalProperties": false,
}

var optimizationSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"nodes": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":     map[string]any{"type": "string"},
					"nights": map[string]any{"type": "integer"},
				},
				"required":             []string{"id", "nights"},
				"additionalProperties": false,
			},
		},
		"edges": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string"},
					"mode":     map[string]any{"type": "string", "enum": []string{"Flight", "Train", "Bus", "Cab"}},
					"cost":     map[string]any{"type": "number"},
					"duration": map[string]any{"type": "string"},
				},
				"required":             []string{"id", "mode", "cost", "duration"},
				"additionalProperties": false,
			},
		},
		"reasoning": map[string]any{"type": "string"},
	},
	"required":             []string{"nodes", "edges", "reasoning"},
	"additionalProperties": false,
}
