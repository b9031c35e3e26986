package domain

// NodeOptimization is the optimizer's patch for one stop: only the number
// of nights may be retuned. ID must be non-empty — a patch without an id is
// malformed gateway output, not a silent skip.
type NodeOptimization struct {
	ID     string `json:"id"`
	Nights int    `json:"nights"`
}

// EdgeOptimization is the optimizer's patch for one leg: transport mode,
// cost, and duration may be retuned together.
type EdgeOptimization struct {
	ID       string        `json:"id"`
	Mode     TransportMode `json:"mode"`
	Cost     float64       `json:"cost"`
	Duration string        `json:"duration"`
}

// OptimizationResult is the full payload of one optimization call: a sparse,
// id-keyed patch set plus the model's prose explanation. Reasoning is
// surfaced to the user but never stored on the trip.
type OptimizationResult struct {
	Nodes     []NodeOptimization `json:"nodes"`
	Edges     []EdgeOptimization `json:"edges"`
	Reasoning string             `json:"reasoning"`
}
