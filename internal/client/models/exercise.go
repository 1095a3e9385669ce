package models

// Exercise is a catalog entry as returned by the fitness API. All fields are
// plain strings; Name is the de facto identity key (the upstream API exposes
// no numeric id). Entries are immutable and never mutated by the client.
type Exercise struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}
