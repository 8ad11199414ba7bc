package quizgen

// Config controls batch generation and validation.
type Config struct {
	// Validators is the ordered list of validators run on every record of
	// a parsed batch. The first failure rejects the whole batch.
	Validators []Validator

	// BatchSize is the number of questions requested per provider call.
	BatchSize int

	// MaxTokens is the token budget for the provider response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		BatchSize:   10,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
