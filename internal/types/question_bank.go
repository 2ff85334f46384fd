package types

// Scale describes the Likert scale the question bank uses.
type Scale struct {
	Min    int      `json:"min"`
	Max    int      `json:"max"`
	Labels []string `json:"labels"`
}

// QuestionBankItem is a single survey item. Reverse items are reflected
// across the scale midpoint before aggregation.
type QuestionBankItem struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	AnchorCode string `json:"anchor_code"`
	Reverse    bool   `json:"reverse"`
}

// QuestionBank is the immutable ordered item list plus its answer scale.
type QuestionBank struct {
	Version string             `json:"version"`
	Scale   Scale              `json:"scale"`
	Items   []QuestionBankItem `json:"items"`
}
