// Package backend_dto holds the wire shapes of the remote assessment backend.
// Result-bearing records exist in two overlapping shapes: a newer nested one
// and a legacy flat one with individually prefixed fields. Both are accepted;
// ResultFields carries every leaf as a pointer so the normalizer can tell
// absent from zero.
package backend_dto

type ScoreGroup struct {
	GAD7  *float64 `json:"gad7,omitempty"`
	PHQ9  *float64 `json:"phq9,omitempty"`
	PSS10 *float64 `json:"pss10,omitempty"`
}

type LevelGroup struct {
	Anxiety    *string `json:"anxiety,omitempty"`
	Depression *string `json:"depression,omitempty"`
	Stress     *string `json:"stress,omitempty"`
}

type TripletDTO struct {
	Truth         *float64 `json:"truth,omitempty"`
	Indeterminacy *float64 `json:"indeterminacy,omitempty"`
	Falsity       *float64 `json:"falsity,omitempty"`
}

type TripletGroup struct {
	Anxiety    *TripletDTO `json:"anxiety,omitempty"`
	Depression *TripletDTO `json:"depression,omitempty"`
	Stress     *TripletDTO `json:"stress,omitempty"`
}

type AdherenceGroup struct {
	Anxiety    *float64 `json:"anxiety,omitempty"`
	Depression *float64 `json:"depression,omitempty"`
	Stress     *float64 `json:"stress,omitempty"`
}

// ResultFields is embedded by every record that may carry result data.
type ResultFields struct {
	// Nested shape.
	Scores                 *ScoreGroup     `json:"scores,omitempty"`
	Levels                 *LevelGroup     `json:"levels,omitempty"`
	UncertaintyTriplets    *TripletGroup   `json:"uncertaintyTriplets,omitempty"`
	AdherenceProbabilities *AdherenceGroup `json:"adherenceProbabilities,omitempty"`

	// Legacy flat shape (deprecated on the backend, still emitted by older
	// producers).
	GAD7Score  *float64 `json:"gad7Score,omitempty"`
	PHQ9Score  *float64 `json:"phq9Score,omitempty"`
	PSS10Score *float64 `json:"pss10Score,omitempty"`

	AnxietyLevel    *string `json:"anxietyLevel,omitempty"`
	DepressionLevel *string `json:"depressionLevel,omitempty"`
	StressLevel     *string `json:"stressLevel,omitempty"`

	AnxietyTruth            *float64 `json:"anxietyTruth,omitempty"`
	AnxietyIndeterminacy    *float64 `json:"anxietyIndeterminacy,omitempty"`
	AnxietyFalsity          *float64 `json:"anxietyFalsity,omitempty"`
	DepressionTruth         *float64 `json:"depressionTruth,omitempty"`
	DepressionIndeterminacy *float64 `json:"depressionIndeterminacy,omitempty"`
	DepressionFalsity       *float64 `json:"depressionFalsity,omitempty"`
	StressTruth             *float64 `json:"stressTruth,omitempty"`
	StressIndeterminacy     *float64 `json:"stressIndeterminacy,omitempty"`
	StressFalsity           *float64 `json:"stressFalsity,omitempty"`

	AdherenceAnxiety    *float64 `json:"adherenceAnxiety,omitempty"`
	AdherenceDepression *float64 `json:"adherenceDepression,omitempty"`
	AdherenceStress     *float64 `json:"adherenceStress,omitempty"`
}

// ResultPayload is the full result resource fetched once processing completed.
type ResultPayload struct {
	SessionID string `json:"sessionId"`
	ResultFields

	Recommendations []string `json:"recommendations,omitempty"`
	CriticalAlert   *string  `json:"criticalAlert,omitempty"`
}
