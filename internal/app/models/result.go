package models

// UncertaintyTriplet summarizes confidence in a computed dimension level.
// All components are in [0,1].
type UncertaintyTriplet struct {
	Truth         float64 `json:"truth"`
	Indeterminacy float64 `json:"indeterminacy"`
	Falsity       float64 `json:"falsity"`
}

type DimensionScores struct {
	GAD7  float64 `json:"gad7"`
	PHQ9  float64 `json:"phq9"`
	PSS10 float64 `json:"pss10"`
}

type DimensionLevels struct {
	Anxiety    string `json:"anxiety"`
	Depression string `json:"depression"`
	Stress     string `json:"stress"`
}

type DimensionTriplets struct {
	Anxiety    UncertaintyTriplet `json:"anxiety"`
	Depression UncertaintyTriplet `json:"depression"`
	Stress     UncertaintyTriplet `json:"stress"`
}

type AdherenceProbabilities struct {
	Anxiety    float64 `json:"anxiety"`
	Depression float64 `json:"depression"`
	Stress     float64 `json:"stress"`
}

// ResultSet is the canonical post-normalization result representation. It is
// only materialized once the remote processing state is COMPLETED.
type ResultSet struct {
	SessionID              string                 `json:"sessionId"`
	Scores                 DimensionScores        `json:"scores"`
	Levels                 DimensionLevels        `json:"levels"`
	UncertaintyTriplets    DimensionTriplets      `json:"uncertaintyTriplets"`
	AdherenceProbabilities AdherenceProbabilities `json:"adherenceProbabilities"`
	Recommendations        []string               `json:"recommendations"`
	CriticalAlert          string                 `json:"criticalAlert,omitempty"`
}

// SessionViewKind discriminates the two session representations instead of
// probing for field presence at call sites.
type SessionViewKind string

const (
	SessionViewPartial SessionViewKind = "PARTIAL"
	SessionViewFull    SessionViewKind = "FULL"
)

// PartialSessionView describes a session whose result is not materialized.
type PartialSessionView struct {
	Session AssessmentSession `json:"session"`
}

// FullResultView pairs a completed session with its normalized result.
type FullResultView struct {
	Session AssessmentSession `json:"session"`
	Result  ResultSet         `json:"result"`
}

// SessionView is the tagged variant: exactly one of Partial or Full is set,
// according to Kind.
type SessionView struct {
	Kind    SessionViewKind     `json:"kind"`
	Partial *PartialSessionView `json:"partial,omitempty"`
	Full    *FullResultView     `json:"full,omitempty"`
}
