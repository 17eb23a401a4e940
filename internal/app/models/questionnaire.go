package models

import "psyeval-service/internal/pkg/constvars"

// QuestionnaireType identifies one of the three standardized instruments.
type QuestionnaireType string

const (
	QuestionnaireGAD7  QuestionnaireType = constvars.QuestionnaireTypeGAD7
	QuestionnairePHQ9  QuestionnaireType = constvars.QuestionnaireTypePHQ9
	QuestionnairePSS10 QuestionnaireType = constvars.QuestionnaireTypePSS10
)

// ScaleMax returns the upper bound of the Likert scale for the type. Answers
// are integers in [0, ScaleMax].
func (t QuestionnaireType) ScaleMax() int {
	switch t {
	case QuestionnairePHQ9:
		return constvars.ScaleMaxPHQ9
	case QuestionnairePSS10:
		return constvars.ScaleMaxPSS10
	default:
		return constvars.ScaleMaxGAD7
	}
}

func (t QuestionnaireType) Valid() bool {
	switch t {
	case QuestionnaireGAD7, QuestionnairePHQ9, QuestionnairePSS10:
		return true
	}
	return false
}

type Question struct {
	Number          int    `json:"number"`
	Text            string `json:"text"`
	IsReverseScored bool   `json:"isReverseScored"`
	IsCritical      bool   `json:"isCritical"`
}

// QuestionnaireDefinition is immutable reference data. Question ordering is
// significant: it drives the answering sequence and the resume position.
type QuestionnaireDefinition struct {
	Type      QuestionnaireType `json:"type"`
	Questions []Question        `json:"questions"`
}

// LikertOption is one selectable response value with its display label.
type LikertOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// LikertOptions returns the response options for the type so callers never
// hard-code scales.
func (t QuestionnaireType) LikertOptions() []LikertOption {
	if t == QuestionnairePSS10 {
		return []LikertOption{
			{Value: 0, Label: "Never"},
			{Value: 1, Label: "Almost never"},
			{Value: 2, Label: "Sometimes"},
			{Value: 3, Label: "Fairly often"},
			{Value: 4, Label: "Very often"},
		}
	}
	return []LikertOption{
		{Value: 0, Label: "Not at all"},
		{Value: 1, Label: "Several days"},
		{Value: 2, Label: "More than half the days"},
		{Value: 3, Label: "Nearly every day"},
	}
}
