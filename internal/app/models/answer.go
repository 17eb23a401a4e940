package models

// AnswerRecord is one recorded response, unique per
// (session, questionnaireType, questionNumber). Mutable only while the owning
// workflow is in the answering step; frozen once submitted.
type AnswerRecord struct {
	QuestionnaireType QuestionnaireType `json:"questionnaireType"`
	QuestionNumber    int               `json:"questionNumber"`
	Value             int               `json:"value"`
}
