// Package answers holds the per-workflow answer set. Each workflow instance
// owns exactly one Store; stores are never shared.
package answers

import (
	"sort"

	"psyeval-service/internal/app/models"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/exceptions"
)

type Store struct {
	definitions map[models.QuestionnaireType]models.QuestionnaireDefinition
	order       []models.QuestionnaireType
	values      map[models.QuestionnaireType]map[int]int
	frozen      bool
}

// NewStore builds an empty store over the catalog definitions. The catalog
// order is preserved for exports and completion checks.
func NewStore(catalog []models.QuestionnaireDefinition) *Store {
	definitions := make(map[models.QuestionnaireType]models.QuestionnaireDefinition, len(catalog))
	order := make([]models.QuestionnaireType, 0, len(catalog))
	values := make(map[models.QuestionnaireType]map[int]int, len(catalog))
	for _, definition := range catalog {
		definitions[definition.Type] = definition
		order = append(order, definition.Type)
		values[definition.Type] = make(map[int]int, len(definition.Questions))
	}
	return &Store{
		definitions: definitions,
		order:       order,
		values:      values,
	}
}

// Record upserts one answer. Out-of-range values are rejected and leave the
// store unchanged.
func (s *Store) Record(questionnaireType models.QuestionnaireType, questionNumber, value int) error {
	definition, ok := s.definitions[questionnaireType]
	if !ok {
		return exceptions.ErrUnknownQuestionnaire(string(questionnaireType))
	}
	if s.frozen {
		return exceptions.ErrAnswersFrozen()
	}
	scaleMax := questionnaireType.ScaleMax()
	if value < 0 || value > scaleMax {
		return exceptions.ErrOutOfRangeValue(value, scaleMax, string(definition.Type), questionNumber)
	}
	s.values[questionnaireType][questionNumber] = value
	return nil
}

// Get returns the recorded value for a question, if any.
func (s *Store) Get(questionnaireType models.QuestionnaireType, questionNumber int) (int, bool) {
	byNumber, ok := s.values[questionnaireType]
	if !ok {
		return 0, false
	}
	value, ok := byNumber[questionNumber]
	return value, ok
}

// CountAnswered returns how many questions of the questionnaire have answers.
func (s *Store) CountAnswered(questionnaireType models.QuestionnaireType) int {
	answered := 0
	for _, question := range s.definitions[questionnaireType].Questions {
		if _, ok := s.values[questionnaireType][question.Number]; ok {
			answered++
		}
	}
	return answered
}

// TotalAnswered returns the number of answered questions across the session.
func (s *Store) TotalAnswered() int {
	total := 0
	for _, questionnaireType := range s.order {
		total += s.CountAnswered(questionnaireType)
	}
	return total
}

// TotalQuestions returns the number of questions across the session.
func (s *Store) TotalQuestions() int {
	total := 0
	for _, questionnaireType := range s.order {
		total += len(s.definitions[questionnaireType].Questions)
	}
	return total
}

// IsQuestionnaireComplete reports whether every question number of the
// questionnaire's definition has a recorded answer.
func (s *Store) IsQuestionnaireComplete(questionnaireType models.QuestionnaireType) bool {
	definition, ok := s.definitions[questionnaireType]
	if !ok {
		return false
	}
	for _, question := range definition.Questions {
		if _, answered := s.values[questionnaireType][question.Number]; !answered {
			return false
		}
	}
	return true
}

// IsSessionComplete is the conjunction over all questionnaires.
func (s *Store) IsSessionComplete() bool {
	for _, questionnaireType := range s.order {
		if !s.IsQuestionnaireComplete(questionnaireType) {
			return false
		}
	}
	return true
}

// FirstIncomplete returns the questionnaire with a missing answer together
// with the first unanswered question, scanning questionnaires in catalog
// order and questions by ascending number. ok is false when the session is
// fully answered.
func (s *Store) FirstIncomplete() (questionnaireType models.QuestionnaireType, answered int, total int, ok bool) {
	for _, qt := range s.order {
		definition := s.definitions[qt]
		if !s.IsQuestionnaireComplete(qt) {
			return qt, s.CountAnswered(qt), len(definition.Questions), true
		}
	}
	return "", 0, 0, false
}

// Hydrate loads previously saved answers, ignoring values for questions the
// catalog does not know.
func (s *Store) Hydrate(saved *backend_dto.AnswerSet) {
	if saved == nil {
		return
	}
	s.hydrateItems(models.QuestionnaireGAD7, saved.GAD7)
	s.hydrateItems(models.QuestionnairePHQ9, saved.PHQ9)
	s.hydrateItems(models.QuestionnairePSS10, saved.PSS10)
}

func (s *Store) hydrateItems(questionnaireType models.QuestionnaireType, items []backend_dto.AnswerItem) {
	if _, ok := s.definitions[questionnaireType]; !ok {
		return
	}
	for _, item := range items {
		scaleMax := questionnaireType.ScaleMax()
		if item.Value < 0 || item.Value > scaleMax {
			continue
		}
		s.values[questionnaireType][item.QuestionNumber] = item.Value
	}
}

// Export returns the per-type answer sequences sorted ascending by question
// number, the shape the backend expects.
func (s *Store) Export() *backend_dto.AnswerSet {
	return &backend_dto.AnswerSet{
		GAD7:  s.exportItems(models.QuestionnaireGAD7),
		PHQ9:  s.exportItems(models.QuestionnairePHQ9),
		PSS10: s.exportItems(models.QuestionnairePSS10),
	}
}

func (s *Store) exportItems(questionnaireType models.QuestionnaireType) []backend_dto.AnswerItem {
	byNumber := s.values[questionnaireType]
	items := make([]backend_dto.AnswerItem, 0, len(byNumber))
	for number, value := range byNumber {
		items = append(items, backend_dto.AnswerItem{QuestionNumber: number, Value: value})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].QuestionNumber < items[j].QuestionNumber
	})
	return items
}

// Freeze marks the store immutable. Called once the answer set is accepted by
// the backend; no further local mutation is attempted.
func (s *Store) Freeze() {
	s.frozen = true
}

func (s *Store) Frozen() bool {
	return s.frozen
}
