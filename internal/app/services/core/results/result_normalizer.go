// Package results reconciles the two wire shapes of assessment results into
// the canonical nested representation. For every leaf the nested value wins
// when present; otherwise the deprecated flat field is used; otherwise the
// leaf stays at its zero value. Neither shape is required.
package results

import (
	"psyeval-service/internal/app/models"
	"psyeval-service/internal/pkg/backend_dto"
)

// Normalize merges the result fields of a payload into a canonical ResultSet.
func Normalize(payload *backend_dto.ResultPayload) *models.ResultSet {
	if payload == nil {
		return nil
	}

	result := normalizeFields(&payload.ResultFields)
	result.SessionID = payload.SessionID
	result.Recommendations = payload.Recommendations
	if payload.CriticalAlert != nil {
		result.CriticalAlert = *payload.CriticalAlert
	}
	return result
}

// NormalizeSession merges result fields carried on a session record itself,
// the shape older backends use for completed sessions.
func NormalizeSession(record *backend_dto.SessionRecord) *models.ResultSet {
	if record == nil {
		return nil
	}
	result := normalizeFields(&record.ResultFields)
	result.SessionID = record.ID
	return result
}

func normalizeFields(fields *backend_dto.ResultFields) *models.ResultSet {
	result := &models.ResultSet{}

	var nestedScores backend_dto.ScoreGroup
	if fields.Scores != nil {
		nestedScores = *fields.Scores
	}
	result.Scores.GAD7 = pickFloat(nestedScores.GAD7, fields.GAD7Score)
	result.Scores.PHQ9 = pickFloat(nestedScores.PHQ9, fields.PHQ9Score)
	result.Scores.PSS10 = pickFloat(nestedScores.PSS10, fields.PSS10Score)

	var nestedLevels backend_dto.LevelGroup
	if fields.Levels != nil {
		nestedLevels = *fields.Levels
	}
	result.Levels.Anxiety = pickString(nestedLevels.Anxiety, fields.AnxietyLevel)
	result.Levels.Depression = pickString(nestedLevels.Depression, fields.DepressionLevel)
	result.Levels.Stress = pickString(nestedLevels.Stress, fields.StressLevel)

	var nestedTriplets backend_dto.TripletGroup
	if fields.UncertaintyTriplets != nil {
		nestedTriplets = *fields.UncertaintyTriplets
	}
	result.UncertaintyTriplets.Anxiety = pickTriplet(nestedTriplets.Anxiety,
		fields.AnxietyTruth, fields.AnxietyIndeterminacy, fields.AnxietyFalsity)
	result.UncertaintyTriplets.Depression = pickTriplet(nestedTriplets.Depression,
		fields.DepressionTruth, fields.DepressionIndeterminacy, fields.DepressionFalsity)
	result.UncertaintyTriplets.Stress = pickTriplet(nestedTriplets.Stress,
		fields.StressTruth, fields.StressIndeterminacy, fields.StressFalsity)

	var nestedAdherence backend_dto.AdherenceGroup
	if fields.AdherenceProbabilities != nil {
		nestedAdherence = *fields.AdherenceProbabilities
	}
	result.AdherenceProbabilities.Anxiety = pickFloat(nestedAdherence.Anxiety, fields.AdherenceAnxiety)
	result.AdherenceProbabilities.Depression = pickFloat(nestedAdherence.Depression, fields.AdherenceDepression)
	result.AdherenceProbabilities.Stress = pickFloat(nestedAdherence.Stress, fields.AdherenceStress)

	return result
}

// HasResultData reports whether the record carries any result leaf in either
// shape. Completed sessions without it still need the result resource fetch.
func HasResultData(fields *backend_dto.ResultFields) bool {
	if fields == nil {
		return false
	}
	if fields.Scores != nil || fields.Levels != nil ||
		fields.UncertaintyTriplets != nil || fields.AdherenceProbabilities != nil {
		return true
	}
	return fields.GAD7Score != nil || fields.PHQ9Score != nil || fields.PSS10Score != nil ||
		fields.AnxietyLevel != nil || fields.DepressionLevel != nil || fields.StressLevel != nil
}

func pickFloat(nested, flat *float64) float64 {
	if nested != nil {
		return *nested
	}
	if flat != nil {
		return *flat
	}
	return 0
}

func pickString(nested, flat *string) string {
	if nested != nil {
		return *nested
	}
	if flat != nil {
		return *flat
	}
	return ""
}

// pickTriplet merges component-wise: a nested triplet may itself be sparse,
// so each component falls back to its flat counterpart independently.
func pickTriplet(nested *backend_dto.TripletDTO, truth, indeterminacy, falsity *float64) models.UncertaintyTriplet {
	var nestedTriplet backend_dto.TripletDTO
	if nested != nil {
		nestedTriplet = *nested
	}
	return models.UncertaintyTriplet{
		Truth:         pickFloat(nestedTriplet.Truth, truth),
		Indeterminacy: pickFloat(nestedTriplet.Indeterminacy, indeterminacy),
		Falsity:       pickFloat(nestedTriplet.Falsity, falsity),
	}
}
