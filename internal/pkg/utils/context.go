package utils

import (
	"context"

	"psyeval-service/internal/pkg/constvars"
)

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func PractitionerIDFromContext(ctx context.Context) string {
	practitionerID, _ := ctx.Value(constvars.CONTEXT_PRACTITIONER_ID_KEY).(string)
	return practitionerID
}
