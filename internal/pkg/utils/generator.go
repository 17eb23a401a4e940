package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateWorkflowID() string {
	return uuid.NewString()
}
