package phrase

import "errors"

var (
	ErrNoBundle          = errors.New("phrase: no sentence bundle configured")
	ErrSentenceNotFound  = errors.New("phrase: sentence not found in bundle")
	ErrSubstitutionLimit = errors.New("phrase: substitution limit exceeded")
)
