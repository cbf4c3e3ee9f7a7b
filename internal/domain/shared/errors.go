package shared

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Catalog errors

type InvalidResourceDataError struct {
	*DomainError
}

func NewInvalidResourceDataError(message string) *InvalidResourceDataError {
	return &InvalidResourceDataError{DomainError: &DomainError{Message: message}}
}

type InvalidRecipeDataError struct {
	*DomainError
}

func NewInvalidRecipeDataError(message string) *InvalidRecipeDataError {
	return &InvalidRecipeDataError{DomainError: &DomainError{Message: message}}
}

// Facility errors

type InvalidFacilityDataError struct {
	*DomainError
}

func NewInvalidFacilityDataError(message string) *InvalidFacilityDataError {
	return &InvalidFacilityDataError{DomainError: &DomainError{Message: message}}
}

// Transporter errors

type InvalidTransporterDataError struct {
	*DomainError
}

func NewInvalidTransporterDataError(message string) *InvalidTransporterDataError {
	return &InvalidTransporterDataError{DomainError: &DomainError{Message: message}}
}
