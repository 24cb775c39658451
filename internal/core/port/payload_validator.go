package port

// PayloadValidatorPort проверяет тела запросов и событий по JSON-схемам.
type PayloadValidatorPort interface {
	Validate(schemaName string, payload interface{}) error
}
