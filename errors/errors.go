package errors

const (
	InvalidRequestFormatError = "Invalid request format"
	InvalidPriceFilterError   = "minPrice and maxPrice must be valid numbers"
	PropertyNotFoundError     = "Property not found"
	DatabaseError             = "Database error"
)
