package restaurant

// ValidationError reports the first missing required field on a record.
type ValidationError struct {
	Field   string // JSON name of the missing field
	Message string // client-facing message
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// requiredFields lists the business fields in validation order. The order is
// part of the API contract: the first missing field wins.
var requiredFields = []struct {
	name    string
	message string
	missing func(*Restaurant) bool
}{
	{"name", "Name is a required field.", func(r *Restaurant) bool { return r.Name == "" }},
	{"address", "Address is a required field.", func(r *Restaurant) bool { return r.Address == "" }},
	{"phoneNumber", "Phone number is a required field.", func(r *Restaurant) bool { return r.PhoneNumber == "" }},
	{"emailAddress", "Email address is a required field.", func(r *Restaurant) bool { return r.EmailAddress == "" }},
	{"rating", "Rating is a required field.", func(r *Restaurant) bool { return r.Rating == 0 }},
}

// Validate checks the five required business fields in fixed order and
// returns a *ValidationError for the first one missing, or nil.
//
// Required-ness is truthiness: an empty string is missing, and a rating of
// exactly 0 is indistinguishable from an absent rating. Both create and full
// update run this identical check before touching the store.
func Validate(r *Restaurant) *ValidationError {
	for _, f := range requiredFields {
		if f.missing(r) {
			return &ValidationError{Field: f.name, Message: f.message}
		}
	}
	return nil
}
