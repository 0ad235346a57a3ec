package customerrors

import "errors"

var (
	// ErrSubmitInFlight is returned when a chart submit arrives while a
	// previous one on the same service instance is still awaiting the remote
	// service. Nothing was sent; the caller should simply wait.
	ErrSubmitInFlight = errors.New("bir istek zaten işleniyor, lütfen bekleyin")

	ErrChartNotFound    = errors.New("kayıtlı doğum haritası bulunamadı")
	ErrFriendNotFound   = errors.New("arkadaş bulunamadı")
	ErrNotAuthenticated = errors.New("oturum bulunamadı, lütfen giriş yapın")
)

// ValidationError reports the first form rule an input failed. Validation is
// all-or-nothing: an input carrying a ValidationError never reaches the
// network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// TransportError wraps a request that never produced a response (offline,
// DNS, timeout). The user-facing message is a generic retry suggestion.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "İstek sırasında bir sorun oluştu. Lütfen tekrar dene."
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApiError is a non-2xx reply from the remote astrology service carrying a
// structured error body. Message is the remote `error`/`details` field
// verbatim when present.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return e.Message
}

// MalformedResponseError is a 2xx reply whose body lacks a required
// structural field. Kept distinct from ApiError so a remote defect is never
// presented as a user-caused failure.
type MalformedResponseError struct {
	Missing string
}

func (e *MalformedResponseError) Error() string {
	if e.Missing == "" {
		return "Servisten geçerli bir JSON çıktısı alınamadı"
	}
	return "Servis beklenmedik bir yanıt döndürdü: " + e.Missing + " alanı eksik"
}
