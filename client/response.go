package client

import (
	"encoding/json"

	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"

	"github.com/go-resty/resty/v2"
)

// remoteErrorBody covers the error shapes the remote endpoints use. Older
// endpoints answer {error}, newer ones {details} or {message}; nothing past
// this boundary ever branches on the raw shape.
type remoteErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Message string `json:"message"`
}

const fallbackAPIMessage = "Bir hata oluştu. Lütfen tekrar dene."

// normalize maps a resty call outcome onto the shared error taxonomy:
// no response at all becomes a TransportError, a non-2xx reply becomes an
// ApiError with the remote message passed through when one is present.
func normalize(resp *resty.Response, err error) error {
	if err != nil {
		return &customerrors.TransportError{Err: err}
	}
	if resp.IsSuccess() {
		return nil
	}

	msg := fallbackAPIMessage
	var body remoteErrorBody
	if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr == nil {
		switch {
		case body.Error != "":
			msg = body.Error
		case body.Details != "":
			msg = body.Details
		case body.Message != "":
			msg = body.Message
		}
	}

	return &customerrors.ApiError{StatusCode: resp.StatusCode(), Message: msg}
}

// decode parses a 2xx body, failing closed into MalformedResponseError when
// the payload is not the JSON document the caller expects.
func decode(resp *resty.Response, dest any) error {
	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		return &customerrors.MalformedResponseError{}
	}
	return nil
}
