package cattle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/apperr"
)

// DetailKind tags which shape the backend used for the "detail" field.
type DetailKind int

const (
	DetailNone DetailKind = iota
	DetailString
	DetailList
	DetailObject
)

// FieldError is one entry of a list-shaped detail, typically a request
// validation failure.
type FieldError struct {
	Loc     []any  `json:"loc,omitempty"`
	Msg     string `json:"msg,omitempty"`
	Message string `json:"message,omitempty"`
	Type    string `json:"type,omitempty"`
	// Text is set when the list element was a bare string.
	Text string `json:"-"`
}

func (f FieldError) text() string {
	switch {
	case f.Text != "":
		return f.Text
	case f.Msg != "":
		return f.Msg
	default:
		return f.Message
	}
}

// ErrorDetail is the backend "detail" payload: a string, a list of field
// errors or an object.
type ErrorDetail struct {
	Kind   DetailKind
	Text   string
	Fields []FieldError
	Object map[string]any
}

// UnmarshalJSON decodes whichever of the three shapes is present.
func (d *ErrorDetail) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = ErrorDetail{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = ErrorDetail{Kind: DetailString, Text: s}
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		fields := make([]FieldError, 0, len(raw))
		for _, item := range raw {
			var fe FieldError
			if len(item) > 0 && item[0] == '"' {
				if err := json.Unmarshal(item, &fe.Text); err != nil {
					return err
				}
			} else if err := json.Unmarshal(item, &fe); err != nil {
				return err
			}
			fields = append(fields, fe)
		}
		*d = ErrorDetail{Kind: DetailList, Fields: fields}
	case '{':
		var obj map[string]any
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*d = ErrorDetail{Kind: DetailObject, Object: obj}
	default:
		// Numbers and booleans carry no message.
		*d = ErrorDetail{}
	}
	return nil
}

// Message picks the user-facing text: the string itself, the first list
// element, or the object's "message" then "msg" field.
func (d ErrorDetail) Message() string {
	switch d.Kind {
	case DetailString:
		return d.Text
	case DetailList:
		if len(d.Fields) > 0 {
			return d.Fields[0].text()
		}
	case DetailObject:
		for _, key := range []string{"message", "msg"} {
			if s, ok := d.Object[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

type errorPayload struct {
	Detail ErrorDetail `json:"detail"`
}

// APIError is a raw backend failure. Status is zero when no response was
// received.
type APIError struct {
	Status int
	Detail ErrorDetail
	Err    error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend unreachable: %v", e.Err)
	}
	if msg := e.Detail.Message(); msg != "" {
		return fmt.Sprintf("backend status %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("backend status %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// translate maps a raw failure onto the domain taxonomy. notFound is the
// resource specific message used for 404 responses without detail.
func translate(apiErr *APIError, notFound string) *apperr.Error {
	out := &apperr.Error{Status: apiErr.Status, Err: apiErr}
	detail := apiErr.Detail.Message()

	switch {
	case apiErr.Status == 0:
		out.Kind = apperr.KindNetwork
		out.Message = apperr.MsgNetwork
	case apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnprocessableEntity:
		out.Kind = apperr.KindValidation
		out.Message = firstNonEmpty(detail, apperr.MsgInvalidInput)
	case apiErr.Status == http.StatusNotFound:
		out.Kind = apperr.KindNotFound
		out.Message = firstNonEmpty(detail, notFound, "Recurso no encontrado")
	case apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden:
		out.Kind = apperr.KindUnauthorized
		out.Message = firstNonEmpty(detail, apperr.MsgUnauthorized)
	default:
		out.Kind = apperr.KindServer
		out.Message = apperr.MsgServer
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
