package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/apperrors"
)

// Envelope is the platform's generic response wrapper. Data may hold a page
// of results, a plain object, an array, or null depending on the endpoint.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Code      json.RawMessage `json:"code"`
	Timestamp json.RawMessage `json:"timestamp"`
}

// PayloadKind classifies a raw response body before extraction. Not every
// endpoint wraps its payload: some return a bare array or a bare object, and
// probing field presence at each call site is what this classification
// replaces.
type PayloadKind int

const (
	KindEnvelope PayloadKind = iota
	KindArray
	KindObject
)

// Payload is a response body parsed into its recognized shape.
type Payload struct {
	Kind     PayloadKind
	Raw      json.RawMessage
	Envelope *Envelope
}

// ParseBody classifies a raw response body. An empty or all-whitespace body
// is an ErrEmptyResponse.
func ParseBody(body []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Payload{}, apperrors.ErrEmptyResponse
	}

	if trimmed[0] == '[' {
		return Payload{Kind: KindArray, Raw: trimmed}, nil
	}

	if trimmed[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return Payload{}, fmt.Errorf("parse response body: %w", err)
		}

		if _, ok := fields["data"]; ok {
			env := &Envelope{}
			if err := json.Unmarshal(trimmed, env); err != nil {
				return Payload{}, fmt.Errorf("parse response envelope: %w", err)
			}
			return Payload{Kind: KindEnvelope, Raw: trimmed, Envelope: env}, nil
		}

		return Payload{Kind: KindObject, Raw: trimmed}, nil
	}

	// Scalars and null: hand back as-is, callers decide what they mean.
	return Payload{Kind: KindObject, Raw: trimmed}, nil
}

// Unwrap normalizes a raw response body to its payload: the nested data value
// for enveloped responses, the body itself for bare arrays and objects.
func Unwrap(body []byte) (json.RawMessage, error) {
	payload, err := ParseBody(body)
	if err != nil {
		return nil, err
	}

	if payload.Kind == KindEnvelope {
		if len(payload.Envelope.Data) == 0 {
			return json.RawMessage("null"), nil
		}
		return payload.Envelope.Data, nil
	}
	return payload.Raw, nil
}
