// Copyright 2026 The jsonkit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Package gnmiwire bridges this module's JSON text processing to the
// gNMI wire representation of a JSON-valued leaf: a *gnmi.TypedValue
// carrying JSON_IETF-encoded bytes, the form a gNMI target or
// collector puts on the wire for a subtree-valued Update (see
// github.com/openconfig/gnmi's proto/gnmi TypedValue message).
//
// Encode does not merely copy the input bytes into the TypedValue: it
// re-renders the document through a compact, validating json.Writer
// first, so a TypedValue this package produces is guaranteed to hold
// canonical, syntactically valid JSON_IETF bytes rather than whatever
// whitespace or formatting the caller happened to have on hand.
package gnmiwire

import (
	"strings"

	"github.com/lexparse/jsonkit/pkg/json"
	gnmipb "github.com/openconfig/gnmi/proto/gnmi"
)

// EncodeString re-lexes and re-parses doc, then renders it in compact
// form into a *gnmi.TypedValue holding a JsonIetfVal payload. It fails
// on any syntax error in the first complete value of doc, so a gNMI
// target never puts malformed JSON on the wire. Text after that value
// is not read: it is neither validated nor included in the result.
func EncodeString(doc string) (*gnmipb.TypedValue, error) {
	return Encode(json.NewReaderString(doc))
}

// Encode reads one top-level value from r, re-rendering every token of
// it through a compact json.Writer, and wraps the result in a
// *gnmi.TypedValue. Anything in r after that value is left unread. The
// round trip through Writer both validates r's stream and normalizes
// its formatting (no incidental whitespace survives).
func Encode(r *json.Reader) (*gnmipb.TypedValue, error) {
	var sb strings.Builder
	w := json.NewWriter(&sb)
	w.PrettyPrint = false
	w.Validate = true

	if err := copyValue(r, w); err != nil {
		return nil, err
	}

	return &gnmipb.TypedValue{
		Value: &gnmipb.TypedValue_JsonIetfVal{
			JsonIetfVal: []byte(sb.String()),
		},
	}, nil
}

// copyValue pulls exactly one top-level JSON value's worth of tokens
// from r and replays them onto w, recursing into nested
// objects/arrays. It is the bridge's entire token-stream plumbing:
// Reader's pull model and Writer's push model meet here.
func copyValue(r *json.Reader, w *json.Writer) error {
	ok, err := r.Read()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return replay(r, w, r.Token, r.Value)
}

func replay(r *json.Reader, w *json.Writer, tok json.TokenType, val interface{}) error {
	switch tok {
	case json.ObjectStart:
		if err := w.WriteObjectStart(); err != nil {
			return err
		}
		for {
			ok, err := r.Read()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if r.Token == json.ObjectEnd {
				return w.WriteObjectEnd()
			}
			if r.Token != json.PropertyName {
				return newUnexpectedTokenError(r.Token)
			}
			if err := w.WritePropertyName(r.Value.(string)); err != nil {
				return err
			}
			if err := copyValue(r, w); err != nil {
				return err
			}
		}

	case json.ArrayStart:
		if err := w.WriteArrayStart(); err != nil {
			return err
		}
		for {
			ok, err := r.Read()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if r.Token == json.ArrayEnd {
				return w.WriteArrayEnd()
			}
			if err := replay(r, w, r.Token, r.Value); err != nil {
				return err
			}
		}

	case json.String:
		return w.WriteString(val.(string))
	case json.Boolean:
		return w.WriteBool(val.(bool))
	case json.Null:
		return w.WriteNull()
	case json.Int:
		return w.WriteInt32(val.(int32))
	case json.Long:
		switch v := val.(type) {
		case int64:
			return w.WriteInt64(v)
		case uint64:
			return w.WriteUint64(v)
		}
		return newUnexpectedTokenError(tok)
	case json.Double:
		return w.WriteDouble(val.(float64))
	}
	return newUnexpectedTokenError(tok)
}

// newUnexpectedTokenError reports a token this bridge never expects to
// see on its own (ObjectEnd/ArrayEnd/None arriving outside the
// container loops that already handle them, or an unrecognized
// TokenType).
func newUnexpectedTokenError(tok json.TokenType) error {
	return &json.SyntaxError{Msg: "gnmiwire: unexpected token " + tok.String(), Offset: -1}
}
