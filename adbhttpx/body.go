package adbhttpx

import (
	"bytes"
	"encoding/json"
)

const (
	contentTypePlainText = "text/plain"
	contentTypeJson      = "application/json"
	contentTypeLdJson    = "application/x-ldjson"
)

// Body is the tagged union of the payload shapes a request can carry.
// The encoder narrows here rather than probing arbitrary values at
// runtime.
type Body interface {
	encodeBody() ([]byte, string, error)
}

// JsonBody is a single structured payload serialized as one JSON
// document.
type JsonBody struct {
	Value interface{}
}

func (b JsonBody) encodeBody() ([]byte, string, error) {
	data, err := json.Marshal(b.Value)
	if err != nil {
		return nil, "", err
	}

	return data, contentTypeJson, nil
}

// JsonLinesBody is a sequence of payloads serialized as line-delimited
// JSON, one document per line, CRLF-separated with a trailing CRLF.
type JsonLinesBody struct {
	Items []interface{}
}

func (b JsonLinesBody) encodeBody() ([]byte, string, error) {
	var buf bytes.Buffer
	for _, item := range b.Items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, "", err
		}

		buf.Write(data)
		buf.WriteString("\r\n")
	}

	return buf.Bytes(), contentTypeLdJson, nil
}

// RawBody is an already-encoded payload which is passed through
// unchanged.
type RawBody []byte

func (b RawBody) encodeBody() ([]byte, string, error) {
	return []byte(b), contentTypePlainText, nil
}

// EncodeBody serializes a request payload and reports the content type
// the encoding implies.  A nil body produces no bytes and the plain
// text default.
func EncodeBody(body Body) ([]byte, string, error) {
	if body == nil {
		return nil, contentTypePlainText, nil
	}

	return body.encodeBody()
}
