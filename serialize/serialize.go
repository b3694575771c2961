// Package serialize encodes and decodes a snaplist.List's contents as an
// ordered JSON array. It is a thin optional layer over the core list,
// mirroring the shape of the teacher config package's
// EncodeInto/ReadConfigAndCheck pair rather than the list package's own
// API, since serialization is a concern of its own generation -- add a
// format, not a method on List.
package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/johnietre/snaplist"
)

// EncodeJSON writes l's current snapshot to w as a JSON array, in order.
// Because it walks a single Iter() snapshot to completion before
// returning, a concurrent Append racing the snapshot can never produce a
// torn or partial array: the array is exactly the sequence the snapshot
// guarantees.
func EncodeJSON[T any](w io.Writer, l *snaplist.List[T]) error {
	it := l.Iter()
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	first := true
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("serialize: encode element: %w", err)
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// DecodeJSON reads a JSON array from r and appends each element, in order,
// into a freshly constructed list.
func DecodeJSON[T any](r io.Reader) (*snaplist.List[T], error) {
	var values []T
	if err := json.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("serialize: decode: %w", err)
	}
	return snaplist.NewFrom(values...), nil
}

// EncodeString is a convenience wrapper returning the encoded form as a
// string, mirroring Config.EncodeString in the teacher's config package.
func EncodeString[T any](l *snaplist.List[T]) (string, error) {
	buf := &bytes.Buffer{}
	if err := EncodeJSON(buf, l); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DecodeString is the inverse of EncodeString.
func DecodeString[T any](s string) (*snaplist.List[T], error) {
	return DecodeJSON[T](bytes.NewReader([]byte(s)))
}
