// Package rpc defines the wire types, procedure names and codec of the
// Connect API consumed by the web front end.
package rpc

import "encoding/json"

// Codec marshals RPC messages as plain JSON. The API uses hand-written
// Go types rather than protobuf-generated messages, so the default
// Connect codecs (which require proto.Message) are replaced with this
// one on every handler and client.
type Codec struct{}

// Name reports "json" so Connect routes application/json payloads here.
func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

func (Codec) Unmarshal(data []byte, msg any) error { return json.Unmarshal(data, msg) }
