/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package messaging

import (
	"encoding/json"
	"encoding/xml"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/kcenon/go_json_value/container/textcodec"
)

// ToXML renders the envelope as XML, projecting the payload through
// its JSON text form into a single field — a Value's shape is not
// known statically enough to map onto XML elements directly.
func (e *Envelope) ToXML() (string, error) {
	type xmlEnvelope struct {
		XMLName     xml.Name `xml:"envelope"`
		SourceID    string   `xml:"source_id"`
		SourceSubID string   `xml:"source_sub_id"`
		TargetID    string   `xml:"target_id"`
		TargetSubID string   `xml:"target_sub_id"`
		MessageType string   `xml:"message_type"`
		Payload     string   `xml:"payload"`
	}

	out := xmlEnvelope{
		SourceID:    e.SourceID,
		SourceSubID: e.SourceSubID,
		TargetID:    e.TargetID,
		TargetSubID: e.TargetSubID,
		MessageType: e.MessageType,
		Payload:     textcodec.Stringify(e.Payload),
	}
	data, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ToJSON renders the envelope's header fields and payload as a single
// JSON document.
func (e *Envelope) ToJSON() (string, error) {
	var payload interface{}
	if err := json.Unmarshal([]byte(textcodec.Stringify(e.Payload)), &payload); err != nil {
		return "", err
	}
	doc := map[string]interface{}{
		"source_id":     e.SourceID,
		"source_sub_id": e.SourceSubID,
		"target_id":     e.TargetID,
		"target_sub_id": e.TargetSubID,
		"message_type":  e.MessageType,
		"payload":       payload,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ToMessagePack serializes the envelope to MessagePack, for hosts that
// want a MessagePack transcoding of a parsed Value tree rather than
// this library's own TLV codec.
func (e *Envelope) ToMessagePack() ([]byte, error) {
	var payload interface{}
	if err := json.Unmarshal([]byte(textcodec.Stringify(e.Payload)), &payload); err != nil {
		return nil, err
	}
	doc := map[string]interface{}{
		"source_id":     e.SourceID,
		"source_sub_id": e.SourceSubID,
		"target_id":     e.TargetID,
		"target_sub_id": e.TargetSubID,
		"message_type":  e.MessageType,
		"payload":       payload,
	}
	return msgpack.Marshal(doc)
}

// FromMessagePack decodes a MessagePack-encoded envelope produced by
// ToMessagePack into a new Envelope.
func FromMessagePack(data []byte) (*Envelope, error) {
	var doc map[string]interface{}
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	e := &Envelope{}
	if v, ok := doc["source_id"].(string); ok {
		e.SourceID = v
	}
	if v, ok := doc["source_sub_id"].(string); ok {
		e.SourceSubID = v
	}
	if v, ok := doc["target_id"].(string); ok {
		e.TargetID = v
	}
	if v, ok := doc["target_sub_id"].(string); ok {
		e.TargetSubID = v
	}
	if v, ok := doc["message_type"].(string); ok {
		e.MessageType = v
	}
	payloadJSON, err := json.Marshal(doc["payload"])
	if err != nil {
		return nil, err
	}
	payload, err := textcodec.Parse(payloadJSON)
	if err != nil {
		return nil, err
	}
	e.Payload = payload
	return e, nil
}
