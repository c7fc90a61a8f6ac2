package record

import (
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"go.jacobcolvin.com/loghorn/level"
)

// SystemUser is the value of Properties.User on every event.
const SystemUser = "SYSTEM"

// ErrEncode indicates the payload could not be encoded to JSON.
var ErrEncode = errors.New("encode payload")

// Envelope is the request body accepted by the remote collector.
type Envelope struct {
	Events []Event `json:"events"`
}

// Event is the flat collector form of a [Record].
type Event struct {
	Timestamp       time.Time   `json:"Timestamp"`
	MessageTemplate string      `json:"MessageTemplate"`
	Properties      Properties  `json:"Properties"`
	Level           level.Level `json:"Level"`
}

// Properties holds the event fields a collector indexes. Data is the JSON
// encoding of the payload, kept as a string so the envelope schema does not
// depend on the payload's shape.
type Properties struct {
	Timestamp   time.Time   `json:"Timestamp"`
	Application string      `json:"Application,omitempty"`
	AppVersion  string      `json:"AppVersion,omitempty"`
	Env         string      `json:"Env,omitempty"`
	EventID     string      `json:"EventId"`
	User        string      `json:"User"`
	Exception   string      `json:"Exception,omitempty"`
	Label       string      `json:"Label"`
	LogUUID     string      `json:"LogUuid"`
	// Data is the JSON array of the normalized payload (see [ToSlice]), so
	// a map payload is sent as [{"k":"v"}] and "x" as ["x"].
	Data        string      `json:"Data"`
	Tags        []string    `json:"Tags,omitempty"`
	LogLevel    level.Level `json:"LogLevel"`
}

// MarshalData encodes a payload to its JSON string form. Cyclic payloads fail
// with [ErrCyclicPayload].
func MarshalData(data any) (string, error) {
	err := CheckAcyclic(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}

	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return string(b), nil
}

// Wire projects r into its collector form.
func (r *Record) Wire() (Event, error) {
	data, err := MarshalData(r.Data)
	if err != nil {
		return Event{}, err
	}

	ts := r.Timestamp.UTC()

	props := Properties{
		Application: r.Application,
		AppVersion:  r.AppVersion,
		Env:         r.Env,
		EventID:     r.EventID,
		LogLevel:    r.Level,
		User:        SystemUser,
		Timestamp:   ts,
		Tags:        r.Tags,
		Label:       r.Label,
		LogUUID:     r.LogUUID,
		Data:        data,
	}
	if r.Exception != nil {
		props.Exception = r.Exception.Error()
	}

	return Event{
		Timestamp:       ts,
		MessageTemplate: r.MessageTemplate,
		Level:           r.Level,
		Properties:      props,
	}, nil
}
