package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Frames are newline-delimited JSON envelopes. A single socket write
// may arrive as several reads, or several writes coalesced into one,
// so the decoder keeps partial frames across Push calls and only the
// delimiter marks a frame boundary.

type envelope struct {
	Type    Type            `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode serializes a message into one self-delimited frame.
func Encode(m Message) ([]byte, error) {
	payload, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.Type(), err)
	}

	env := envelope{Type: m.Type()}
	if !bytes.Equal(payload, []byte("{}")) {
		env.Payload = payload
	}

	frame, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.Type(), err)
	}

	return append(frame, '\n'), nil
}

// decodeFrame parses one complete frame (without its delimiter) into a
// typed message.
func decodeFrame(line []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}

	var (
		msg Message
		err error
	)

	switch env.Type {
	case TypeJoinGame:
		msg, err = decodePayload[JoinGame](env.Payload)
	case TypePlayerReady:
		msg, err = decodePayload[PlayerReady](env.Payload)
	case TypeSubmitAnswer:
		msg, err = decodePayload[SubmitAnswer](env.Payload)
	case TypePlayerListUpdate:
		msg, err = decodePayload[PlayerListUpdate](env.Payload)
	case TypeGameConfig:
		msg, err = decodePayload[GameConfig](env.Payload)
	case TypeGameStart:
		msg, err = decodePayload[GameStart](env.Payload)
	case TypeNewQuestion:
		msg, err = decodePayload[NewQuestion](env.Payload)
	case TypeAnswerResult:
		msg, err = decodePayload[AnswerResult](env.Payload)
	case TypeTimeUpdate:
		msg, err = decodePayload[TimeUpdate](env.Payload)
	case TypeCalculatingResults:
		msg, err = decodePayload[CalculatingResults](env.Payload)
	case TypeGameEnd:
		msg, err = decodePayload[GameEnd](env.Payload)
	case TypeServerStopped:
		msg, err = decodePayload[ServerStopped](env.Payload)
	case TypePlayerLeft:
		msg, err = decodePayload[PlayerLeft](env.Payload)
	case TypeGetHostInfo:
		msg, err = decodePayload[GetHostInfo](env.Payload)
	case TypeHostInfo:
		msg, err = decodePayload[HostInfo](env.Payload)
	default:
		return nil, fmt.Errorf("decode frame: unknown message type %q", env.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", env.Type, err)
	}
	return msg, nil
}

func decodePayload[T Message](payload json.RawMessage) (Message, error) {
	var m T
	if payload == nil {
		return m, nil
	}
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Decoder reassembles frames from an inbound byte stream.
type Decoder struct {
	buf    []byte
	logger *slog.Logger
}

// NewDecoder creates a decoder. A malformed frame is logged and
// dropped without poisoning later frames in the same buffer.
func NewDecoder(logger *slog.Logger) *Decoder {
	return &Decoder{logger: logger}
}

// Push appends a chunk of inbound bytes and returns every complete
// message it can now parse, in stream order. Unterminated trailing
// bytes are retained for the next Push.
func (d *Decoder) Push(data []byte) []Message {
	d.buf = append(d.buf, data...)

	var msgs []Message
	for {
		i := bytes.IndexByte(d.buf, '\n')
		if i < 0 {
			return msgs
		}

		line := bytes.TrimSpace(d.buf[:i])
		d.buf = d.buf[i+1:]
		if len(line) == 0 {
			continue
		}

		msg, err := decodeFrame(line)
		if err != nil {
			d.logger.Warn("dropping malformed frame", "error", err)
			continue
		}
		msgs = append(msgs, msg)
	}
}

// Reset discards any buffered partial frame.
func (d *Decoder) Reset() {
	d.buf = nil
}
