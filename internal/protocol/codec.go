// Package protocol implements the line protocol spoken between the host
// and the display device: UTF-8 text lines of the form "field1|field2\n",
// plus the reserved control tokens REFRESH and REFRESH_ACK.
//
// The link is best-effort. There are no checksums or sequence numbers;
// robustness comes from redundant periodic retransmission.
package protocol

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Reserved control tokens. Matching is case-insensitive after trimming.
const (
	TokenRefresh    = "REFRESH"
	TokenRefreshAck = "REFRESH_ACK"
)

// Kind classifies a decoded line.
type Kind int

const (
	KindData       Kind = iota // "field1|field2" payload
	KindRefresh                // device -> host refresh request
	KindRefreshAck             // host -> device request acknowledgment
	KindInvalid                // undecodable segment, dropped by callers
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindRefresh:
		return "refresh"
	case KindRefreshAck:
		return "refresh-ack"
	case KindInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Line is one decoded unit from the byte stream.
type Line struct {
	Kind   Kind
	Field1 string // set for KindData
	Field2 string // set for KindData, may be empty
	Err    error  // set for KindInvalid
}

// Encode produces the wire form of a data line. Fields must not contain
// '|' or '\n'; the codec does not escape. Callers truncate to the display
// width first, which keeps both characters out in practice.
func Encode(field1, field2 string) []byte {
	return []byte(field1 + "|" + field2 + "\n")
}

// EncodeToken produces the wire form of a control token line.
func EncodeToken(token string) []byte {
	return []byte(token + "\n")
}

// DecodeChunk splits an inbound byte chunk on newlines and decodes each
// non-blank segment. A chunk may contain zero or more complete lines;
// segments that are not valid UTF-8 come back as KindInvalid rather than
// failing the whole chunk.
//
// Reserved tokens are matched before the field split, so a line reading
// "REFRESH" (any case) is never a data line with Field1 "REFRESH".
func DecodeChunk(chunk []byte) []Line {
	var lines []Line
	for _, seg := range strings.Split(string(chunk), "\n") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		lines = append(lines, decodeSegment(seg))
	}
	return lines
}

func decodeSegment(seg string) Line {
	if !utf8.ValidString(seg) {
		return Line{Kind: KindInvalid, Err: fmt.Errorf("segment is not valid UTF-8 (%d bytes)", len(seg))}
	}

	switch strings.ToUpper(seg) {
	case TokenRefresh:
		return Line{Kind: KindRefresh}
	case TokenRefreshAck:
		return Line{Kind: KindRefreshAck}
	}

	field1, field2, _ := strings.Cut(seg, "|")
	return Line{Kind: KindData, Field1: field1, Field2: field2}
}
