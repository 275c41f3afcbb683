// Package json wraps jsoniter with a codec for wallclock.Time, so that the
// reading is written straight to the stream as 'HH:MM:SS' text without going
// through the reflection-based json.Marshaler path.
package json

import (
	"bytes"
	jso "encoding/json"
	"io"
	"reflect"
	"unsafe"

	"github.com/curtisnewbie/wallclock"
	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

var config = jsoniter.Config{EscapeHTML: true}.Froze()

func init() {
	config.RegisterExtension(&wallClockExtension{jsoniter.DummyExtension{}})
}

// Parse json bytes.
func ParseJson(body []byte, ptr any) error {
	e := config.Unmarshal(body, ptr)
	return e
}

// Parse json bytes.
func ParseJsonAs[T any](body []byte) (T, error) {
	var t T
	return t, ParseJson(body, &t)
}

// Parse json string.
func SParseJson(body string, ptr any) error {
	return ParseJson([]byte(body), ptr)
}

// Parse json string.
func SParseJsonAs[T any](body string) (T, error) {
	var t T
	return t, SParseJson(body, &t)
}

// Write json as bytes.
func WriteJson(body any) ([]byte, error) {
	return config.Marshal(body)
}

// Write json as string.
func SWriteJson(body any) (string, error) {
	if v, ok := body.(string); ok {
		return v, nil
	}
	buf, err := WriteJson(body)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func SWriteIndent(body any) (string, error) {
	if v, ok := body.(string); ok {
		return v, nil
	}
	buf, err := config.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Decode json.
func DecodeJson(reader io.Reader, ptr any) error {
	return config.NewDecoder(reader).Decode(ptr)
}

// Encode json.
func EncodeJson(writer io.Writer, body any) error {
	return config.NewEncoder(writer).Encode(body)
}

func IsValidJson(s []byte) bool {
	return config.Valid(s)
}

func Indent(b []byte) string {
	var buf bytes.Buffer
	_ = jso.Indent(&buf, b, "", "\t")
	return buf.String()
}

var wallClockTimeType = reflect.TypeOf(wallclock.Time{})

type wallClockExtension struct {
	jsoniter.DummyExtension
}

func (extension *wallClockExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Type1() == wallClockTimeType {
		return wallClockCodec{}
	}
	return nil
}

func (extension *wallClockExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Type1() == wallClockTimeType {
		return wallClockCodec{}
	}
	return nil
}

type wallClockCodec struct{}

func (wallClockCodec) IsEmpty(ptr unsafe.Pointer) bool {
	// the zero value is midnight, a legitimate reading
	return false
}

func (wallClockCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString((*wallclock.Time)(ptr).String())
}

func (wallClockCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	t, err := wallclock.Parse(iter.ReadString())
	if err != nil {
		iter.ReportError("wallclock.Time", err.Error())
		return
	}
	*(*wallclock.Time)(ptr) = t
}
