package codec

import (
	"math"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/claimable/errors"
)

// Marshaller is anything that can be represented in binary.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Unmarshaller can load its state from a binary representation.
type Unmarshaller interface {
	Unmarshal([]byte) error
}

func tag(field int, wire int) uint64 {
	return uint64(field)<<3 | uint64(wire)
}

// Encoder serializes fields using protobuf wire format. Zero values are
// omitted, just like proto3 does.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Uvarint writes an unsigned integer field.
func (e *Encoder) Uvarint(field int, v uint64) {
	if v == 0 {
		return
	}
	e.buf = append(e.buf, proto.EncodeVarint(tag(field, proto.WireVarint))...)
	e.buf = append(e.buf, proto.EncodeVarint(v)...)
}

// Varint writes a signed integer field. Negative values are encoded the
// same way int64 protobuf fields are.
func (e *Encoder) Varint(field int, v int64) {
	e.Uvarint(field, uint64(v))
}

// Bytes writes a length delimited field.
func (e *Encoder) Bytes(field int, bz []byte) {
	if len(bz) == 0 {
		return
	}
	e.buf = append(e.buf, proto.EncodeVarint(tag(field, proto.WireBytes))...)
	e.buf = append(e.buf, proto.EncodeVarint(uint64(len(bz)))...)
	e.buf = append(e.buf, bz...)
}

// String writes a string field.
func (e *Encoder) String(field int, s string) {
	e.Bytes(field, []byte(s))
}

// RepeatedBytes writes each element as a separate occurrence of the field.
// Empty elements are written as well so that element positions are kept.
func (e *Encoder) RepeatedBytes(field int, items [][]byte) {
	for _, bz := range items {
		e.buf = append(e.buf, proto.EncodeVarint(tag(field, proto.WireBytes))...)
		e.buf = append(e.buf, proto.EncodeVarint(uint64(len(bz)))...)
		e.buf = append(e.buf, bz...)
	}
}

// Message writes an embedded message field. Nil messages are omitted.
func (e *Encoder) Message(field int, m Marshaller) error {
	if m == nil {
		return nil
	}
	bz, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "field %d", field)
	}
	e.buf = append(e.buf, proto.EncodeVarint(tag(field, proto.WireBytes))...)
	e.buf = append(e.buf, proto.EncodeVarint(uint64(len(bz)))...)
	e.buf = append(e.buf, bz...)
	return nil
}

// Result returns the serialized data.
func (e *Encoder) Result() []byte {
	return e.buf
}

// Decoder reads fields written by an Encoder.
type Decoder struct {
	buf  []byte
	pos  int
	wire int
}

// NewDecoder returns a decoder reading given data.
func NewDecoder(bz []byte) *Decoder {
	return &Decoder{buf: bz}
}

// Done returns true if all data was consumed.
func (d *Decoder) Done() bool {
	return d.pos >= len(d.buf)
}

// Next reads the next field header and returns the field number. Call one
// of the value reading methods or Skip afterwards.
func (d *Decoder) Next() (int, error) {
	t, err := d.uvarint()
	if err != nil {
		return 0, err
	}
	field := int(t >> 3)
	if field <= 0 {
		return 0, errors.Wrapf(errors.ErrInput, "invalid field number %d", field)
	}
	d.wire = int(t & 7)
	return field, nil
}

// Uvarint reads an unsigned integer value.
func (d *Decoder) Uvarint() (uint64, error) {
	if d.wire != proto.WireVarint {
		return 0, errors.Wrapf(errors.ErrInput, "want varint, got wire type %d", d.wire)
	}
	return d.uvarint()
}

// Varint reads a signed integer value.
func (d *Decoder) Varint() (int64, error) {
	v, err := d.Uvarint()
	return int64(v), err
}

// Int32 reads a signed integer value that must fit into 32 bits, as
// protobuf enum and int32 fields do.
func (d *Decoder) Int32() (int32, error) {
	v, err := d.Varint()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, errors.Wrapf(errors.ErrOverflow, "int32 value %d", v)
	}
	return int32(v), nil
}

// Bytes reads a length delimited value. Returned slice is a copy.
func (d *Decoder) Bytes() ([]byte, error) {
	if d.wire != proto.WireBytes {
		return nil, errors.Wrapf(errors.ErrInput, "want bytes, got wire type %d", d.wire)
	}
	n, err := d.uvarint()
	if err != nil {
		return nil, err
	}
	end := d.pos + int(n)
	if n > uint64(len(d.buf)) || end > len(d.buf) {
		return nil, errors.Wrap(errors.ErrInput, "unexpected end of data")
	}
	bz := append([]byte{}, d.buf[d.pos:end]...)
	d.pos = end
	return bz, nil
}

// String reads a string value.
func (d *Decoder) String() (string, error) {
	bz, err := d.Bytes()
	return string(bz), err
}

// Message reads an embedded message into given destination.
func (d *Decoder) Message(dest Unmarshaller) error {
	bz, err := d.Bytes()
	if err != nil {
		return err
	}
	return dest.Unmarshal(bz)
}

// Skip ignores the value of the current field.
func (d *Decoder) Skip() error {
	switch d.wire {
	case proto.WireVarint:
		_, err := d.uvarint()
		return err
	case proto.WireBytes:
		_, err := d.Bytes()
		return err
	case proto.WireFixed64:
		return d.advance(8)
	case proto.WireFixed32:
		return d.advance(4)
	default:
		return errors.Wrapf(errors.ErrInput, "unsupported wire type %d", d.wire)
	}
}

func (d *Decoder) advance(n int) error {
	if d.pos+n > len(d.buf) {
		return errors.Wrap(errors.ErrInput, "unexpected end of data")
	}
	d.pos += n
	return nil
}

func (d *Decoder) uvarint() (uint64, error) {
	v, n := proto.DecodeVarint(d.buf[d.pos:])
	if n == 0 {
		return 0, errors.Wrap(errors.ErrInput, "malformed varint")
	}
	d.pos += n
	return v, nil
}
