package jsonx

import (
	"reflect"
	"strconv"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// integerExtension quotes the struct fields of the target kinds.
// Fields already tagged with the ",string" option are left to jsoniter.
type integerExtension struct {
	jsoniter.DummyExtension
	targets map[reflect.Kind]struct{}
}

func newIntegerExtension(kinds ...reflect.Kind) *integerExtension {
	ext := &integerExtension{targets: make(map[reflect.Kind]struct{}, len(kinds))}
	for _, k := range kinds {
		ext.targets[k] = struct{}{}
	}
	return ext
}

func (e *integerExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		kind := binding.Field.Type().Kind()
		if _, ok := e.targets[kind]; !ok {
			continue
		}
		name, opts := parseTag(binding.Field.Tag().Get("json"))
		if name == "-" || opts.has("string") {
			continue
		}
		codec := &integerCodec{kind: kind}
		binding.Encoder = codec
		binding.Decoder = codec
	}
}

type integerCodec struct {
	kind reflect.Kind
}

var _ jsoniter.ValEncoder = (*integerCodec)(nil)
var _ jsoniter.ValDecoder = (*integerCodec)(nil)

func (c *integerCodec) IsEmpty(ptr unsafe.Pointer) bool {
	if c.kind == reflect.Uint64 {
		return *(*uint64)(ptr) == 0
	}
	return *(*int64)(ptr) == 0
}

func (c *integerCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	if c.kind == reflect.Uint64 {
		stream.WriteString(strconv.FormatUint(*(*uint64)(ptr), 10))
		return
	}
	stream.WriteString(strconv.FormatInt(*(*int64)(ptr), 10))
}

// Decode accepts both quoted and bare numbers.
func (c *integerCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		s := iter.ReadString()
		if c.kind == reflect.Uint64 {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				iter.ReportError("decode uint64", err.Error())
				return
			}
			*(*uint64)(ptr) = v
			return
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			iter.ReportError("decode int64", err.Error())
			return
		}
		*(*int64)(ptr) = v
	case jsoniter.NumberValue:
		if c.kind == reflect.Uint64 {
			*(*uint64)(ptr) = iter.ReadUint64()
			return
		}
		*(*int64)(ptr) = iter.ReadInt64()
	default:
		iter.Skip()
	}
}
