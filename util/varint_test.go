// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"

	"github.com/bitmark-inc/kittyd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0xffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff, 0xff},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestFromVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		suffix := []byte{0xff, 0x97, 0x23}
		b := append(append([]byte{}, item.encoded...), suffix...)

		result, count := util.FromVarint64(b)
		if result != item.value {
			t.Errorf("%d: FromVarint64(%x) -> %d  expected: %d", i, b, result, item.value)
		}
		if !bytes.Equal(suffix, b[count:]) {
			t.Errorf("%d: suffix: %x  expected: %x", i, b[count:], suffix)
		}
	}

	for i, item := range varint64TruncatedTests {
		result, count := util.FromVarint64(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}
}

func TestVarint64RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Uint64().Draw(t, "value")
		encoded := util.ToVarint64(value)
		decoded, n := util.FromVarint64(encoded)
		if decoded != value || n != len(encoded) {
			t.Fatalf("round trip of %d gave %d (%d of %d bytes)", value, decoded, n, len(encoded))
		}
	})
}

func TestBase58(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0xfe, 0xff}
	s := util.ToBase58(data)
	if !bytes.Equal(data, util.FromBase58(s)) {
		t.Errorf("base58 round trip failed for: %q", s)
	}
	if 0 != len(util.FromBase58("0OIl")) {
		t.Errorf("invalid alphabet was decoded")
	}
}

func TestAppendVarint64(t *testing.T) {
	buffer := []byte{0xaa}
	for _, item := range varint64Tests {
		buffer = util.AppendVarint64(buffer, item.value)
	}

	if 0xaa != buffer[0] {
		t.Fatalf("prefix overwritten: %x", buffer)
	}
	buffer = buffer[1:]
	for i, item := range varint64Tests {
		value, n := util.FromVarint64(buffer)
		if item.value != value || len(item.encoded) != n {
			t.Errorf("%d: decoded %d, %d  expected: %d, %d", i, value, n, item.value, len(item.encoded))
		}
		buffer = buffer[n:]
	}
	if 0 != len(buffer) {
		t.Errorf("trailing bytes: %x", buffer)
	}
}
