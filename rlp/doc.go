/*
Package rlp implements the RLP (Recursive Length Prefix) serialization format.

RLP expresses every value as either a byte string or a list of values. Each
item carries a minimal length prefix:

	[0x00, 0x7f]   a single byte that is its own encoding
	[0x80, 0xb7]   string of 0-55 bytes, length = prefix - 0x80
	[0xb8, 0xbf]   long string, prefix - 0xb7 big-endian length bytes follow
	[0xc0, 0xf7]   list with 0-55 payload bytes, length = prefix - 0xc0
	[0xf8, 0xff]   long list, prefix - 0xf7 big-endian length bytes follow

Encoding is canonical, and decoding rejects every non-canonical form, so a
value has exactly one valid encoding.

# Encoding

Types implementing Encodable write themselves into an EncBuffer. Aggregates
open a list with List, write their fields in a fixed order and close it
with ListEnd. EncodeToBytes handles the native Go types listed in its
documentation by reflection.

Unsigned integers encode as their shortest big-endian byte string; zero is
the empty string (0x80), never 0x00.

# Decoding

A Decoder enforces a maximum payload length and a maximum list nesting
depth. DecodeBytes and DecodeValue require the input to hold exactly one
value. DecodeAt returns the number of bytes consumed so that concatenated
encodings can be read one by one. Stream gives scoped, typed access for
types implementing Decodable.

All malformed input is reported through the error values in this package;
the decoder never panics on input.
*/
package rlp
