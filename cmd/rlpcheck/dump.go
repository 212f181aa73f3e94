package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bhaskar1001101/rrlp/crypto"
	"github.com/bhaskar1001101/rrlp/rlp"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

var (
	noASCIIFlag = &cli.BoolFlag{
		Name:  "noascii",
		Usage: "print strings as hex even when they are printable",
	}
	hashFlag = &cli.BoolFlag{
		Name:  "hash",
		Usage: "print the Keccak-256 hash of each value",
	}

	dumpCommand = &cli.Command{
		Name:      "dump",
		Usage:     "Decodes hex input and prints its structure",
		ArgsUsage: "<hex>",
		Flags:     []cli.Flag{noASCIIFlag, hashFlag},
		Action:    dumpAction,
	}
)

func dumpAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("dump takes exactly one hex argument")
	}
	input, err := decodeHexArg(ctx.Args().First())
	if err != nil {
		return err
	}
	dec, err := decoderFromFlags(ctx)
	if err != nil {
		return err
	}
	return dumpAll(ctx.App.Writer, dec, input, !ctx.Bool(noASCIIFlag.Name), ctx.Bool(hashFlag.Name))
}

// dumpAll prints every value of a concatenation of encodings.
func dumpAll(w io.Writer, dec *rlp.Decoder, input []byte, ascii, hash bool) error {
	if len(input) == 0 {
		return rlp.ErrInputTooShort
	}
	for cursor := 0; cursor < len(input); {
		v, n, err := dec.DecodeAt(input, cursor)
		if err != nil {
			return fmt.Errorf("offset %d: %w", cursor, err)
		}
		var b strings.Builder
		writeValue(&b, v, 0, ascii)
		fmt.Fprintln(w, b.String())
		if hash {
			fmt.Fprintln(w, "hash:", crypto.Keccak256Hash(input[cursor:cursor+n]).Hex())
		}
		cursor += n
	}
	return nil
}

func writeValue(b *strings.Builder, v rlp.Value, depth int, ascii bool) {
	indent := strings.Repeat("  ", depth)
	if !v.IsList() {
		str := v.Bytes()
		if len(str) == 0 || (ascii && isASCII(str)) {
			fmt.Fprintf(b, "%s%q", indent, str)
		} else {
			fmt.Fprintf(b, "%s%x", indent, str)
		}
		return
	}
	if v.Len() == 0 {
		b.WriteString(indent + "[]")
		return
	}
	b.WriteString(indent + "[\n")
	for i, item := range v.Items() {
		if i > 0 {
			b.WriteString(",\n")
		}
		writeValue(b, item, depth+1, ascii)
	}
	b.WriteString("\n" + indent + "]")
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c < 32 || c > 126 {
			return false
		}
	}
	return true
}

// decodeHexArg accepts hex with or without the 0x prefix.
func decodeHexArg(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	if s == "0x" {
		return []byte{}, nil
	}
	return hexutil.Decode(s)
}
