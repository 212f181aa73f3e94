package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bhaskar1001101/rrlp/rlp"
	"github.com/bhaskar1001101/rrlp/rlptest"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

var encodeCommand = &cli.Command{
	Name:      "encode",
	Usage:     "Encodes a JSON value using the test vector input rules",
	ArgsUsage: "<json>",
	Description: `Strings encode as byte strings, numbers as unsigned integers,
"#"-prefixed strings as decimal big integers and arrays as lists.`,
	Action: encodeAction,
}

func encodeAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("encode takes exactly one JSON argument")
	}
	f := rlptest.Fixture{In: json.RawMessage(ctx.Args().First())}
	in, err := f.Input()
	if err != nil {
		return err
	}
	out, err := rlp.EncodeToBytes(in)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(out))
	return nil
}
