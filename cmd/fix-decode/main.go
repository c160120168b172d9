// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/blinklabs-io/gofix/dict"
	"github.com/blinklabs-io/gofix/tagvalue"
	json "github.com/goccy/go-json"
)

type fixDecodeFlags struct {
	flagset   *flag.FlagSet
	file      string
	separator string
	noVerify  bool
	pretty    bool
}

func newFixDecodeFlags() *fixDecodeFlags {
	f := &fixDecodeFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.file,
		"file",
		"",
		"path to file containing tag-value messages (defaults to stdin)",
	)
	f.flagset.StringVar(
		&f.separator,
		"separator",
		"\x01",
		"field separator byte (defaults to SOH)",
	)
	f.flagset.BoolVar(
		&f.noVerify,
		"no-verify-checksum",
		false,
		"skip verification of the trailing CheckSum field",
	)
	f.flagset.BoolVar(
		&f.pretty,
		"pretty",
		false,
		"indent JSON output",
	)
	return f
}

type jsonField struct {
	Tag   uint32 `json:"tag"`
	Value string `json:"value"`
}

type jsonMessage struct {
	BeginString string      `json:"begin_string"`
	MsgType     string      `json:"msg_type"`
	Fields      []jsonField `json:"fields"`
}

func main() {
	f := newFixDecodeFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if len(f.separator) != 1 {
		fmt.Printf("separator must be a single byte\n")
		os.Exit(1)
	}
	input := os.Stdin
	if f.file != "" {
		var err error
		input, err = os.Open(f.file)
		if err != nil {
			fmt.Printf("failed to open input file: %s\n", err)
			os.Exit(1)
		}
		defer input.Close()
	}
	decoder := tagvalue.NewDecoder(
		dict.FIX44(),
		tagvalue.WithSeparator(f.separator[0]),
		tagvalue.WithChecksumVerification(!f.noVerify),
	)
	stream := decoder.Streaming()
	encoder := json.NewEncoder(os.Stdout)
	if f.pretty {
		encoder.SetIndent("", "  ")
	}
	chunk := make([]byte, 4096)
	eof := false
	for {
		for {
			ok, err := stream.TryParse()
			if err != nil {
				fmt.Printf("decode failed: %s\n", err)
				os.Exit(1)
			}
			if !ok {
				break
			}
			if err := printMessage(encoder, stream.Message()); err != nil {
				fmt.Printf("failed to write output: %s\n", err)
				os.Exit(1)
			}
		}
		if eof {
			break
		}
		n, err := input.Read(chunk)
		if n > 0 {
			stream.Feed(chunk[:n])
		}
		if err == io.EOF {
			eof = true
		} else if err != nil {
			fmt.Printf("failed to read input: %s\n", err)
			os.Exit(1)
		}
	}
}

func printMessage(encoder *json.Encoder, msg *tagvalue.Message) error {
	out := jsonMessage{}
	if raw := msg.GetRaw(8); raw != nil {
		out.BeginString = string(raw)
	}
	if msgType, err := msg.MsgType(); err == nil {
		out.MsgType = msgType
	}
	for _, f := range msg.Fields() {
		out.Fields = append(out.Fields, jsonField{
			Tag:   f.Tag,
			Value: string(f.Value),
		})
	}
	return encoder.Encode(out)
}
