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

// Package tagvalue implements a streaming, dictionary-typed, group-aware
// decoder for the classic FIX tag-value encoding.
//
// The wire format is a sequence of "tag=value" fields separated by a fixed
// delimiter byte, wrapped in envelope fields (BeginString, BodyLength,
// CheckSum) used for framing and integrity. The format is structurally
// ambiguous: the same tag can legitimately recur in different entries of a
// repeating group, and a raw data field can embed the separator byte when
// its exact length was fixed by a preceding Length-typed field. The
// decoder resolves both by consulting a dictionary of tag datatypes and
// assigning every field a disambiguating context.
//
// Use Decoder for whole-buffer decoding and DecoderStreaming for
// incrementally fed input; both yield identical results for the same
// bytes.
package tagvalue
