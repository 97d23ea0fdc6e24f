/*
Copyright 2011-2025 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sais

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/arnesonlabs/fmindex/packedvec"
)

// serializeFrame captures everything needed to resume a parked frame at
// phase 2: its own input and bucket state plus the type map, exactly the
// fields spec.md §9 calls "self-contained". Every PackedVec field is
// written with its own WriteTo, so the parked blob is itself bit-packed
// rather than re-expanded to 64 bits per element. It is the blob handed
// to the out-of-core stack on push.
func serializeFrame(f *buildFrame) ([]byte, error) {
	buf := &bytes.Buffer{}

	if err := writeUvarints(buf, uint64(f.level), uint64(f.n), uint64(f.k), uint64(f.numNames)); err != nil {
		return nil, err
	}

	if _, err := f.input.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("sais: serializing input: %w", err)
	}

	if _, err := f.typeMap.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("sais: serializing type map: %w", err)
	}

	if _, err := f.bucketHeads.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("sais: serializing bucket heads: %w", err)
	}

	if _, err := f.bucketTails.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("sais: serializing bucket tails: %w", err)
	}

	if _, err := f.summaryIndex.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("sais: serializing summary index: %w", err)
	}

	if _, err := f.lmsNames.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("sais: serializing lms names: %w", err)
	}

	return buf.Bytes(), nil
}

func deserializeFrame(data []byte) (*buildFrame, error) {
	r := bytes.NewReader(data)

	level, n, k, numNames, err := readUvarints4(r)
	if err != nil {
		return nil, fmt.Errorf("sais: reading parked frame header: %w", err)
	}

	input, err := packedvec.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("sais: reading parked input: %w", err)
	}

	typeMap, err := packedvec.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("sais: reading parked type map: %w", err)
	}

	bucketHeads, err := packedvec.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("sais: reading parked bucket heads: %w", err)
	}

	bucketTails, err := packedvec.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("sais: reading parked bucket tails: %w", err)
	}

	summaryIndex, err := packedvec.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("sais: reading parked summary index: %w", err)
	}

	lmsNames, err := packedvec.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("sais: reading parked lms names: %w", err)
	}

	return &buildFrame{
		level:        int(level),
		input:        input,
		n:            int(n),
		k:            int(k),
		typeMap:      typeMap,
		bucketHeads:  bucketHeads,
		bucketTails:  bucketTails,
		summaryIndex: summaryIndex,
		lmsNames:     lmsNames,
		numNames:     int(numNames),
		phase1Done:   true,
	}, nil
}

func writeUvarints(w io.Writer, values ...uint64) error {
	var tmp [binary.MaxVarintLen64]byte

	for _, v := range values {
		n := binary.PutUvarint(tmp[:], v)

		if _, err := w.Write(tmp[:n]); err != nil {
			return err
		}
	}

	return nil
}

func readUvarints4(r io.ByteReader) (a, b, c, d uint64, err error) {
	if a, err = binary.ReadUvarint(r); err != nil {
		return
	}

	if b, err = binary.ReadUvarint(r); err != nil {
		return
	}

	if c, err = binary.ReadUvarint(r); err != nil {
		return
	}

	d, err = binary.ReadUvarint(r)
	return
}
