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

package benchmark

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/arnesonlabs/fmindex/bwt"
)

func BenchmarkBWTSmallBlock(b *testing.B) {
	benchmarkBWTRoundTrip(b, 256*1024)
}

func BenchmarkBWTBigBlock(b *testing.B) {
	benchmarkBWTRoundTrip(b, 10*1024*1024)
}

func benchmarkBWTRoundTrip(b *testing.B, size int) {
	buf1 := make([]byte, size)
	r := rand.New(rand.NewSource(1234567))

	for i := range buf1 {
		buf1[i] = byte(r.Intn(255) + 1)
	}

	transformed, err := bwt.Forward(buf1)
	if err != nil {
		b.Fatalf("forward preflight failed: %v", err)
	}

	restored, err := bwt.Inverse(transformed)
	if err != nil {
		b.Fatalf("inverse preflight failed: %v", err)
	}

	if !bytes.Equal(buf1, restored) {
		b.Fatalf("preflight mismatch")
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(buf1)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		transformed, err = bwt.Forward(buf1)
		if err != nil {
			b.Fatalf("forward failed: %v", err)
		}

		if _, err = bwt.Inverse(transformed); err != nil {
			b.Fatalf("inverse failed: %v", err)
		}
	}
}
