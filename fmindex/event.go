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

package fmindex

import (
	"fmt"
	"time"
)

// Build phase markers, reported to a BuildListener as construction moves
// from the suffix array through the BWT to the rank tables.
const (
	EvtSuffixArrayStart = iota // SA-IS construction starts
	EvtSuffixArrayDone         // SA-IS construction ends
	EvtBWTStart                // Forward BWT starts
	EvtBWTDone                 // Forward BWT ends
	EvtRankTableStart          // Rank/C/suffix-length tables start
	EvtRankTableDone           // Rank/C/suffix-length tables end
)

// BuildEvent reports progress during Build/BuildWithListener.
type BuildEvent struct {
	phase     int
	size      int64
	eventTime time.Time
}

// NewBuildEvent creates a BuildEvent for the given phase and input size.
func NewBuildEvent(phase int, size int64) *BuildEvent {
	return &BuildEvent{phase: phase, size: size, eventTime: time.Now()}
}

// Phase returns which construction phase this event marks.
func (e *BuildEvent) Phase() int {
	return e.phase
}

// Size returns the input size in bytes that the index is being built
// over.
func (e *BuildEvent) Size() int64 {
	return e.size
}

// Time returns when this event was created.
func (e *BuildEvent) Time() time.Time {
	return e.eventTime
}

// String renders the event as a small JSON object.
func (e *BuildEvent) String() string {
	var phase string

	switch e.phase {
	case EvtSuffixArrayStart:
		phase = "SUFFIX_ARRAY_START"
	case EvtSuffixArrayDone:
		phase = "SUFFIX_ARRAY_DONE"
	case EvtBWTStart:
		phase = "BWT_START"
	case EvtBWTDone:
		phase = "BWT_DONE"
	case EvtRankTableStart:
		phase = "RANK_TABLE_START"
	case EvtRankTableDone:
		phase = "RANK_TABLE_DONE"
	}

	return fmt.Sprintf("{ \"phase\":\"%s\", \"size\":%d, \"time\":%d }",
		phase, e.size, e.eventTime.UnixNano()/1000000)
}

// BuildListener is implemented by anything that wants to observe index
// construction progress.
type BuildListener interface {
	ProcessBuildEvent(evt *BuildEvent)
}

// notify is a no-op when listener is nil, so BuildWithListener's callers
// never need a guard of their own.
func notify(listener BuildListener, phase int, size int) {
	if listener == nil {
		return
	}

	listener.ProcessBuildEvent(NewBuildEvent(phase, int64(size)))
}
