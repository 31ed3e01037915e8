/*
   Copyright 2026 The Faultier Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package faultier

import (
	"fmt"
	"runtime"
	"strings"
)

// stackMaxDepth bounds the number of frames captured at construction.
// Exceptional paths rarely need more context than this, and the bound keeps
// the capture cheap even in deep call trees.
const stackMaxDepth = 64

// captureStack renders the current call stack, skipping 'skip' frames on top
// of the internal accounting (+2 for runtime.Callers and captureStack
// itself). New passes skip=1 so the first recorded frame is New's caller.
//
// Frames are resolved via runtime.CallersFrames, which expands inlined calls
// correctly, and rendered in the conventional two-line form:
//
//	pkg.Function
//		/path/file.go:123
func captureStack(skip int) string {
	pc := make([]uintptr, stackMaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pc[:n])
	var b strings.Builder
	first := true
	for {
		fr, more := frames.Next()
		if fr.Function != "" {
			if !first {
				b.WriteByte('\n')
			}
			first = false
			fmt.Fprintf(&b, "%s\n\t%s:%d", fr.Function, fr.File, fr.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}
