// This file is part of GameGL.
//
// GameGL is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GameGL is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GameGL.  If not, see <https://www.gnu.org/licenses/>.

//go:build !release

package gltable_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/gltable/recorder"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/test"
)

func TestCheckError(t *testing.T) {
	logger.Clear()

	rec := recorder.NewRecorder()
	test.ExpectFailure(t, gltable.CheckError(rec, "gl", "nothing"))

	rec.RaiseError(gltable.INVALID_VALUE)
	rec.RaiseError(gltable.INVALID_OPERATION)
	test.ExpectSuccess(t, gltable.CheckError(rec, "gl", "BufferData"))
	test.ExpectEquality(t, rec.PendingErrors(), 0)

	w := &strings.Builder{}
	logger.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "gl: BufferData: invalid value (0x501)\ngl: BufferData: invalid operation (0x502)\n")
}

type prohibit struct{}

func (prohibit) AllowLogging() bool {
	return false
}

func TestCheckErrorPermission(t *testing.T) {
	logger.Clear()
	gltable.SetLogPermission(prohibit{})
	defer gltable.SetLogPermission(nil)

	// errors are still drained and reported but not logged
	rec := recorder.NewRecorder()
	rec.RaiseError(gltable.OUT_OF_MEMORY)
	test.ExpectSuccess(t, gltable.CheckError(rec, "gl", "TexImage3D"))
	test.ExpectEquality(t, rec.PendingErrors(), 0)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}
