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

// Package simulated implements the platform interfaces without a windowing
// system. GL calls made through the Display's Loader() are served by a
// gltable/recorder.Recorder.
//
// Failures can be scripted by setting the exported fields of the Display
// before use. The Display also counts the objects it has created so that
// tests can check for leaks of windows and surfaces.
//
// The EventLoop returns batches of events in the order they were pushed.
// Once the script is exhausted the EventLoop requests that the window be
// closed.
package simulated
