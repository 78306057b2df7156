// This file is part of Coupe.
//
// Coupe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Coupe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Coupe.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a test error and allow the test to continue.
// The Demand functions are fatal to the test and should be used when the
// value being tested is required for further tests to be meaningful. For
// example, testing that the lengths of two slices are equal before iterating
// over them in unison.
//
// The ExpectSuccess and ExpectFailure functions test for success and failure
// under generic conditions. Success for a bool is true and for an error is
// nil. It's worth noting that the nil type is considered a success. This is
// how errors usually work (nil to indicate no error) and so we need to
// interpret nil in this way.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output for comparison.
package test
