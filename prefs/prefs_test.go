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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/coupemu/coupe/curated"
	"github.com/coupemu/coupe/prefs"
	"github.com/coupemu/coupe/test"
)

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set(" 256 "))
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectEquality(t, w.Get().(int), 256)

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 256\n")
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("rom", &v))
	test.ExpectSuccess(t, v.Set(" samcoupe.rom "))
	test.ExpectEquality(t, v.String(), "samcoupe.rom")

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "rom :: samcoupe.rom\n")
}

func TestIllegalKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("two words", &v))
	test.ExpectSuccess(t, dsk.Add("key", &v))
	test.ExpectFailure(t, dsk.Add("key", &v))
}

// a second disk saving to the same file preserves the entries of the first
func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.Int
	var b prefs.String
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, dskB.Add("b", &b))

	test.ExpectSuccess(t, a.Set(4))
	test.ExpectSuccess(t, b.Set("foo"))
	test.DemandSuccess(t, dskA.Save())
	test.DemandSuccess(t, dskB.Save())
	cmpPrefFile(t, fn, "a :: 4\nb :: foo\n")

	// load into fresh values
	var c prefs.Int
	dskC, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dskC.Add("a", &c))
	test.ExpectSuccess(t, dskC.Load())
	test.ExpectEquality(t, c.Get().(int), 4)
}

func TestMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "missing"))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, v.Set(512))
	test.ExpectSuccess(t, dsk.Add("memory.mainRAM", &v))

	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, v.Get().(int), 512)
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, post, 2)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 2)
	test.ExpectEquality(t, post, 2)
}
