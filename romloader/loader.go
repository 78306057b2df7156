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

package romloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/coupemu/coupe/curated"
	"github.com/coupemu/coupe/hardware/memory/memorymap"
	"github.com/coupemu/coupe/resources"
)

// Sentinel error patterns returned by the package.
const (
	LoaderError = "romloader: %v"
	NoFilename  = "romloader: no filename"
)

// ZX82 container details.
const (
	ContainerSignature = "ZX82"
	ContainerHeaderLen = 140
)

// Loader is used to specify the ROM image to load.
type Loader struct {
	// filename of the ROM image
	Filename string

	// the path the image was eventually opened from. empty until Load() has
	// been successful
	Path string

	// expected hash of the loaded data. empty string indicates that the hash is
	// unknown and need not be validated. after a load operation the value will
	// be the hash of the loaded data, including any container header
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte

	// whether the data was found to be inside a ZX82 container
	Container bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the ROM data. Filenames that are http or https URLs are fetched over
// the network. Anything else is a local file.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	if ld.Filename == "" {
		return curated.Errorf(NoFilename)
	}

	// a filename containing a colon parses as a URL with a scheme so the
	// scheme is only used if it is one we can fetch
	var remote bool
	if u, err := url.Parse(ld.Filename); err == nil {
		remote = u.Scheme == "http" || u.Scheme == "https"
	}

	var err error
	if remote {
		err = ld.loadHTTP()
	} else {
		err = ld.loadFile()
	}

	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(LoaderError, "unexpected hash value")
	}
	ld.Hash = hash

	ld.Container = len(ld.Data) >= len(ContainerSignature) &&
		bytes.Equal(ld.Data[:len(ContainerSignature)], []byte(ContainerSignature))

	return nil
}

func (ld *Loader) loadHTTP() error {
	resp, err := http.Get(ld.Filename)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s", ld.Filename, resp.Status)
	}

	ld.Data, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	ld.Path = ld.Filename

	return nil
}

func (ld *Loader) loadFile() error {
	var f *os.File

	// try the program directory first and then the filename as given
	pth, err := resources.ProgramPath(ld.Filename)
	if err == nil {
		f, err = os.Open(pth)
	}
	if err != nil {
		pth = ld.Filename
		f, err = os.Open(pth)
		if err != nil {
			return err
		}
	}
	defer f.Close()

	ld.Data, err = io.ReadAll(f)
	if err != nil {
		return err
	}
	ld.Path = pth

	return nil
}

// Image returns the ROM data with any container header removed. The result is
// empty if Load() has not been called or if the container is truncated.
func (ld Loader) Image() []byte {
	if !ld.Container {
		return ld.Data
	}
	if len(ld.Data) <= ContainerHeaderLen {
		return nil
	}
	return ld.Data[ContainerHeaderLen:]
}

// CopyTo loads the ROM image if necessary and copies as much of it as will fit
// into dst. Returns the number of whole pages copied, which will be zero if
// there is an error.
func (ld *Loader) CopyTo(dst []uint8) (int, error) {
	if err := ld.Load(); err != nil {
		return 0, err
	}
	n := copy(dst, ld.Image())
	return n / memorymap.PageSize, nil
}
