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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/coupemu/coupe/logger"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statsview server.
const Address = "localhost:12800"

const route = "/debug/statsview"

var start sync.Once

// Launch the statsview server. The server runs in its own goroutine for the
// lifetime of the program and later calls to Launch() only report the address.
func Launch(output io.Writer) {
	start.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		go mgr.Start()
		logger.Logf(logger.Allow, "statsview", "listening on %s", Address)
	})

	fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, route)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
