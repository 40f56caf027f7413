package render

import (
	"fmt"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/cadkit/angdim/dbg"
)

// This is for debugging purposes only

// Every SavePNG also previews the sheet when this environment variable is
// set, so the demo generator can be watched sheet by sheet.
const previewEnv = "ANGDIM_PREVIEW"

// Helper to dump the sheet into the terminal (iTerm only) along with one
// named line per placed dimension, so you can tell which spec produced
// which arc.
func (s *Sheet) dbgPreview() {
	const path = "/tmp/angdim_sheet.png"
	if err := s.ctx.SavePNG(path); err != nil {
		fmt.Fprintln(os.Stderr, "preview failed:", err)
		return
	}
	imgcat.CatFile(path, os.Stdout)
	for _, d := range s.placed {
		fmt.Println(dbg.Name(d), d.spec.DbgString())
	}
}
