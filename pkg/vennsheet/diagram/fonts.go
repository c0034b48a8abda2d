package diagram

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontsOnce   sync.Once
	regularFace *truetype.Font
	boldFace    *truetype.Font
	fontsErr    error
)

// loadFonts parses the embedded Go fonts once.
func loadFonts() (regular, bold *truetype.Font, err error) {
	fontsOnce.Do(func() {
		regularFace, fontsErr = truetype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		boldFace, fontsErr = truetype.Parse(gobold.TTF)
	})
	return regularFace, boldFace, fontsErr
}
