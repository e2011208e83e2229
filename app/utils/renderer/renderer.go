package renderer

import (
	"encoding/xml"

	"github.com/unrolled/render"
)

// New returns the renderer used by every handler. Responses are JSON, XML or
// plain text, so no templates are loaded.
func New() *render.Render {
	return render.New(render.Options{
		Charset:                   "UTF-8",
		DisableHTTPErrorRendering: true,
		XMLContentType:            "application/xml",
		PrefixXML:                 []byte(xml.Header),
	})
}
