package render

import "pingpong/internal/core"

var plusRows = []string{
	"..............",
	"......##......",
	"......##......",
	"......##......",
	"......##......",
	"......##......",
	".############.",
	".############.",
	"......##......",
	"......##......",
	"......##......",
	"......##......",
	"......##......",
	"..............",
}

// PlusIcon returns the glyph shown next to every action bar button.
func PlusIcon() *core.Bitmap {
	b, err := core.ParseBitmap(plusRows)
	if err != nil {
		panic(err)
	}
	return b
}
