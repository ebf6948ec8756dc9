package cmudict

// Entry represents one pronunciation dictionary entry: an orthographic word
// and its pronunciation variants, each an ordered sequence of ARPABET
// symbols carrying stress markers.
type Entry struct {
	Word     string
	Variants [][]string
}
