package levels

import (
	"embed"
	"io/fs"
)

//go:embed classic/*.yaml
var classicFS embed.FS

// ClassicPack returns the hand-made levels shipped with the game.
func ClassicPack() (*Pack, error) {
	sub, err := fs.Sub(classicFS, "classic")
	if err != nil {
		return nil, err
	}
	lvls, err := NewFSLoader(sub).LoadAll()
	if err != nil {
		return nil, err
	}
	return NewPack(lvls), nil
}
