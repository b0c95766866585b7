package assets

import (
	"embed"
	"fmt"
	"path"

	"github.com/automoto/castlecrush/shared/leveldata"
)

const levelsDir = "levels"

//go:embed all:levels
var assetFS embed.FS

// LevelFS exposes the embedded level files.
func LevelFS() embed.FS {
	return assetFS
}

// LoadCastle loads an embedded castle layout by name, e.g. "castle".
func LoadCastle(name string) (*leveldata.CastleData, error) {
	data, err := leveldata.LoadCastle(assetFS, path.Join(levelsDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("castle %q: %w", name, err)
	}
	return data, nil
}

// CastleNames lists the embedded castle layouts.
func CastleNames() ([]string, error) {
	_, names, err := leveldata.LoadAllCastles(assetFS, levelsDir)
	return names, err
}
