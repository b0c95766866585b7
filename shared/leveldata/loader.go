package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	castleGroup = "Castle"
	anchorName  = "anchor"
	targetName  = "target"
	damageProp  = "damage"
)

var ErrNoAnchor = errors.New("castle has no anchor object")

// LoadCastle parses the "Castle" object group of a TMX file. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
//
// Tiled stores rectangles by their top-left corner and rotates them about
// that corner; positions are converted to rotated centres here.
func LoadCastle(fsys fs.FS, tmxPath string) (*CastleData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CastleData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	var objects []*tiled.Object
	for _, og := range levelMap.ObjectGroups {
		if og.Name == castleGroup {
			objects = append(objects, og.Objects...)
		}
	}

	anchored := false
	for _, o := range objects {
		if o.Name == anchorName {
			data.AnchorX, data.AnchorY = o.X, o.Y
			anchored = true
		}
	}
	if !anchored {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoAnchor)
	}

	for _, o := range objects {
		if o.Name == anchorName {
			continue
		}
		cx, cy := rotatedCentre(o)
		rx, ry := cx-data.AnchorX, data.AnchorY-cy

		if o.Name == targetName {
			data.Target = &TargetData{X: rx, Y: ry, W: o.Width, H: o.Height}
			continue
		}

		blockType := o.Class
		if blockType == "" {
			blockType = o.Type //nolint:staticcheck // TMX uses type= attribute
		}
		if blockType == "" {
			continue
		}
		data.Blocks = append(data.Blocks, BlockData{
			Type:     blockType,
			X:        rx,
			Y:        ry,
			Rotation: o.Rotation,
			Damage:   o.Properties.GetInt(damageProp),
		})
	}

	// bottom rows first so blocks settle onto what is already there
	sort.SliceStable(data.Blocks, func(i, j int) bool {
		return data.Blocks[i].Y < data.Blocks[j].Y
	})

	return data, nil
}

func rotatedCentre(o *tiled.Object) (float64, float64) {
	sin, cos := math.Sincos(o.Rotation * math.Pi / 180)
	hw, hh := o.Width/2, o.Height/2
	return o.X + hw*cos - hh*sin, o.Y + hw*sin + hh*cos
}

// LoadAllCastles discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllCastles(fsys fs.FS, dir string) (map[string]*CastleData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	castles := make(map[string]*CastleData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := LoadCastle(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		castles[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return castles, names, nil
}
