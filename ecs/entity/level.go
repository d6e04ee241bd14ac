package entity

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/assets"
	"github.com/milk9111/foxtrot/common"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
	"github.com/milk9111/foxtrot/levels"
	"github.com/milk9111/foxtrot/prefabs"
	"golang.org/x/image/colornames"
)

// LoadLevelToWorld fills world from lvl: a tile sprite per non-empty cell,
// merged static colliders for physics layers, one prefab per level entity
// and finally the crosshair, placed at the player's reach.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, animations *anim.Library) error {
	if lvl == nil {
		return fmt.Errorf("load level: level is nil")
	}
	if _, err := NewSession(world); err != nil {
		return err
	}

	tileSize := float64(common.TileSize)
	imgs := make(map[color.Color]*ebiten.Image)

	for layerIdx, layer := range lvl.Layers {
		meta := levels.LayerMeta{}
		if layerIdx < len(lvl.LayerMeta) {
			meta = lvl.LayerMeta[layerIdx]
		}
		c := layerColor(meta, layerIdx)
		img, ok := imgs[c]
		if !ok {
			img = assets.NewShape(assets.ShapeRect, common.TileSize, common.TileSize, c)
			imgs[c] = img
		}

		for y := 0; y < lvl.Height; y++ {
			for x := 0; x < lvl.Width; x++ {
				tileIdx := y*lvl.Width + x
				if tileIdx >= len(layer) || layer[tileIdx] <= 0 {
					continue
				}
				e := ecs.CreateEntity(world)
				if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
					X:      (float64(x) + 0.5) * tileSize,
					Y:      (float64(y) + 0.5) * tileSize,
					ScaleX: 1,
					ScaleY: 1,
				}); err != nil {
					return err
				}
				if err := ecs.Add(world, e, component.SpriteComponent.Kind(), &component.Sprite{
					Image:   img,
					OriginX: tileSize / 2,
					OriginY: tileSize / 2,
				}); err != nil {
					return err
				}
				if err := ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerIdx - len(lvl.Layers)}); err != nil {
					return err
				}
			}
		}
		if meta.Physics {
			if err := addMergedTileColliders(world, layer, lvl.Width, lvl.Height, tileSize); err != nil {
				return err
			}
		}
	}

	reach := 0.0
	for _, ent := range lvl.Entities {
		prefab := strings.ToLower(ent.Type) + ".yaml"
		if !prefabs.Exists(prefab) {
			slog.Warn("level: unknown entity type", "type", ent.Type)
			continue
		}
		e, err := BuildEntity(world, prefab, animations)
		if err != nil {
			return err
		}
		rotation, _ := ent.Props["rotation"].(float64)
		if err := SetEntityTransform(world, e, float64(ent.X), float64(ent.Y), rotation); err != nil {
			return fmt.Errorf("level: place %s: %w", ent.Type, err)
		}
		if p, ok := ecs.Get(world, e, component.PlayerComponent.Kind()); ok {
			reach = p.InteractionDistance
		}
	}

	_, err := NewCrosshair(world, reach, animations)
	return err
}

func layerColor(meta levels.LayerMeta, idx int) color.Color {
	if c, ok := colornames.Map[strings.ToLower(meta.Color)]; ok {
		return c
	}
	if meta.Physics {
		return colornames.Slategray
	}
	if idx == 0 {
		return colornames.Darkolivegreen
	}
	return colornames.Dimgray
}

// mergeTiles covers the non-empty cells of layer with as few rectangles as a
// greedy row-first sweep finds. Rectangles are in cell units.
func mergeTiles(layer []int, width, height int) []image.Rectangle {
	if width <= 0 || height <= 0 {
		return nil
	}
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	filled := func(idx int) bool {
		return idx < len(layer) && !visited[idx] && layer[idx] > 0
	}

	var out []image.Rectangle
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !filled(index(x, y)) {
				continue
			}

			maxW := 0
			for x2 := x; x2 < width && filled(index(x2, y)); x2++ {
				maxW++
			}

			maxH := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+maxW; x2++ {
					if !filled(index(x2, y2)) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				maxH++
			}

			for yy := y; yy < y+maxH; yy++ {
				for xx := x; xx < x+maxW; xx++ {
					visited[index(xx, yy)] = true
				}
			}
			out = append(out, image.Rect(x, y, x+maxW, y+maxH))
		}
	}
	return out
}

func addMergedTileColliders(world *ecs.World, layer []int, width, height int, tileSize float64) error {
	for _, r := range mergeTiles(layer, width, height) {
		e := ecs.CreateEntity(world)
		w := float64(r.Dx()) * tileSize
		h := float64(r.Dy()) * tileSize
		if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
			X:      float64(r.Min.X)*tileSize + w/2,
			Y:      float64(r.Min.Y)*tileSize + h/2,
			ScaleX: 1,
			ScaleY: 1,
		}); err != nil {
			return err
		}
		if err := ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:    w,
			Height:   h,
			Friction: 0.9,
			Static:   true,
			Category: component.CategorySolid,
		}); err != nil {
			return err
		}
	}
	return nil
}
