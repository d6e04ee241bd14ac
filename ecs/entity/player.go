package entity

import (
	"fmt"

	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/ecs"
)

func NewPlayer(w *ecs.World, animations *anim.Library) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml", animations)
}

func NewPlayerAt(w *ecs.World, x, y float64, animations *anim.Library) (ecs.Entity, error) {
	entity, err := NewPlayer(w, animations)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y, 0); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
