package main

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/common"
	"github.com/milk9111/foxtrot/config"
	"github.com/milk9111/foxtrot/dialogue"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/entity"
	"github.com/milk9111/foxtrot/ecs/system"
	"github.com/milk9111/foxtrot/levels"
	"github.com/milk9111/foxtrot/prefabs"
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	hud       *HUD
	watcher   *prefabs.Watcher
}

// NewGame loads scripts and the level and wires the systems. Any invalid
// animation config or dialogue script fails here.
func NewGame(cfg config.Config) (*Game, error) {
	animations := anim.NewLibrary()
	scripts, err := loadScripts()
	if err != nil {
		return nil, err
	}

	lvl, err := levels.LoadLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("game: load level %q: %w", cfg.Level, err)
	}
	world := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(world, lvl, animations); err != nil {
		return nil, fmt.Errorf("game: populate level %q: %w", cfg.Level, err)
	}
	slog.Info("level loaded", "level", cfg.Level, "entities", len(ecs.Entities(world)), "animations", animations.Names())

	g := &Game{world: world, render: system.NewRenderSystem()}
	g.render.Debug = cfg.Debug

	var changes system.ChangeSource
	if cfg.HotReload {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/dialogue")
		if err != nil {
			slog.Warn("hot reload disabled", "err", err)
		} else {
			g.watcher = watcher
			changes = watcher
		}
	}

	pause := system.NewPauseSystem()
	g.hud = NewHUD(pause.RequestResume)
	physics := system.NewPhysicsSystem()
	g.render.Space = physics.Space()

	s := ecs.NewScheduler()
	s.MustAdd(ecs.StageInput,
		system.NewReloadSystem(changes, animations, scripts),
		system.NewInputSystem(system.NewEbitenInput()),
		pause,
	)
	s.MustAdd(ecs.StagePhysics,
		system.NewControllerSystem(),
		physics,
	)
	s.MustAdd(ecs.StageProduce,
		system.NewPickupProbeSystem(physics),
		system.NewHeldPropSystem(),
		system.NewInteractionSystem(scripts),
		system.NewDialogueSystem(scripts),
		system.NewCursorSystem(system.EbitenCursor{}),
	)
	s.MustAdd(ecs.StageResolve,
		system.NewCrosshairResolveSystem(),
		system.NewPromptResolveSystem(),
		system.NewAnimationIntentSystem(animations),
	)
	s.MustAdd(ecs.StageConsume,
		system.NewCrosshairSystem(),
		system.NewPromptSystem(g.hud),
		system.NewDialoguePanelSystem(g.hud),
		system.NewAnimationPlaybackSystem(animations),
		system.NewDebugSnapshotSystem(newClipboard()),
	)
	g.scheduler = s
	return g, nil
}

func loadScripts() (*dialogue.Library, error) {
	names, err := prefabs.DialogueNames()
	if err != nil {
		return nil, fmt.Errorf("game: list dialogue: %w", err)
	}
	scripts := dialogue.NewLibrary()
	for _, name := range names {
		src, err := prefabs.LoadDialogue(name)
		if err != nil {
			return nil, fmt.Errorf("game: read dialogue %q: %w", name, err)
		}
		if err := scripts.Load(name, src); err != nil {
			return nil, err
		}
	}
	return scripts, nil
}

func (g *Game) Update() error {
	g.hud.Update()
	if g.hud.QuitRequested() {
		return ebiten.Termination
	}

	g.scheduler.Update(g.world)
	g.hud.SetPaused(system.IsPaused(g.world))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.hud.Draw(screen)
}

func (g *Game) Close() error {
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
