package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/dialogue"
	"github.com/milk9111/foxtrot/levels"
	"github.com/milk9111/foxtrot/prefabs"
)

type checker struct {
	problems []error
	engines  map[string]*anim.Engine
	scripts  *dialogue.Library
}

func checkLevel(name string) []error {
	c := &checker{engines: map[string]*anim.Engine{}, scripts: dialogue.NewLibrary()}
	c.loadScripts()

	lvl, err := levels.LoadLevel(name)
	if err != nil {
		c.fail(err)
		return c.problems
	}

	seen := map[string]bool{}
	players := 0
	for _, ent := range lvl.Entities {
		prefab := strings.ToLower(ent.Type) + ".yaml"
		if ent.Type == "player" {
			players++
		}
		if seen[prefab] {
			continue
		}
		seen[prefab] = true
		if !prefabs.Exists(prefab) {
			c.fail(fmt.Errorf("level %s: entity %q has no prefab %s", name, ent.Type, prefab))
			continue
		}
		c.checkPrefab(prefab)
	}
	if players != 1 {
		c.fail(fmt.Errorf("level %s: expected one player, found %d", name, players))
	}
	return c.problems
}

func (c *checker) fail(err error) {
	c.problems = append(c.problems, err)
}

func (c *checker) loadScripts() {
	names, err := prefabs.DialogueNames()
	if err != nil {
		c.fail(fmt.Errorf("list dialogue: %w", err))
		return
	}
	for _, name := range names {
		src, err := prefabs.LoadDialogue(name)
		if err != nil {
			c.fail(fmt.Errorf("read dialogue %q: %w", name, err))
			continue
		}
		if err := c.scripts.Load(name, src); err != nil {
			c.fail(err)
			continue
		}
		slog.Debug("dialogue compiled", "script", name)
	}
}

func (c *checker) checkPrefab(prefab string) {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		c.fail(err)
		return
	}
	slog.Debug("prefab loaded", "prefab", prefab, "components", len(spec.Components))

	if raw, ok := spec.Components["npc"]; ok {
		npc, err := prefabs.DecodeComponentSpec[prefabs.NPCComponentSpec](raw)
		if err != nil {
			c.fail(fmt.Errorf("%s: npc: %w", prefab, err))
		} else {
			c.checkScript(prefab, npc)
		}
	}

	raw, ok := spec.Components["animation_state"]
	if !ok {
		return
	}
	state, err := prefabs.DecodeComponentSpec[prefabs.AnimationStateComponentSpec](raw)
	if err != nil {
		c.fail(fmt.Errorf("%s: animation_state: %w", prefab, err))
		return
	}
	engine, err := c.engine(state.Config)
	if err != nil {
		c.fail(fmt.Errorf("%s: %w", prefab, err))
		return
	}
	clips, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](spec.Components["animation"])
	if err != nil {
		c.fail(fmt.Errorf("%s: animation: %w", prefab, err))
		return
	}
	for _, missing := range missingClips(engine, clips.Defs) {
		c.fail(fmt.Errorf("%s: %s names clip %q which the sheet does not define", prefab, state.Config, missing))
	}
}

func (c *checker) engine(config string) (*anim.Engine, error) {
	if e, ok := c.engines[config]; ok {
		return e, nil
	}
	e, err := prefabs.LoadAnimationEngine(config)
	if err != nil {
		return nil, err
	}
	c.engines[config] = e
	return e, nil
}

func (c *checker) checkScript(prefab string, npc prefabs.NPCComponentSpec) {
	if npc.Script == "" {
		return
	}
	s, ok := c.scripts.Get(npc.Script)
	if !ok {
		c.fail(fmt.Errorf("%s: unknown dialogue script %q", prefab, npc.Script))
		return
	}
	if _, err := s.Run(context.Background(), npc.Name, 0); err != nil {
		c.fail(fmt.Errorf("%s: %w", prefab, err))
	}
}

// missingClips lists the clips the engine transitions into that defs lacks.
func missingClips(engine *anim.Engine, defs map[string]prefabs.AnimationDefComponentSpec) []string {
	var missing []string
	for _, k := range anim.Kinds() {
		clip := engine.Transition(k).Clip
		if _, ok := defs[clip]; !ok {
			missing = append(missing, clip)
		}
	}
	sort.Strings(missing)
	return missing
}
