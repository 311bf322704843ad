package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-sphere-tracer/pkg/config"
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type builtin struct {
	info   SceneInfo
	create func() *Scene
}

var builtins = map[string]builtin{
	"default": {
		info:   SceneInfo{Name: "default", Description: "Small sphere resting on a ground sphere"},
		create: NewDefaultScene,
	},
	"ground": {
		info:   SceneInfo{Name: "ground", Description: "Ground sphere under an open sky"},
		create: NewGroundScene,
	},
	"spheregrid": {
		info:   SceneInfo{Name: "spheregrid", Description: "Grid of small spheres on the ground"},
		create: NewSphereGridScene,
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Create builds a fresh built-in scene by name
func Create(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return b.create(), nil
}

// FromConfig builds the scene described by a config section.
// An explicit sphere list takes precedence over the scene name.
func FromConfig(cfg config.SceneConfig) (*Scene, error) {
	var s *Scene
	if len(cfg.Spheres) > 0 {
		name := cfg.Name
		if name == "" {
			name = "custom"
		}
		s = NewScene(name)
		for i, sc := range cfg.Spheres {
			if len(sc.Center) != 3 || !(sc.Radius > 0) {
				return nil, fmt.Errorf("sphere %d: need 3 center components and a positive radius", i)
			}
			s.AddSphere(core.NewVec3(sc.Center[0], sc.Center[1], sc.Center[2]), sc.Radius)
		}
	} else {
		var err error
		if s, err = Create(cfg.Name); err != nil {
			return nil, err
		}
	}

	if cfg.Background.Top != nil {
		s.TopColor = cfg.Background.Top.Vec3()
	}
	if cfg.Background.Bottom != nil {
		s.BottomColor = cfg.Background.Bottom.Vec3()
	}

	return s, nil
}
