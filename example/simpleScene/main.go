package main

import (
	"fmt"
	"os"

	"github.com/akmonengine/scenekit"
	"github.com/akmonengine/scenekit/internal/config"
	"github.com/akmonengine/scenekit/internal/logger"
	"go.uber.org/zap"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	world := SetupScene(cfg, logger.Log)
	Subscribe(world, logger.Named("events"))

	logger.Info("scene ready",
		zap.Int("objects", len(world.Objects)),
		zap.Int("frames", cfg.Run.Frames),
		zap.Float64("timestep", world.Timestep))

	Run(world, NewPointerScript(cfg.Run.Pointer), cfg.Run.Frames)

	for _, object := range world.Objects {
		position := object.Position()
		logger.Info("final state",
			zap.Uint64("id", object.ID),
			zap.String("name", object.Name),
			zap.Float64s("position", position[:]),
			zap.Bool("colliding", object.Colliding()))
	}
}

// Run steps the world for the given number of frames
func Run(world *scenekit.World, script PointerScript, frames int) {
	for i := 0; i < frames; i++ {
		world.Step(script.At(world.Frame() + 1))
	}
}

// Subscribe logs every world event
func Subscribe(world *scenekit.World, log *zap.Logger) {
	collision := func(event scenekit.Event) {
		var a, b *scenekit.Object
		switch e := event.(type) {
		case scenekit.CollisionEnterEvent:
			a, b = e.ObjectA, e.ObjectB
		case scenekit.CollisionStayEvent:
			a, b = e.ObjectA, e.ObjectB
		case scenekit.CollisionExitEvent:
			a, b = e.ObjectA, e.ObjectB
		}

		level := zap.InfoLevel
		if event.Type() == scenekit.COLLISION_STAY {
			level = zap.DebugLevel
		}
		log.Log(level, event.Type().String(),
			zap.Uint64("frame", world.Frame()),
			zap.String("a", a.Name),
			zap.String("b", b.Name))
	}
	world.Events.Subscribe(scenekit.COLLISION_ENTER, collision)
	world.Events.Subscribe(scenekit.COLLISION_STAY, collision)
	world.Events.Subscribe(scenekit.COLLISION_EXIT, collision)

	world.Events.Subscribe(scenekit.SELECTED, func(event scenekit.Event) {
		log.Info("selected", zap.String("object", event.(scenekit.SelectEvent).Object.Name))
	})
	world.Events.Subscribe(scenekit.DESELECTED, func(event scenekit.Event) {
		log.Info("deselected", zap.String("object", event.(scenekit.DeselectEvent).Object.Name))
	})

	world.Events.Subscribe(scenekit.DRAG_START, func(event scenekit.Event) {
		e := event.(scenekit.DragStartEvent)
		log.Info("drag start", zap.String("object", e.Object.Name), zap.Int("axis", e.Axis))
	})
	world.Events.Subscribe(scenekit.DRAG_END, func(event scenekit.Event) {
		e := event.(scenekit.DragEndEvent)
		position := e.Object.Position()
		log.Info("drag end",
			zap.String("object", e.Object.Name),
			zap.Int("axis", e.Axis),
			zap.Float64s("position", position[:]))
	})
}
