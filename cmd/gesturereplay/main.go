// Command gesturereplay replays scripted touch gestures against a headless
// placement session and reports what they did to the scene.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/arplace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type options struct {
	verbose    bool
	configPath string
	scenePath  string
	tps        int
	maxFrames  int
	events     bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gesturereplay",
		Short: "Replay touch gesture scripts against a headless placement session",
		Long: `gesturereplay builds a session from a scene description (camera,
detected planes, asset bounds), feeds it the frames of a gesture script,
and prints the resulting tracked object pose.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			opts.logger, err = arplace.NewLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "human-readable debug logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "session config YAML (defaults when omitted)")

	runCmd := &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "Replay a gesture script",
		Long: `Replays a gesture script one frame per tick.

Script steps:
  - {action: mode, mode: placement}
  - {action: doubletap, x: 320, y: 200}
  - {action: pan, x: 300, y: 200, toX: 360, toY: 220, spread: 80, frames: 20}
  - {action: pinch, x: 320, y: 240, from: 100, to: 140, frames: 10, ease: outquad}
  - {action: twist, x: 320, y: 240, radius: 60, degrees: 30, frames: 10}
  - {action: wait, frames: 30}
  - {action: reset}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.OutOrStdout(), opts, args[0])
		},
	}
	runCmd.Flags().StringVarP(&opts.scenePath, "scene", "s", "", "scene description YAML (a floor plane when omitted)")
	runCmd.Flags().IntVar(&opts.tps, "tps", 60, "simulated ticks per second")
	runCmd.Flags().IntVar(&opts.maxFrames, "max-frames", 10000, "stop after this many frames")
	runCmd.Flags().BoolVar(&opts.events, "events", false, "print every session event")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective session config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}

	root.AddCommand(runCmd, configCmd)
	return root
}

func loadConfig(path string) (arplace.Config, error) {
	if path == "" {
		return arplace.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return arplace.Config{}, fmt.Errorf("read config: %w", err)
	}
	return arplace.LoadConfig(data)
}

func runReplay(out io.Writer, opts *options, scriptPath string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	sceneData := []byte("{}")
	if opts.scenePath != "" {
		if sceneData, err = os.ReadFile(opts.scenePath); err != nil {
			return fmt.Errorf("read scene: %w", err)
		}
	}
	sf, err := loadScene(sceneData)
	if err != nil {
		return err
	}
	w, err := sf.build(opts.logger)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	scriptData, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	runner, err := arplace.LoadScript(scriptData)
	if err != nil {
		return err
	}

	s, err := arplace.NewSession(cfg, arplace.SessionOptions{
		Scene:    w.scene,
		Camera:   w.camera,
		Surfaces: w.planes,
		Assets:   w.assets,
		Placed:   w.placed,
		Logger:   opts.logger,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	counts := make(map[arplace.EventType]int)
	s.OnEvent(func(ev arplace.SessionEvent) {
		counts[ev.Type]++
		if opts.events {
			fmt.Fprintf(out, "%8.3fs %-12s node=%d pos=(%.3f, %.3f, %.3f) scale=%.3f yaw=%+.2f\n",
				ev.Time.Seconds(), ev.Type, ev.NodeID,
				ev.Position.X(), ev.Position.Y(), ev.Position.Z(), ev.Scale, ev.YawDelta)
		}
	})

	frames := arplace.Replay(s, arplace.NewTouchInput(nil), runner, &arplace.TickClock{TPS: opts.tps}, opts.maxFrames)
	opts.logger.Info("replay finished", zap.Int("frames", frames), zap.Bool("complete", runner.Done()))

	fmt.Fprintf(out, "frames: %d\n", frames)
	fmt.Fprintf(out, "mode: %s\n", s.Mode())
	fmt.Fprintf(out, "placed: %d\n", w.placed.Len())
	fmt.Fprintf(out, "events: placed=%d deleted=%d moved=%d scaled=%d rotated=%d miss=%d\n",
		counts[arplace.EventPlaced], counts[arplace.EventDeleted], counts[arplace.EventMoved],
		counts[arplace.EventScaled], counts[arplace.EventRotated], counts[arplace.EventSurfaceMiss])
	if n, ok := s.Tracked(); ok {
		p := n.WorldPosition()
		fmt.Fprintf(out, "tracked: %s position=(%.3f, %.3f, %.3f) scale=%.3f yaw=%.2f\n",
			n.Name, p.X(), p.Y(), p.Z(), n.Scale.X(), arplace.Yaw(n.WorldRotation()))
	} else {
		fmt.Fprintln(out, "tracked: none")
	}
	if !runner.Done() {
		return fmt.Errorf("script did not finish within %d frames", opts.maxFrames)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
