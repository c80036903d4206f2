// Package main provides the d4100ctl command line front-end for the DMD
// controller layer.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dmd-tools/d4100ctl/internal/config"
	"github.com/dmd-tools/d4100ctl/internal/dmd"
	"github.com/dmd-tools/d4100ctl/internal/logging"
	"github.com/dmd-tools/d4100ctl/internal/managed"
	"github.com/dmd-tools/d4100ctl/internal/native"
)

var (
	cfgPath string
	verbose bool
	cfg     *config.Config

	rootCmd = &cobra.Command{
		Use:   "d4100ctl",
		Short: "Control a D4100 DMD board: update modes, override, image upload",
		Long: `d4100ctl drives a Discovery 4100 DMD controller board over USB. It can
override the board's physical DIP-switch update mode, select the mirror
row-update scheme, and load image files into the on-board frame buffer
for display.

The software override is disabled again on every exit path, handing
control back to the physical switches.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(afero.NewOsFs(), cfgPath)
			if err != nil {
				return err
			}
			return logging.Setup(cfg.Log.File, verbose)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to the deployment config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newOverrideCmd())
	rootCmd.AddCommand(newModeCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newDevicesCmd())
	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newFloatCmd())
	rootCmd.AddCommand(newConvertCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildController constructs the configured backend. Callers must Close it;
// teardown attempts to disable the software override on every path.
func buildController() (dmd.Controller, error) {
	switch cfg.Backend {
	case config.BackendManaged:
		return managed.New(
			managed.WithConvention(cfg.ManagedConvention()),
			managed.WithThreshold(cfg.Managed.Threshold),
			managed.WithEnsureOverride(cfg.Managed.EnsureOverride),
		), nil
	default:
		return native.New(
			native.WithConvention(cfg.NativeConvention()),
			native.WithDeviceIndex(cfg.Native.DeviceIndex),
			native.WithEnsureOverride(cfg.Native.EnsureOverride),
		)
	}
}

// withController runs fn against a fresh controller and tears it down. A
// teardown failure is logged, never allowed to displace fn's error.
func withController(fn func(dmd.Controller) error) error {
	ctrl, err := buildController()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ctrl.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("controller teardown failed")
		}
	}()
	return fn(ctrl)
}

// connect establishes the device session for backends that support it.
func connect(ctrl dmd.Controller) (dmd.Connector, error) {
	conn, ok := ctrl.(dmd.Connector)
	if !ok {
		return nil, fmt.Errorf("backend %q does not support device sessions", cfg.Backend)
	}
	if err := conn.Connect(cfg.Managed.DeviceIndex, cfg.Managed.FPGABin); err != nil {
		return nil, err
	}
	return conn, nil
}

func newOverrideCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "override on|off",
		Short:     "Enable or disable the software override of the DIP switches",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(func(ctrl dmd.Controller) error {
				if args[0] == "on" {
					return ctrl.EnableOverride()
				}
				return ctrl.DisableOverride()
			})
		},
	}
}

func newModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "mode single|dual|quad|global",
		Short:     "Select the mirror row-update mode and hold it until interrupted",
		Long: `mode enables the software override, writes the given update mode and then
blocks. The override is disabled again on interrupt, handing control back
to the DIP switches, so the mode stays active only while the command runs.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"single", "dual", "quad", "global"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := dmd.ParseUpdateMode(args[0])
			if !ok {
				return fmt.Errorf("unknown update mode %q", args[0])
			}
			return withController(func(ctrl dmd.Controller) error {
				if err := ctrl.EnableOverride(); err != nil {
					return err
				}
				if err := ctrl.SetMode(mode); err != nil {
					return err
				}
				log.Info().Str("mode", mode.String()).Msg("update mode active, press Ctrl+C to release")

				sigChan := make(chan os.Signal, 1)
				signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
				<-sigChan
				return nil
			})
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report device attachment, USB speed class and mirror chip type",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(func(ctrl dmd.Controller) error {
				conn, err := connect(ctrl)
				if err != nil {
					return err
				}

				fmt.Printf("attached: %v\n", conn.Attached())
				if speedOK, err := conn.SpeedOK(); err == nil {
					fmt.Printf("usb high speed: %v\n", speedOK)
				}
				chip, err := conn.ChipType()
				if err != nil {
					return err
				}
				fmt.Printf("chip: %s\n", chip)
				return nil
			})
		},
	}
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "Count attached controller boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := managed.New(managed.WithConvention(cfg.ManagedConvention()))
			defer func() {
				if cerr := b.Close(); cerr != nil {
					log.Warn().Err(cerr).Msg("controller teardown failed")
				}
			}()
			n, err := b.Devices()
			if err != nil {
				return err
			}
			fmt.Printf("boards: %d\n", n)
			return nil
		},
	}
}

func newLoadCmd() *cobra.Command {
	var (
		mirror bool
		block  int16
		reset  bool
		load4  bool
	)
	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Load an image file into the frame buffer and display it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(func(ctrl dmd.Controller) error {
				if _, err := connect(ctrl); err != nil {
					return err
				}
				loader, ok := ctrl.(dmd.ImageLoader)
				if !ok {
					return fmt.Errorf("backend %q does not support image upload", cfg.Backend)
				}
				if err := loader.LoadImageToBuffer(args[0], mirror); err != nil {
					return err
				}
				return loader.LoadBufferToDMD(dmd.Block(block), reset, load4)
			})
		},
	}
	cmd.Flags().BoolVar(&mirror, "mirror", false, "Mirror the image horizontally before upload")
	cmd.Flags().Int16Var(&block, "block", int16(dmd.AllBlocks), "Mirror block to load (1-16, above 16 loads all)")
	cmd.Flags().BoolVar(&reset, "reset", true, "Pulse a mirror-clocking reset after the transfer")
	cmd.Flags().BoolVar(&load4, "load4", false, "Load four rows simultaneously")
	return cmd
}

func newResetCmd() *cobra.Command {
	var block int16
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Issue a mirror-clocking pulse",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(func(ctrl dmd.Controller) error {
				if _, err := connect(ctrl); err != nil {
					return err
				}
				loader, ok := ctrl.(dmd.ImageLoader)
				if !ok {
					return fmt.Errorf("backend %q does not support mirror resets", cfg.Backend)
				}
				return loader.Reset(dmd.Block(block))
			})
		},
	}
	cmd.Flags().Int16Var(&block, "block", int16(dmd.AllBlocks), "Mirror block to reset (1-16, above 16 resets all)")
	return cmd
}

func newClearCmd() *cobra.Command {
	var (
		block int16
		reset bool
	)
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear frame buffer and mirror content",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(func(ctrl dmd.Controller) error {
				if _, err := connect(ctrl); err != nil {
					return err
				}
				loader, ok := ctrl.(dmd.ImageLoader)
				if !ok {
					return fmt.Errorf("backend %q does not support clearing", cfg.Backend)
				}
				return loader.Clear(dmd.Block(block), reset)
			})
		},
	}
	cmd.Flags().Int16Var(&block, "block", int16(dmd.AllBlocks), "Mirror block to clear (1-16, above 16 clears all)")
	cmd.Flags().BoolVar(&reset, "reset", true, "Pulse a mirror-clocking reset after clearing")
	return cmd
}

func newFloatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "float",
		Short: "Park all mirrors flat",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(func(ctrl dmd.Controller) error {
				conn, err := connect(ctrl)
				if err != nil {
					return err
				}
				return conn.Float()
			})
		},
	}
}

func newConvertCmd() *cobra.Command {
	var (
		mirror    bool
		threshold uint8
	)
	cmd := &cobra.Command{
		Use:   "convert SRC DST",
		Short: "Convert an image file to a packed binary frame, no device needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv := managed.NewConverter()
			if cmd.Flags().Changed("threshold") {
				conv.SetThreshold(threshold)
			} else {
				conv.SetThreshold(cfg.Managed.Threshold)
			}
			return conv.ConvertImage(args[0], args[1], mirror)
		},
	}
	cmd.Flags().BoolVar(&mirror, "mirror", false, "Mirror the image horizontally before conversion")
	cmd.Flags().Uint8Var(&threshold, "threshold", 0, "Luminance cutoff for the binary conversion")
	return cmd
}
