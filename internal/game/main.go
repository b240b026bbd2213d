//go:build !android

package game

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"kitchen/internal/kitchen"
)

// DesktopOptions wires a prepared kitchen into the desktop shell.
type DesktopOptions struct {
	Kitchen  *kitchen.Kitchen
	Bindings *kitchen.BindingSet
	Logger   *zap.Logger
	Width    int
	Height   int
	Mute     bool
}

// RunDesktop opens the window and runs the frame loop until the window is
// closed or ctx is cancelled.
func RunDesktop(ctx context.Context, opts DesktopOptions) error {
	runtime.LockOSThread()
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = WindowWidth, WindowHeight
	}
	k := opts.Kitchen

	window, err := initWindow(opts.Width, opts.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("opengl ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	SetMuted(opts.Mute)
	if err := InitAudio(); err != nil {
		log.Warn("audio init failed, continuing without sound", zap.Error(err))
	} else {
		go func() {
			time.Sleep(100 * time.Millisecond) // let audio context initialize
			StartMusic()
		}()
		defer StopAudio()
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	br, bg, bb := Palette.Background.Floats()
	gl.ClearColor(br, bg, bb, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	hud := kitchen.NewHUD(k.Bus)
	ctl := NewController(k, opts.Bindings, log)
	input := NewInput()
	cam := NewCamera()
	var steps Footsteps
	var ticks CountdownTicks

	BindSounds(k.Bus, PlaySound)
	k.Bus.Subscribe(kitchen.EventCut, func(kitchen.Event) {
		cam.AddShake(CutShakeIntensity, CutShakeDuration)
	})
	k.Bus.Subscribe(kitchen.EventStateChanged, func(e kitchen.Event) {
		log.Info("round state", zap.Stringer("state", e.State))
		SetMusicIntensity(e.State == kitchen.StateGamePlaying)
	})

	var frame uint64
	start := glfw.GetTime()
	last := start
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			break
		}
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}
		frame++

		glfw.PollEvents()
		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if err := ctl.Handle(ctx, input.Poll(window)); err != nil {
			log.Error("save bindings", zap.Error(err))
		}
		sx, sy := input.Stick()
		k.Update(dt, MoveVector(opts.Bindings, input.Down, sx, sy))

		if steps.Update(dt, k.Player.Walking && !k.Session.Paused) {
			playSoundWithGain(SoundFootstep, 0.5)
		}
		if ticks.Update(k.Session) {
			PlaySound(SoundCountdown)
		}

		cam.Fit(fbW, fbH, dt)
		cam.UpdateShake(dt, frame)

		rend.BeginFrame(cam, fbW, fbH)
		rend.DrawScene(BuildScene(k, hud, now-start), cam, fbW, fbH)
		RenderHUD(rend, HUDView{Kitchen: k, HUD: hud, Bindings: opts.Bindings, Menu: ctl.Menu}, fbW, fbH)
		rend.FlushText(fbW, fbH)

		window.SwapBuffers()
	}
	log.Info("window closed", zap.Uint64("frames", frame))
	return nil
}
