package app

import (
	"fmt"
	"os/exec"
	"syscall"

	"github.com/wdevries/neondeck/internal/config"
)

// Launch spawns the shortcut's command detached from the launcher: NeonDeck
// keeps running and keeps its window. The child's lifetime is its own.
func (g *Game) Launch(sc config.ShortcutConfig) error {
	if sc.Exec == "" {
		return fmt.Errorf("shortcut %q has no exec command", sc.Name)
	}

	cmd := exec.Command(sc.Exec, sc.Args...)
	// Own session: the child outlives the launcher and never receives its
	// terminal signals.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		g.log.Error().Err(err).Str("shortcut", sc.Name).Str("exec", sc.Exec).
			Msg("failed to launch shortcut")
		return err
	}
	g.log.Info().Str("shortcut", sc.Name).Str("exec", sc.Exec).Int("pid", cmd.Process.Pid).
		Msg("launched shortcut")

	// Reap in the background so exited children do not linger as zombies;
	// the launcher takes no further interest in the process.
	go func() { _ = cmd.Wait() }()
	return nil
}
