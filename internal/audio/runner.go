package audio

import "os/exec"

// Process is a handle to a spawned player process
type Process interface {
	Kill() error
	Wait() error
}

// ProcessRunner spawns player processes. The production runner wraps
// os/exec; tests inject fakes.
type ProcessRunner interface {
	Start(name string, args ...string) (Process, error)
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Kill()
}

func (p *execProcess) Wait() error {
	return p.cmd.Wait()
}

type execRunner struct{}

// Start spawns the process without waiting for output; success means
// the process started, not that audio is audible.
func (execRunner) Start(name string, args ...string) (Process, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}
