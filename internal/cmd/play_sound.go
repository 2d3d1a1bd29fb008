package cmd

// PlaySoundCmd plays a notification sound
type PlaySoundCmd struct {
	Event string `help:"Event to play a sound for" default:"work-complete" enum:"work-complete,break-complete,start"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	return cli.Container.SoundPlayer.PlaySoundForEvent(p.Event)
}
