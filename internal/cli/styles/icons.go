package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	// Doctor / diagnostics
	IconDoctor  = "\uf0f1" // stethoscope
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconPackage = "\uf187" // archive/package
	IconVideo   = "\uf03d" // video camera
	IconAudio   = "\uf028" // volume-up

	IconConfig = "\ue615" // config
	IconCursor = "\uf054" // chevron-right

	// Playback
	IconPlay  = "\uf04b" // play
	IconStop  = "\uf04d" // stop
	IconClock = "\uf017" // clock
)
