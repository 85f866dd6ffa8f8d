package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconHeart     = "" //  heart
	IconGo        = "" //  go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	IconConfig   = "" // config
	IconDatabase = "" // database
	IconClock    = "" // clock
	IconCursor   = "" // chevron-right

	// Desk
	IconPane     = "" // columns
	IconTab      = "" // table
	IconMinimize = "" // window-minimize
	IconMaximize = "" // window-maximize
	IconClose    = "" // x
	IconRestore  = "" // rotate-left
)
