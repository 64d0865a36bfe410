package global

var (
	CfgFile string
	NoColor bool
	Verbose bool
	Watch   bool
)

// set via ldflags at build time
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
