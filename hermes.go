package hermes

var (
	VERSION = "dev"
	COMMIT  = "unknown"
)
