package initcmd

const (
	DefaultDir      = "."
	DefaultTemplate = "standard"
)

const (
	fileSample   = "sample.csv"
	fileSettings = "tabletify.toml"
	fileNotes    = "TABLETIFY.md"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)
