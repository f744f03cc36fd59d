package domain

// Command is an external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env holds variables layered on top of the process environment.
	// Values of PathListVars are prepended to the inherited value instead of replacing it.
	Env map[string]string
}

// PathListVars are environment variables holding os.PathListSeparator separated lists.
var PathListVars = []string{"PATH", "PYTHONPATH"}
