package diagfmt

// PrettyOpts configures human-readable diagnostic output.
type PrettyOpts struct {
	// Color enables ANSI colors; the caller decides based on the output
	// terminal.
	Color bool
	// ShowSource prints the offending line with a caret underline.
	ShowSource bool
	// ShowNotes prints attached notes under the primary message.
	ShowNotes bool
}

// JSONOpts configures machine-readable diagnostic output.
type JSONOpts struct {
	// Max truncates the emitted list; 0 means everything in the bag.
	Max int
}
