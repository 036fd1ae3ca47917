package controller

// Message types.
type statusMsg struct {
	text string
}

type progressMsg struct {
	done  int
	total int
}
