package ui

// helpPagerMsg reports that the help pager exited
type helpPagerMsg struct {
	err error
}
